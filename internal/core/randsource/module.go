package randsource

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-hashaddr/config"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// Params 随机源模块依赖参数
type Params struct {
	fx.In

	Config *config.Config `optional:"true"`

	// CustomSecure 调用方注入的安全随机源
	CustomSecure pkgif.RandomSource `name:"custom_random" optional:"true"`

	// CustomSymbols 调用方注入的符号源
	CustomSymbols pkgif.SymbolSource `name:"custom_symbols" optional:"true"`
}

// Result 随机源模块输出
type Result struct {
	fx.Out

	Secure  pkgif.RandomSource
	Symbols pkgif.SymbolSource
}

// NewFromParams 根据配置创建随机源
func NewFromParams(p Params) Result {
	r := Result{
		Secure:  p.CustomSecure,
		Symbols: p.CustomSymbols,
	}
	if r.Secure == nil {
		r.Secure = NewSecure()
	}
	if r.Symbols == nil {
		r.Symbols = NewSymbols()
		if p.Config != nil && p.Config.Compact.Seeded {
			r.Symbols = NewSeededSymbols(p.Config.Compact.Seed)
		}
	}
	return r
}

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module("randsource",
		fx.Provide(NewFromParams),
	)
}
