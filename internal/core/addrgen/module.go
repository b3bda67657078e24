package addrgen

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// Params 生成器模块依赖参数
type Params struct {
	fx.In

	Digester pkgif.Digester
	Secure   pkgif.RandomSource
	Symbols  pkgif.SymbolSource    `optional:"true"`
	Recorder pkgif.MetricsRecorder `optional:"true"`
	Clock    clock.Clock           `optional:"true"`
}

// Result 生成器模块输出
type Result struct {
	fx.Out

	Generator pkgif.Generator
	Compact   pkgif.CompactGenerator
}

// NewFromParams 从依赖参数创建生成器
func NewFromParams(p Params) (Result, error) {
	g, err := New(p.Digester, p.Secure,
		WithSymbols(p.Symbols),
		WithRecorder(p.Recorder),
		WithClock(p.Clock),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Generator: g, Compact: g}, nil
}

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module("addrgen",
		fx.Provide(NewFromParams),
	)
}
