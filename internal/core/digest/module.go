package digest

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-hashaddr/config"
	"github.com/dep2p/go-hashaddr/internal/util/logger"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

var log = logger.Logger("digest")

// Params 摘要模块依赖参数
type Params struct {
	fx.In

	// Config 统一配置（可选，使用默认配置）
	Config *config.Config `optional:"true"`

	// Custom 调用方注入的摘要实现，优先于配置中的算法
	Custom pkgif.Digester `name:"custom_digester" optional:"true"`
}

// NewFromParams 根据配置创建摘要实现
//
// 优先级：Custom > Config.Digest.Algorithm。启用缓存时在外层包装 LRU。
func NewFromParams(p Params) (pkgif.Digester, error) {
	cfg := config.NewConfig()
	if p.Config != nil {
		cfg = p.Config
	}

	d := p.Custom
	if d == nil {
		var err error
		d, err = New(cfg.Digest.Algorithm)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Cache.Enabled {
		cached, err := NewCaching(d, cfg.Cache.Size, cfg.Cache.MaxInputSize)
		if err != nil {
			return nil, err
		}
		d = cached
	}

	log.Debug("digester ready", "algorithm", d.Algorithm(), "cache", cfg.Cache.Enabled)
	return d, nil
}

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module("digest",
		fx.Provide(NewFromParams),
	)
}
