package hashaddr

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-hashaddr/internal/core/addrgen"
	"github.com/dep2p/go-hashaddr/internal/core/digest"
	"github.com/dep2p/go-hashaddr/internal/core/metrics"
	"github.com/dep2p/go-hashaddr/internal/core/randsource"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：digest → randsource → metrics → addrgen。
// 通过选项注入的能力以命名或可选依赖的形式提供，优先于配置。
func buildFxApp(o *options, s *Service) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 核心模块
	// ════════════════════════════════════════════════════════════════════════
	modules := []fx.Option{
		fx.Supply(o.config),

		digest.Module(),
		randsource.Module(),
		metrics.Module(),
		addrgen.Module(),
	}

	// ════════════════════════════════════════════════════════════════════════
	// 3. 注入的能力
	// ════════════════════════════════════════════════════════════════════════
	if o.digester != nil {
		d := o.digester
		modules = append(modules, fx.Provide(fx.Annotate(
			func() pkgif.Digester { return d },
			fx.ResultTags(`name:"custom_digester"`),
		)))
	}
	if o.random != nil {
		r := o.random
		modules = append(modules, fx.Provide(fx.Annotate(
			func() pkgif.RandomSource { return r },
			fx.ResultTags(`name:"custom_random"`),
		)))
	}
	if o.symbols != nil {
		sym := o.symbols
		modules = append(modules, fx.Provide(fx.Annotate(
			func() pkgif.SymbolSource { return sym },
			fx.ResultTags(`name:"custom_symbols"`),
		)))
	}
	if o.registerer != nil {
		reg := o.registerer
		modules = append(modules, fx.Provide(func() prometheus.Registerer { return reg }))
	}
	if o.clock != nil {
		c := o.clock
		modules = append(modules, fx.Provide(func() clock.Clock { return c }))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 4. 导出到 Service
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		fx.Populate(&s.gen, &s.compact),
		fx.Invoke(fx.Annotate(func(g prometheus.Gatherer, d pkgif.Digester) {
			s.gatherer = g
			s.alg = d.Algorithm()
		}, fx.ParamTags(`name:"hashaddr_gatherer"`, ``))),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 5. 日志
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, fx.WithLogger(fxEventLogger(o.fxLogging)))

	return fx.New(modules...), nil
}

// fxEventLogger 返回 fx 事件日志构造函数，默认丢弃
func fxEventLogger(enabled bool) func() fxevent.Logger {
	return func() fxevent.Logger {
		if enabled {
			if zl, err := zap.NewDevelopment(); err == nil {
				return &fxevent.ZapLogger{Logger: zl}
			}
		}
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}
}
