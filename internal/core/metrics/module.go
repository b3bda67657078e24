package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-hashaddr/config"
	"github.com/dep2p/go-hashaddr/internal/util/logger"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

var log = logger.Logger("metrics")

// Params 指标模块依赖参数
type Params struct {
	fx.In

	Config     *config.Config        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// Result 指标模块输出
type Result struct {
	fx.Out

	Recorder pkgif.MetricsRecorder

	// Gatherer 指标读取入口；外部 Registerer 不是 Gatherer 时为 nil
	Gatherer prometheus.Gatherer `name:"hashaddr_gatherer"`
}

// NewFromParams 根据配置创建指标记录器
func NewFromParams(p Params) (Result, error) {
	cfg := config.DefaultMetricsConfig()
	if p.Config != nil {
		cfg = p.Config.Metrics
	}
	if !cfg.Enabled {
		log.Debug("metrics disabled")
		return Result{Recorder: NopRecorder{}}, nil
	}

	reg := p.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	rec, err := NewPrometheusRecorder(reg, cfg.Namespace)
	if err != nil {
		return Result{}, err
	}

	gatherer, _ := reg.(prometheus.Gatherer)
	log.Debug("metrics ready", "namespace", cfg.Namespace)
	return Result{Recorder: rec, Gatherer: gatherer}, nil
}

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(NewFromParams),
	)
}
