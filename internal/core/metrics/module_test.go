package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-hashaddr/config"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Default 测试默认使用独立 Registry
func TestModule_Default(t *testing.T) {
	var rec pkgif.MetricsRecorder
	var gatherer prometheus.Gatherer

	app := fxtest.New(t,
		Module(),
		fx.Populate(&rec),
		fx.Invoke(fx.Annotate(func(g prometheus.Gatherer) {
			gatherer = g
		}, fx.ParamTags(`name:"hashaddr_gatherer"`))),
	)
	defer app.RequireStart().RequireStop()

	require.IsType(t, &PrometheusRecorder{}, rec)
	require.NotNil(t, gatherer)

	rec.IncGenerated(pkgif.KindContent)
	families, err := gatherer.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "hashaddr_addresses_generated_total")
}

// TestModule_Disabled 测试关闭指标
func TestModule_Disabled(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Metrics = cfg.Metrics.WithEnabled(false)

	var rec pkgif.MetricsRecorder
	app := fxtest.New(t, fx.Supply(cfg), Module(), fx.Populate(&rec))
	defer app.RequireStart().RequireStop()

	assert.Equal(t, NopRecorder{}, rec)
}

// TestNewFromParams_ExternalRegisterer 测试使用外部 Registerer
func TestNewFromParams_ExternalRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	res, err := NewFromParams(Params{Registerer: reg})
	require.NoError(t, err)
	assert.Same(t, reg, res.Gatherer)

	res.Recorder.IncRandomFailure()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
