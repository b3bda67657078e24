package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// digestBuckets 摘要耗时分桶，覆盖 1µs 到约 4ms
var digestBuckets = prometheus.ExponentialBuckets(1e-6, 4, 7)

// PrometheusRecorder 基于 Prometheus 的 MetricsRecorder 实现
type PrometheusRecorder struct {
	digestDuration *prometheus.HistogramVec
	digestErrors   *prometheus.CounterVec
	generated      *prometheus.CounterVec
	randomFailures prometheus.Counter
}

var _ pkgif.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder 创建并注册指标
//
// 同名指标已注册时复用已有的收集器，因此同一 Registerer 上可以创建多个实例。
func NewPrometheusRecorder(reg prometheus.Registerer, namespace string) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		digestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "digest_duration_seconds",
			Help:      "Time spent computing content digests.",
			Buckets:   digestBuckets,
		}, []string{"algorithm"}),
		digestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_errors_total",
			Help:      "Number of failed digest computations.",
		}, []string{"algorithm"}),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "addresses_generated_total",
			Help:      "Number of addresses generated, by kind.",
		}, []string{"kind"}),
		randomFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "random_failures_total",
			Help:      "Number of failed reads from the random source.",
		}),
	}

	var err error
	if r.digestDuration, err = register(reg, r.digestDuration); err != nil {
		return nil, err
	}
	if r.digestErrors, err = register(reg, r.digestErrors); err != nil {
		return nil, err
	}
	if r.generated, err = register(reg, r.generated); err != nil {
		return nil, err
	}
	if r.randomFailures, err = register(reg, r.randomFailures); err != nil {
		return nil, err
	}
	return r, nil
}

// register 注册收集器，已存在时返回已注册的实例
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveDigest 记录摘要耗时，失败时同时累加错误计数
func (r *PrometheusRecorder) ObserveDigest(algorithm string, d time.Duration, err error) {
	r.digestDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	if err != nil {
		r.digestErrors.WithLabelValues(algorithm).Inc()
	}
}

// IncGenerated 累加生成计数
func (r *PrometheusRecorder) IncGenerated(kind string) {
	r.generated.WithLabelValues(kind).Inc()
}

// IncRandomFailure 累加随机源失败计数
func (r *PrometheusRecorder) IncRandomFailure() {
	r.randomFailures.Inc()
}

// NopRecorder 不记录任何指标
type NopRecorder struct{}

var _ pkgif.MetricsRecorder = NopRecorder{}

func (NopRecorder) ObserveDigest(string, time.Duration, error) {}
func (NopRecorder) IncGenerated(string)                        {}
func (NopRecorder) IncRandomFailure()                          {}
