// Package metrics 提供地址生成的 Prometheus 指标
//
// 导出的指标（<ns> 为 config.MetricsConfig.Namespace，默认 hashaddr）：
//
//	<ns>_digest_duration_seconds{algorithm}   摘要耗时直方图
//	<ns>_digest_errors_total{algorithm}       摘要失败次数
//	<ns>_addresses_generated_total{kind}      成功生成的地址数
//	<ns>_random_failures_total                随机源失败次数
//
// 指标关闭时模块提供 NopRecorder。
//
// # Fx 模块
//
//	app := fx.New(
//	    fx.Supply(cfg),
//	    fx.Provide(func() prometheus.Registerer { return prometheus.DefaultRegisterer }),
//	    metrics.Module(),
//	)
//
// 未提供 Registerer 时使用独立的 prometheus.Registry，
// 可通过名为 hashaddr_gatherer 的 prometheus.Gatherer 读取。
package metrics
