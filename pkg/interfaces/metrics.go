// Package interfaces 定义 hashaddr 公共接口
//
// 本文件定义指标记录接口。
package interfaces

import "time"

// 地址生成种类（addresses_generated_total 的 kind 标签）
const (
	KindContent       = "content"
	KindRandomised    = "randomised"
	KindCompact       = "compact"
	KindCompactRandom = "compact_randomised"
)

// MetricsRecorder 定义地址生成过程的指标记录
//
// 实现必须并发安全；禁用指标时使用空实现。
type MetricsRecorder interface {
	// ObserveDigest 记录一次摘要调用的耗时与结果
	ObserveDigest(algorithm string, d time.Duration, err error)

	// IncGenerated 记录一次成功生成
	IncGenerated(kind string)

	// IncRandomFailure 记录一次随机源失败
	IncRandomFailure()
}
