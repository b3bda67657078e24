// Package interfaces 定义 hashaddr 的公共接口
//
// 外部能力（由调用方注入，可在测试中替换为确定性实现）：
//   - digest.go     - Digester 摘要能力
//   - random.go     - RandomSource 安全随机源、SymbolSource 非安全符号源
//
// 核心服务：
//   - generator.go  - Generator / CompactGenerator 地址生成
//   - metrics.go    - MetricsRecorder 指标记录
//
// 所有接口实现都必须并发安全。
package interfaces
