// Package addrgen 实现地址生成服务
//
// Generator 同时实现 interfaces.Generator 与 interfaces.CompactGenerator：
//
//   - Generate / GenerateText: 摘要 -> Address
//   - GenerateAll: 并发批量生成，结果顺序与输入一致，首个错误取消其余任务
//   - FlipBitRandomise: 保留前缀、翻转指定位、其余位取自安全随机源
//   - GenerateCompact / GenerateCompactText: 摘要 -> CompactAddress
//   - FlipBitAndRandom: 紧凑地址版本，随机填充使用非安全符号源
//
// 摘要与随机源失败不重试，分别包装 types.ErrDigestUnavailable 与
// types.ErrRandomSourceUnavailable 后以 *GenerateError 返回。
//
// Generator 只持有不可变配置和并发安全的能力，可被任意多个 goroutine 同时调用。
package addrgen
