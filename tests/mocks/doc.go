// Package mocks 提供统一的测试 Mock 实现
//
// 所有 Mock 都采用"默认行为 + 可覆盖函数字段"的形式：
// 不设置 XxxFunc 时使用确定的默认实现，设置后完全由测试接管。
//
// # 外部能力 Mock
//
//   - MockDigester: 模拟 interfaces.Digester，默认使用 crypto/sha256，记录调用次数
//   - MockRandomSource: 模拟 interfaces.RandomSource，按固定字节序列循环输出
//   - MockSymbolSource: 模拟 interfaces.SymbolSource，按固定整数序列循环输出
//
// # 指标 Mock
//
//   - MockMetricsRecorder: 模拟 interfaces.MetricsRecorder，记录所有调用
//
// # 使用示例
//
//	d := mocks.NewMockDigester()
//	d.DigestFunc = func(ctx context.Context, data []byte) ([32]byte, error) {
//	    return [32]byte{}, errors.New("hsm offline")
//	}
package mocks
