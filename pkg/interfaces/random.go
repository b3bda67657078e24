// Package interfaces 定义 hashaddr 公共接口
//
// 本文件定义随机源接口。
package interfaces

// RandomSource 密码学安全随机源
//
// 与 io.Reader 相同的签名，crypto/rand.Reader 可直接使用。
// Read 返回的错误被视为随机源不可用。
type RandomSource interface {
	Read(p []byte) (n int, err error)
}

// SymbolSource 均匀分布的整数源，用于 CompactAddress 的随机填充
//
// 不要求密码学安全。
type SymbolSource interface {
	// IntN 返回 [0, n) 内的均匀随机整数
	IntN(n int) int
}
