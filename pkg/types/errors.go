// Package types 定义 hashaddr 的基础类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              地址构造错误
// ============================================================================

var (
	// ErrInvalidLength 字节长度不是 32（或摘要不足 12 字节，无法派生 CompactAddress）
	ErrInvalidLength = errors.New("invalid address length")

	// ErrInvalidEncoding hex/base64/base58/compact 文本无法解码为合法地址
	ErrInvalidEncoding = errors.New("invalid address encoding")

	// ErrBitOutOfRange 位索引超出地址范围
	ErrBitOutOfRange = errors.New("bit position out of range")
)

// ============================================================================
//                              外部能力错误
// ============================================================================

var (
	// ErrDigestUnavailable 摘要能力不可用，调用方操作失败，不做内部重试
	ErrDigestUnavailable = errors.New("digest unavailable")

	// ErrRandomSourceUnavailable 随机源不可用，调用方操作失败，不做内部重试
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
)
