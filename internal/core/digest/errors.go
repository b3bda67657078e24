package digest

import "errors"

var (
	// ErrUnknownAlgorithm 不支持的摘要算法
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

	// ErrNilDigester 被包装的摘要实现为 nil
	ErrNilDigester = errors.New("digest: nil digester")
)
