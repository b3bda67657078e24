package mocks

import (
	"context"
	"crypto/sha256"
	"sync/atomic"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// MockDigester 模拟 Digester 接口实现
type MockDigester struct {
	// AlgorithmValue 算法名称
	AlgorithmValue string

	// 可覆盖的方法
	DigestFunc func(ctx context.Context, data []byte) ([pkgif.DigestSize]byte, error)

	// calls Digest 调用次数
	calls atomic.Int64
}

var _ pkgif.Digester = (*MockDigester)(nil)

// NewMockDigester 创建默认使用 crypto/sha256 的 MockDigester
func NewMockDigester() *MockDigester {
	return &MockDigester{AlgorithmValue: "mock-sha256"}
}

// Algorithm 返回算法名称
func (m *MockDigester) Algorithm() string {
	return m.AlgorithmValue
}

// Digest 计算摘要
func (m *MockDigester) Digest(ctx context.Context, data []byte) ([pkgif.DigestSize]byte, error) {
	m.calls.Add(1)
	if m.DigestFunc != nil {
		return m.DigestFunc(ctx, data)
	}
	return sha256.Sum256(data), nil
}

// Calls 返回 Digest 调用次数
func (m *MockDigester) Calls() int64 {
	return m.calls.Load()
}
