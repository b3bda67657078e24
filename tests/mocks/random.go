package mocks

import (
	"sync"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// MockRandomSource 模拟 RandomSource 接口实现
//
// 默认按 Pattern 循环输出字节；Pattern 为空时输出全零。
type MockRandomSource struct {
	// Pattern 输出的字节序列
	Pattern []byte

	// 可覆盖的方法
	ReadFunc func(p []byte) (int, error)

	mu  sync.Mutex
	pos int
}

var _ pkgif.RandomSource = (*MockRandomSource)(nil)

// NewMockRandomSource 创建按 pattern 循环输出的随机源
func NewMockRandomSource(pattern ...byte) *MockRandomSource {
	return &MockRandomSource{Pattern: pattern}
}

// Read 填充 p
func (m *MockRandomSource) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range p {
		if len(m.Pattern) == 0 {
			p[i] = 0
			continue
		}
		p[i] = m.Pattern[m.pos%len(m.Pattern)]
		m.pos++
	}
	return len(p), nil
}

// MockSymbolSource 模拟 SymbolSource 接口实现
//
// 默认按 Values 循环输出（对 n 取模）；Values 为空时总是返回 0。
type MockSymbolSource struct {
	// Values 输出的整数序列
	Values []int

	// 可覆盖的方法
	IntNFunc func(n int) int

	mu  sync.Mutex
	pos int
}

var _ pkgif.SymbolSource = (*MockSymbolSource)(nil)

// NewMockSymbolSource 创建按 values 循环输出的符号源
func NewMockSymbolSource(values ...int) *MockSymbolSource {
	return &MockSymbolSource{Values: values}
}

// IntN 返回 [0, n) 内的值
func (m *MockSymbolSource) IntN(n int) int {
	if m.IntNFunc != nil {
		return m.IntNFunc(n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Values) == 0 {
		return 0
	}
	v := m.Values[m.pos%len(m.Values)]
	m.pos++
	return v % n
}
