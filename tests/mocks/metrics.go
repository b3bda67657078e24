package mocks

import (
	"sync"
	"time"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// DigestObservation 一次 ObserveDigest 调用
type DigestObservation struct {
	Algorithm string
	Duration  time.Duration
	Err       error
}

// MockMetricsRecorder 模拟 MetricsRecorder 接口实现，记录所有调用
type MockMetricsRecorder struct {
	mu             sync.Mutex
	digests        []DigestObservation
	generated      map[string]int
	randomFailures int
}

var _ pkgif.MetricsRecorder = (*MockMetricsRecorder)(nil)

// NewMockMetricsRecorder 创建 MockMetricsRecorder
func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{generated: make(map[string]int)}
}

// ObserveDigest 记录摘要调用
func (m *MockMetricsRecorder) ObserveDigest(algorithm string, d time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.digests = append(m.digests, DigestObservation{Algorithm: algorithm, Duration: d, Err: err})
}

// IncGenerated 记录成功生成
func (m *MockMetricsRecorder) IncGenerated(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated[kind]++
}

// IncRandomFailure 记录随机源失败
func (m *MockMetricsRecorder) IncRandomFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.randomFailures++
}

// Digests 返回所有摘要观测
func (m *MockMetricsRecorder) Digests() []DigestObservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DigestObservation(nil), m.digests...)
}

// Generated 返回某类地址的生成次数
func (m *MockMetricsRecorder) Generated(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generated[kind]
}

// RandomFailures 返回随机源失败次数
func (m *MockMetricsRecorder) RandomFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.randomFailures
}
