package hashaddr

import (
	"context"
	"crypto/sha256"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hashaddr/config"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/tests/mocks"
)

// newTestService 创建测试服务，测试结束时关闭
func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := New(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

// ════════════════════════════════════════════════════════════════════════════
// 生命周期测试
// ════════════════════════════════════════════════════════════════════════════

// TestNew_Defaults 测试默认配置
func TestNew_Defaults(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, config.AlgorithmSHA256, svc.Algorithm())
	assert.NotNil(t, svc.Gatherer())

	a, err := svc.GenerateText(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", a.Hex())
}

// TestNew_InvalidConfig 测试非法配置
func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), WithDigestAlgorithm("md5"))
	assert.Error(t, err)

	cfg := config.NewConfig()
	cfg.Metrics.Namespace = "bad-namespace"
	_, err = New(context.Background(), WithConfig(cfg))
	assert.Error(t, err)

	_, err = New(context.Background(), WithDigester(nil))
	assert.Error(t, err)
}

// TestService_Close 测试关闭后拒绝调用
func TestService_Close(t *testing.T) {
	svc, err := New(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())

	_, err = svc.Generate(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrServiceClosed)
	_, err = svc.GenerateCompactText(context.Background(), "x")
	assert.ErrorIs(t, err, ErrServiceClosed)
	_, err = svc.FlipBitRandomise(Address{}, 0)
	assert.ErrorIs(t, err, ErrServiceClosed)
}

// TestVersionInfo 测试版本信息
func TestVersionInfo(t *testing.T) {
	assert.True(t, strings.HasPrefix(VersionInfo(), "hashaddr "+Version))
}

// ════════════════════════════════════════════════════════════════════════════
// 算法与注入测试
// ════════════════════════════════════════════════════════════════════════════

// TestNew_Algorithms 测试各摘要算法产生不同地址
func TestNew_Algorithms(t *testing.T) {
	seen := make(map[Address]string)
	for _, alg := range []string{config.AlgorithmSHA256, config.AlgorithmBLAKE3, config.AlgorithmBLAKE2b} {
		svc := newTestService(t, WithDigestAlgorithm(alg))
		assert.Equal(t, alg, svc.Algorithm())

		a, err := svc.GenerateText(context.Background(), "hello world")
		require.NoError(t, err)
		_, dup := seen[a]
		assert.False(t, dup, "algorithm %s collides with %s", alg, seen[a])
		seen[a] = alg
	}
}

// TestWithDigester 测试注入摘要实现
func TestWithDigester(t *testing.T) {
	d := mocks.NewMockDigester()
	svc := newTestService(t, WithDigester(d), WithCache(false, 0))
	assert.Equal(t, "mock-sha256", svc.Algorithm())

	a, err := svc.Generate(context.Background(), []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, Address(sha256.Sum256([]byte("abc"))), a)
	assert.Equal(t, int64(1), d.Calls())
}

// TestWithCache 测试缓存避免重复摘要
func TestWithCache(t *testing.T) {
	d := mocks.NewMockDigester()
	svc := newTestService(t, WithDigester(d), WithCache(true, 16))

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(context.Background(), []byte("abc"))
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), d.Calls())
}

// TestDigestFailure 测试摘要失败可以用公共错误判断
func TestDigestFailure(t *testing.T) {
	d := mocks.NewMockDigester()
	d.DigestFunc = func(context.Context, []byte) ([pkgif.DigestSize]byte, error) {
		return [pkgif.DigestSize]byte{}, errors.New("offline")
	}
	svc := newTestService(t, WithDigester(d))

	_, err := svc.Generate(context.Background(), []byte("abc"))
	assert.ErrorIs(t, err, ErrDigestUnavailable)
}

// TestWithRandomSource 测试注入随机源
func TestWithRandomSource(t *testing.T) {
	svc := newTestService(t, WithRandomSource(mocks.NewMockRandomSource(0xFF)))

	out, err := svc.FlipBitRandomise(Address{}, 7)
	require.NoError(t, err)
	assert.Equal(t, "01"+strings.Repeat("f", 62), out.Hex())

	src := mocks.NewMockRandomSource()
	src.ReadFunc = func([]byte) (int, error) { return 0, errors.New("dead") }
	broken := newTestService(t, WithRandomSource(src))
	_, err = broken.FlipBitRandomise(Address{}, 7)
	assert.ErrorIs(t, err, ErrRandomSourceUnavailable)
}

// TestWithCompactSeed 测试相同种子产生相同紧凑地址
func TestWithCompactSeed(t *testing.T) {
	a := newTestService(t, WithCompactSeed(7))
	b := newTestService(t, WithCompactSeed(7))

	c, err := a.GenerateCompactText(context.Background(), "anchor")
	require.NoError(t, err)

	for bitpos := 0; bitpos < 96; bitpos += 5 {
		x, err := a.FlipBitAndRandom(c, bitpos)
		require.NoError(t, err)
		y, err := b.FlipBitAndRandom(c, bitpos)
		require.NoError(t, err)
		assert.Equal(t, x, y)
		assert.Equal(t, bitpos, c.DistBit(x))
	}
}

// TestWithSymbolSource 测试注入符号源
func TestWithSymbolSource(t *testing.T) {
	svc := newTestService(t, WithSymbolSource(mocks.NewMockSymbolSource(0)))
	out, err := svc.FlipBitAndRandom(CompactAddress(strings.Repeat("A", 16)), 0)
	require.NoError(t, err)
	assert.Equal(t, CompactAddress("gAAAAAAAAAAAAAAA"), out)
}

// ════════════════════════════════════════════════════════════════════════════
// 指标测试
// ════════════════════════════════════════════════════════════════════════════

// TestWithRegisterer 测试指标注册到外部 Registerer
func TestWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	mock := clock.NewMock()
	d := mocks.NewMockDigester()
	d.DigestFunc = func(_ context.Context, data []byte) ([pkgif.DigestSize]byte, error) {
		mock.Add(time.Millisecond)
		return sha256.Sum256(data), nil
	}
	svc := newTestService(t, WithRegisterer(reg), WithDigester(d), WithClock(mock), WithCache(false, 0))

	_, err := svc.GenerateAll(context.Background(), [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	require.NoError(t, err)
	_, err = svc.GenerateCompactText(context.Background(), "d")
	require.NoError(t, err)

	want := `
# HELP hashaddr_addresses_generated_total Number of addresses generated, by kind.
# TYPE hashaddr_addresses_generated_total counter
hashaddr_addresses_generated_total{kind="compact"} 1
hashaddr_addresses_generated_total{kind="content"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "hashaddr_addresses_generated_total"))
	assert.Same(t, reg, svc.Gatherer())
}

// TestWithMetrics_Disabled 测试关闭指标
func TestWithMetrics_Disabled(t *testing.T) {
	svc := newTestService(t, WithMetrics(false))
	assert.Nil(t, svc.Gatherer())

	_, err := svc.GenerateText(context.Background(), "x")
	require.NoError(t, err)
}

// ════════════════════════════════════════════════════════════════════════════
// 纯函数测试
// ════════════════════════════════════════════════════════════════════════════

// TestPureHelpers 测试导出的纯函数
func TestPureHelpers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	target, err := svc.GenerateText(ctx, "target")
	require.NoError(t, err)

	near, err := svc.FlipBitRandomise(target, 200)
	require.NoError(t, err)
	far, err := svc.FlipBitRandomise(target, 3)
	require.NoError(t, err)

	addrs := []Address{far, near, target}
	SortByDistance(target, addrs)
	assert.Equal(t, []Address{target, near, far}, addrs)

	assert.Equal(t, 200, DistBit(XORDistance(target, near)))
	assert.Equal(t, DistBitInfinite, DistBit(XORDistance(target, target)))
	assert.Equal(t, 5, CompactDistBit(CompactDistance("A", "B")))

	parsed, err := AddressFrom(target.Hex())
	require.NoError(t, err)
	assert.Equal(t, target, parsed)
}
