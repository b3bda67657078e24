package addrgen

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-hashaddr/internal/core/metrics"
	"github.com/dep2p/go-hashaddr/internal/core/randsource"
	"github.com/dep2p/go-hashaddr/internal/util/logger"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/pkg/types"
)

var log = logger.Logger("addrgen")

// Generator 地址生成服务
type Generator struct {
	digester pkgif.Digester
	secure   pkgif.RandomSource
	symbols  pkgif.SymbolSource
	recorder pkgif.MetricsRecorder
	clock    clock.Clock
	limit    int
}

var (
	_ pkgif.Generator        = (*Generator)(nil)
	_ pkgif.CompactGenerator = (*Generator)(nil)
)

// Option 生成器选项
type Option func(*Generator)

// WithSymbols 设置紧凑地址的符号源
func WithSymbols(s pkgif.SymbolSource) Option {
	return func(g *Generator) {
		if s != nil {
			g.symbols = s
		}
	}
}

// WithRecorder 设置指标记录器
func WithRecorder(r pkgif.MetricsRecorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithClock 设置计时时钟
func WithClock(c clock.Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithConcurrency 设置 GenerateAll 的并发上限，<= 0 表示 GOMAXPROCS
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.limit = n
	}
}

// New 创建生成器
//
// digester 与 secure 必须提供；符号源默认 math/rand/v2 全局源，
// 指标默认不记录，时钟默认系统时钟。
func New(digester pkgif.Digester, secure pkgif.RandomSource, opts ...Option) (*Generator, error) {
	if digester == nil {
		return nil, ErrNilDigester
	}
	if secure == nil {
		return nil, ErrNilRandomSource
	}

	g := &Generator{
		digester: digester,
		secure:   secure,
		symbols:  randsource.NewSymbols(),
		recorder: metrics.NopRecorder{},
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.limit <= 0 {
		g.limit = runtime.GOMAXPROCS(0)
	}
	return g, nil
}

// ============================================================================
//                              Address
// ============================================================================

// Generate 计算 input 的摘要并包装为 Address
func (g *Generator) Generate(ctx context.Context, input []byte) (types.Address, error) {
	sum, err := g.digest(ctx, "generate", input)
	if err != nil {
		return types.EmptyAddress, err
	}
	addr := types.Address(sum)
	g.recorder.IncGenerated(pkgif.KindContent)
	log.Debug("address generated", "addr", addr.ShortString(), "size", len(input))
	return addr, nil
}

// GenerateText 先经 types.TextToBytes 转换文本再生成地址
func (g *Generator) GenerateText(ctx context.Context, s string) (types.Address, error) {
	return g.Generate(ctx, types.TextToBytes(s))
}

// GenerateAll 并发生成一批地址
//
// 结果顺序与 inputs 一致；任一输入失败时返回该错误且不返回部分结果。
func (g *Generator) GenerateAll(ctx context.Context, inputs [][]byte) ([]types.Address, error) {
	out := make([]types.Address, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.limit)
	for i, input := range inputs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return NewGenerateError("generate_all", fmt.Errorf("%w: %w", types.ErrDigestUnavailable, err), "canceled")
			}
			sum, err := g.digest(egCtx, "generate_all", input)
			if err != nil {
				return err
			}
			out[i] = types.Address(sum)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for range out {
		g.recorder.IncGenerated(pkgif.KindContent)
	}
	log.Debug("batch generated", "count", len(out))
	return out, nil
}

// FlipBitRandomise 返回前 pos 位与 addr 相同、第 pos 位相反、其余位安全随机的新地址
func (g *Generator) FlipBitRandomise(addr types.Address, pos int) (types.Address, error) {
	if pos < 0 || pos >= types.AddressBits {
		return types.EmptyAddress, NewGenerateError("flip_bit_randomise",
			fmt.Errorf("%w: %d", types.ErrBitOutOfRange, pos), "")
	}

	var fill [types.AddressLen]byte
	if err := randsource.Fill(g.secure, fill[:]); err != nil {
		g.recorder.IncRandomFailure()
		log.Warn("random source failed", "op", "flip_bit_randomise", "err", err)
		return types.EmptyAddress, NewGenerateError("flip_bit_randomise", err, "read random fill")
	}

	out, err := addr.WithFlippedBit(pos, fill)
	if err != nil {
		return types.EmptyAddress, NewGenerateError("flip_bit_randomise", err, "")
	}
	g.recorder.IncGenerated(pkgif.KindRandomised)
	log.Debug("address randomised", "from", addr.ShortString(), "to", out.ShortString(), "pos", pos)
	return out, nil
}

// ============================================================================
//                              CompactAddress
// ============================================================================

// GenerateCompact 计算 input 的摘要并截断为 CompactAddress
func (g *Generator) GenerateCompact(ctx context.Context, input []byte) (types.CompactAddress, error) {
	sum, err := g.digest(ctx, "generate_compact", input)
	if err != nil {
		return "", err
	}
	c, err := types.CompactFromDigest(sum[:])
	if err != nil {
		return "", NewGenerateError("generate_compact", err, "")
	}
	g.recorder.IncGenerated(pkgif.KindCompact)
	log.Debug("compact address generated", "addr", c.String())
	return c, nil
}

// GenerateCompactText 先经 types.TextToBytes 转换文本再生成
func (g *Generator) GenerateCompactText(ctx context.Context, s string) (types.CompactAddress, error) {
	return g.GenerateCompact(ctx, types.TextToBytes(s))
}

// FlipBitAndRandom 保留前 bitpos 位、翻转第 bitpos 位，其余位用符号源随机填充
//
// 符号源不是密码学安全的，结果不能用于需要不可预测性的场景。
func (g *Generator) FlipBitAndRandom(addr types.CompactAddress, bitpos int) (types.CompactAddress, error) {
	if bitpos < 0 || bitpos >= types.CompactBits {
		return "", NewGenerateError("flip_bit_and_random",
			fmt.Errorf("%w: %d", types.ErrBitOutOfRange, bitpos), "")
	}

	var fill [types.CompactLen]uint8
	for i := range fill {
		fill[i] = uint8(g.symbols.IntN(1 << types.CompactBitsPerChar))
	}

	out, err := addr.WithFlippedBit(bitpos, fill)
	if err != nil {
		return "", NewGenerateError("flip_bit_and_random", err, "")
	}
	g.recorder.IncGenerated(pkgif.KindCompactRandom)
	return out, nil
}

// ============================================================================
//                              内部方法
// ============================================================================

// digest 调用摘要实现并记录耗时
func (g *Generator) digest(ctx context.Context, op string, input []byte) ([pkgif.DigestSize]byte, error) {
	alg := g.digester.Algorithm()
	start := g.clock.Now()
	sum, err := g.digester.Digest(ctx, input)
	g.recorder.ObserveDigest(alg, g.clock.Since(start), err)
	if err != nil {
		log.Warn("digest failed", "op", op, "algorithm", alg, "err", err)
		if !errors.Is(err, types.ErrDigestUnavailable) {
			err = fmt.Errorf("%w: %w", types.ErrDigestUnavailable, err)
		}
		return sum, NewGenerateError(op, err, "digest")
	}
	return sum, nil
}
