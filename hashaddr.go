package hashaddr

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-hashaddr/internal/util/logger"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "hashaddr " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              Service
// ════════════════════════════════════════════════════════════════════════════

var log = logger.Logger("hashaddr")

// stopTimeout Close 等待 fx 应用停止的最长时间
const stopTimeout = 5 * time.Second

// Service 地址生成服务
//
// 同时提供 Address 和 CompactAddress 的生成，并发安全。
type Service struct {
	app      *fx.App
	gen      pkgif.Generator
	compact  pkgif.CompactGenerator
	gatherer prometheus.Gatherer
	alg      string

	mu     sync.RWMutex
	closed bool
}

// New 创建并启动服务
func New(ctx context.Context, opts ...Option) (*Service, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	s := &Service{}
	app, err := buildFxApp(o, s)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("start service: %w", err)
	}
	s.app = app

	log.Info("service started", "version", Version, "algorithm", s.alg)
	return s, nil
}

// Close 停止服务，重复调用无副作用
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		return fmt.Errorf("stop service: %w", err)
	}
	log.Info("service stopped")
	return nil
}

// Algorithm 返回当前使用的摘要算法名称
func (s *Service) Algorithm() string {
	return s.alg
}

// Gatherer 返回指标读取入口
//
// 指标关闭，或外部注入的 Registerer 不是 prometheus.Gatherer 时返回 nil。
func (s *Service) Gatherer() prometheus.Gatherer {
	return s.gatherer
}

func (s *Service) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrServiceClosed
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              地址生成
// ════════════════════════════════════════════════════════════════════════════

// Generate 计算 input 的摘要并包装为 Address
func (s *Service) Generate(ctx context.Context, input []byte) (types.Address, error) {
	if err := s.check(); err != nil {
		return types.EmptyAddress, err
	}
	return s.gen.Generate(ctx, input)
}

// GenerateText 先经 TextToBytes 转换文本再生成地址
func (s *Service) GenerateText(ctx context.Context, text string) (types.Address, error) {
	if err := s.check(); err != nil {
		return types.EmptyAddress, err
	}
	return s.gen.GenerateText(ctx, text)
}

// GenerateAll 并发生成一批地址，结果顺序与输入一致
func (s *Service) GenerateAll(ctx context.Context, inputs [][]byte) ([]types.Address, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.gen.GenerateAll(ctx, inputs)
}

// FlipBitRandomise 返回与 addr 在第 pos 位首次不同的安全随机地址
func (s *Service) FlipBitRandomise(addr types.Address, pos int) (types.Address, error) {
	if err := s.check(); err != nil {
		return types.EmptyAddress, err
	}
	return s.gen.FlipBitRandomise(addr, pos)
}

// GenerateCompact 计算 input 的摘要并截断为 CompactAddress
func (s *Service) GenerateCompact(ctx context.Context, input []byte) (types.CompactAddress, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	return s.compact.GenerateCompact(ctx, input)
}

// GenerateCompactText 先经 TextToBytes 转换文本再生成紧凑地址
func (s *Service) GenerateCompactText(ctx context.Context, text string) (types.CompactAddress, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	return s.compact.GenerateCompactText(ctx, text)
}

// FlipBitAndRandom 返回与 addr 在第 bitpos 位首次不同的紧凑地址（非安全随机）
func (s *Service) FlipBitAndRandom(addr types.CompactAddress, bitpos int) (types.CompactAddress, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	return s.compact.FlipBitAndRandom(addr, bitpos)
}
