package hashaddr

import (
	"errors"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-hashaddr/config"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	config *config.Config

	// 外部注入的能力，优先于配置
	digester   pkgif.Digester
	random     pkgif.RandomSource
	symbols    pkgif.SymbolSource
	registerer prometheus.Registerer
	clock      clock.Clock

	// fxLogging 是否输出 fx 装配日志
	fxLogging bool
}

func newOptions() *options {
	return &options{config: config.NewConfig()}
}

// WithConfig 使用完整配置，覆盖此前的配置类选项
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("nil config")
		}
		o.config = cfg.Clone()
		return nil
	}
}

// WithDigestAlgorithm 设置摘要算法（sha256、blake3、blake2b-256）
func WithDigestAlgorithm(algorithm string) Option {
	return func(o *options) error {
		o.config.Digest = o.config.Digest.WithAlgorithm(algorithm)
		return o.config.Digest.Validate()
	}
}

// WithDigester 注入自定义摘要实现，忽略配置中的算法
func WithDigester(d pkgif.Digester) Option {
	return func(o *options) error {
		if d == nil {
			return errors.New("nil digester")
		}
		o.digester = d
		return nil
	}
}

// WithRandomSource 注入安全随机源（默认 crypto/rand）
func WithRandomSource(r pkgif.RandomSource) Option {
	return func(o *options) error {
		if r == nil {
			return errors.New("nil random source")
		}
		o.random = r
		return nil
	}
}

// WithSymbolSource 注入紧凑地址的符号源
func WithSymbolSource(s pkgif.SymbolSource) Option {
	return func(o *options) error {
		if s == nil {
			return errors.New("nil symbol source")
		}
		o.symbols = s
		return nil
	}
}

// WithCompactSeed 为紧凑地址符号源设置固定种子，相同种子产生相同的随机填充
func WithCompactSeed(seed uint64) Option {
	return func(o *options) error {
		o.config.Compact = o.config.Compact.WithSeed(seed)
		return nil
	}
}

// WithRegisterer 将指标注册到指定的 Registerer
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) error {
		if reg == nil {
			return errors.New("nil registerer")
		}
		o.registerer = reg
		return nil
	}
}

// WithMetrics 启用或关闭指标
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.config.Metrics = o.config.Metrics.WithEnabled(enabled)
		return nil
	}
}

// WithCache 设置摘要缓存；size <= 0 保留当前容量
func WithCache(enabled bool, size int) Option {
	return func(o *options) error {
		o.config.Cache = o.config.Cache.WithEnabled(enabled)
		if size > 0 {
			o.config.Cache = o.config.Cache.WithSize(size)
		}
		return o.config.Cache.Validate()
	}
}

// WithClock 设置摘要计时使用的时钟
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		if c == nil {
			return errors.New("nil clock")
		}
		o.clock = c
		return nil
	}
}

// WithFxLogging 输出 fx 装配日志（默认关闭）
func WithFxLogging(enabled bool) Option {
	return func(o *options) error {
		o.fxLogging = enabled
		return nil
	}
}
