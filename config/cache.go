package config

import "errors"

// CacheConfig 摘要缓存配置
//
// 启用后对相同输入的重复摘要直接返回缓存结果（LRU 淘汰）。
type CacheConfig struct {
	// Enabled 是否启用
	Enabled bool `json:"enabled"`

	// Size 最多缓存的条目数
	Size int `json:"size"`

	// MaxInputSize 超过该字节数的输入不缓存，避免大输入占用内存
	MaxInputSize int `json:"max_input_size"`
}

// DefaultCacheConfig 返回默认缓存配置
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      false,
		Size:         4096,
		MaxInputSize: 1024,
	}
}

// Validate 验证缓存配置
func (c CacheConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Size <= 0 {
		return errors.New("cache size must be positive")
	}
	if c.MaxInputSize <= 0 {
		return errors.New("cache max input size must be positive")
	}
	return nil
}

// WithEnabled 设置是否启用缓存
func (c CacheConfig) WithEnabled(enabled bool) CacheConfig {
	c.Enabled = enabled
	return c
}

// WithSize 设置缓存条目数
func (c CacheConfig) WithSize(size int) CacheConfig {
	c.Size = size
	return c
}
