package config

import "errors"

// ValidateAll 验证整个配置的有效性，nil 配置视为无效
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并修复可自动修复的问题
//
//   - 未设置算法 -> 使用默认算法
//   - 启用缓存但大小非正 -> 使用默认大小
//   - 启用指标但命名空间为空 -> 使用默认命名空间
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Digest.Algorithm == "" {
		c.Digest.Algorithm = DefaultDigestConfig().Algorithm
	}
	if c.Cache.Enabled {
		if c.Cache.Size <= 0 {
			c.Cache.Size = DefaultCacheConfig().Size
		}
		if c.Cache.MaxInputSize <= 0 {
			c.Cache.MaxInputSize = DefaultCacheConfig().MaxInputSize
		}
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsConfig().Namespace
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
