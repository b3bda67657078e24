// Package config 提供 hashaddr 的统一配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，带默认值、校验和 WithXxx 设置方法
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	cfg := config.NewConfig()
//	cfg.Digest = cfg.Digest.WithAlgorithm(config.AlgorithmBLAKE3)
//	cfg.Cache = cfg.Cache.WithEnabled(true)
//
//	cfg, err := config.LoadFile("hashaddr.json")
package config

import "go.uber.org/multierr"

// Config 是 hashaddr 的完整配置结构
//
//   - Digest: 摘要算法
//   - Cache: 摘要缓存
//   - Metrics: Prometheus 指标
//   - Compact: 紧凑地址随机填充
type Config struct {
	// Digest 摘要配置
	Digest DigestConfig `json:"digest"`

	// Cache 摘要缓存配置
	Cache CacheConfig `json:"cache"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`

	// Compact 紧凑地址配置
	Compact CompactConfig `json:"compact"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Digest:  DefaultDigestConfig(),
		Cache:   DefaultCacheConfig(),
		Metrics: DefaultMetricsConfig(),
		Compact: DefaultCompactConfig(),
	}
}

// Validate 验证配置的有效性
//
// 校验所有子配置，返回的错误包含全部失败项（multierr.Errors 可拆分）。
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Digest.Validate(),
		c.Cache.Validate(),
		c.Metrics.Validate(),
		c.Compact.Validate(),
	)
}

// Clone 返回配置的深拷贝
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
