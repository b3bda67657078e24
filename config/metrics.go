package config

import (
	"errors"
	"regexp"
)

// metricNamespace Prometheus 命名空间规则
var metricNamespace = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用 Prometheus 指标
	Enabled bool `json:"enabled"`

	// Namespace 指标名前缀
	Namespace string `json:"namespace"`
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "hashaddr",
	}
}

// Validate 验证指标配置
func (c MetricsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if !metricNamespace.MatchString(c.Namespace) {
		return errors.New("metrics namespace must match [a-zA-Z_][a-zA-Z0-9_]*")
	}
	return nil
}

// WithEnabled 设置是否启用指标
func (c MetricsConfig) WithEnabled(enabled bool) MetricsConfig {
	c.Enabled = enabled
	return c
}
