package config

// CompactConfig 紧凑地址配置
//
// 紧凑地址的随机填充使用非密码学随机数（math/rand/v2）。
// 设置 Seed 可得到可复现的序列，仅用于测试和仿真。
type CompactConfig struct {
	// Seed 随机种子
	Seed uint64 `json:"seed,omitempty"`

	// Seeded 是否使用 Seed；为 false 时使用随机种子
	Seeded bool `json:"seeded,omitempty"`
}

// DefaultCompactConfig 返回默认紧凑地址配置
func DefaultCompactConfig() CompactConfig {
	return CompactConfig{}
}

// Validate 验证紧凑地址配置
func (c CompactConfig) Validate() error {
	return nil
}

// WithSeed 设置固定种子
func (c CompactConfig) WithSeed(seed uint64) CompactConfig {
	c.Seed = seed
	c.Seeded = true
	return c
}
