package config

import "fmt"

// 支持的摘要算法
const (
	// AlgorithmSHA256 SHA-256（默认，minio/sha256-simd 实现）
	AlgorithmSHA256 = "sha256"

	// AlgorithmBLAKE3 BLAKE3，256 位输出
	AlgorithmBLAKE3 = "blake3"

	// AlgorithmBLAKE2b BLAKE2b-256
	AlgorithmBLAKE2b = "blake2b-256"
)

// DigestConfig 摘要配置
type DigestConfig struct {
	// Algorithm 摘要算法
	// 可选值: "sha256", "blake3", "blake2b-256"
	//
	// 改变算法会改变所有地址，同一网络内必须一致。
	Algorithm string `json:"algorithm"`
}

// DefaultDigestConfig 返回默认摘要配置
func DefaultDigestConfig() DigestConfig {
	return DigestConfig{
		Algorithm: AlgorithmSHA256,
	}
}

// Validate 验证摘要配置
func (c DigestConfig) Validate() error {
	switch c.Algorithm {
	case AlgorithmSHA256, AlgorithmBLAKE3, AlgorithmBLAKE2b:
		return nil
	default:
		return fmt.Errorf("invalid digest algorithm %q: must be %s, %s or %s",
			c.Algorithm, AlgorithmSHA256, AlgorithmBLAKE3, AlgorithmBLAKE2b)
	}
}

// WithAlgorithm 设置摘要算法
func (c DigestConfig) WithAlgorithm(algorithm string) DigestConfig {
	c.Algorithm = algorithm
	return c
}
