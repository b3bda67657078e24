package digest

import (
	"context"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"

	"github.com/dep2p/go-hashaddr/config"
	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/pkg/types"
)

// sumFunc 纯函数形式的摘要
type sumFunc func(data []byte) [pkgif.DigestSize]byte

// hashDigester 把一个纯摘要函数适配为 Digester
type hashDigester struct {
	algorithm string
	sum       sumFunc
}

var _ pkgif.Digester = (*hashDigester)(nil)

// Algorithm 返回算法名称
func (d *hashDigester) Algorithm() string {
	return d.algorithm
}

// Digest 计算摘要；上下文已结束时不计算
func (d *hashDigester) Digest(ctx context.Context, data []byte) ([pkgif.DigestSize]byte, error) {
	if err := ctx.Err(); err != nil {
		return [pkgif.DigestSize]byte{}, fmt.Errorf("%w: %s: %w", types.ErrDigestUnavailable, d.algorithm, err)
	}
	return d.sum(data), nil
}

// NewSHA256 返回 SHA-256 摘要实现
func NewSHA256() pkgif.Digester {
	return &hashDigester{algorithm: config.AlgorithmSHA256, sum: sha256.Sum256}
}

// NewBLAKE3 返回 BLAKE3-256 摘要实现
func NewBLAKE3() pkgif.Digester {
	return &hashDigester{algorithm: config.AlgorithmBLAKE3, sum: blake3.Sum256}
}

// NewBLAKE2b 返回 BLAKE2b-256 摘要实现
func NewBLAKE2b() pkgif.Digester {
	return &hashDigester{algorithm: config.AlgorithmBLAKE2b, sum: blake2b.Sum256}
}

// New 按算法名称创建摘要实现
func New(algorithm string) (pkgif.Digester, error) {
	switch algorithm {
	case config.AlgorithmSHA256:
		return NewSHA256(), nil
	case config.AlgorithmBLAKE3:
		return NewBLAKE3(), nil
	case config.AlgorithmBLAKE2b:
		return NewBLAKE2b(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
