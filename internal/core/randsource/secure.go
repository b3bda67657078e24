package randsource

import (
	"crypto/rand"
	"fmt"
	"io"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/pkg/types"
)

// NewSecure 返回基于 crypto/rand 的安全随机源
func NewSecure() pkgif.RandomSource {
	return rand.Reader
}

// Fill 用 src 填满 p
//
// 任何读取错误（包括短读）都包装为 types.ErrRandomSourceUnavailable。
func Fill(src pkgif.RandomSource, p []byte) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", types.ErrRandomSourceUnavailable)
	}
	if _, err := io.ReadFull(src, p); err != nil {
		return fmt.Errorf("%w: %w", types.ErrRandomSourceUnavailable, err)
	}
	return nil
}
