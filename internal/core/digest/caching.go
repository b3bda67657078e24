package digest

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
	"github.com/dep2p/go-hashaddr/pkg/types"
)

// CachingDigester 带 LRU 缓存的摘要实现
//
// 以输入字节为键缓存摘要结果。超过 maxInput 字节的输入直接透传，不进入缓存。
// 失败结果不缓存。
type CachingDigester struct {
	inner    pkgif.Digester
	cache    *lru.Cache[string, [pkgif.DigestSize]byte]
	maxInput int

	hits   atomic.Uint64
	misses atomic.Uint64
}

var _ pkgif.Digester = (*CachingDigester)(nil)

// CacheStats 缓存命中统计
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewCaching 创建带缓存的摘要实现
func NewCaching(inner pkgif.Digester, size, maxInput int) (*CachingDigester, error) {
	if inner == nil {
		return nil, ErrNilDigester
	}
	cache, err := lru.New[string, [pkgif.DigestSize]byte](size)
	if err != nil {
		return nil, fmt.Errorf("digest: create cache: %w", err)
	}
	return &CachingDigester{
		inner:    inner,
		cache:    cache,
		maxInput: maxInput,
	}, nil
}

// Algorithm 返回被包装实现的算法名称
func (c *CachingDigester) Algorithm() string {
	return c.inner.Algorithm()
}

// Digest 优先从缓存返回
//
// ctx 已取消时无论是否命中都返回错误。
func (c *CachingDigester) Digest(ctx context.Context, data []byte) ([pkgif.DigestSize]byte, error) {
	if err := ctx.Err(); err != nil {
		return [pkgif.DigestSize]byte{}, fmt.Errorf("%w: %s: %w", types.ErrDigestUnavailable, c.inner.Algorithm(), err)
	}
	if len(data) > c.maxInput {
		return c.inner.Digest(ctx, data)
	}

	key := string(data)
	if sum, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return sum, nil
	}
	c.misses.Add(1)

	sum, err := c.inner.Digest(ctx, data)
	if err != nil {
		return sum, err
	}
	c.cache.Add(key, sum)
	return sum, nil
}

// Stats 返回缓存统计
func (c *CachingDigester) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.cache.Len(),
	}
}

// Purge 清空缓存
func (c *CachingDigester) Purge() {
	c.cache.Purge()
}
