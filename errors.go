package hashaddr

import (
	"errors"

	"github.com/dep2p/go-hashaddr/pkg/types"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 服务生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrServiceClosed 服务已关闭
	ErrServiceClosed = errors.New("service closed")

	// ────────────────────────────────────────────────────────────────────────
	// 地址错误（与 pkg/types 相同的哨兵值，可直接用 errors.Is 判断）
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidLength 字节长度非法
	ErrInvalidLength = types.ErrInvalidLength

	// ErrInvalidEncoding 文本编码非法
	ErrInvalidEncoding = types.ErrInvalidEncoding

	// ErrBitOutOfRange 位索引越界
	ErrBitOutOfRange = types.ErrBitOutOfRange

	// ErrDigestUnavailable 摘要能力不可用
	ErrDigestUnavailable = types.ErrDigestUnavailable

	// ErrRandomSourceUnavailable 随机源不可用
	ErrRandomSourceUnavailable = types.ErrRandomSourceUnavailable
)
