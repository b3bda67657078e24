package types

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/mr-tron/base58"
)

// ============================================================================
//                              十六进制
// ============================================================================

// Hex 返回 64 位小写十六进制字符串，每字节两位，补零
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// ParseHex 从十六进制字符串解析 Address
//
// 字符串必须是偶数长度的合法十六进制，且解码后恰好 32 字节。
func ParseHex(s string) (Address, error) {
	if len(s) != AddressLen*2 {
		return EmptyAddress, fmt.Errorf("%w: hex length %d, want %d", ErrInvalidEncoding, len(s), AddressLen*2)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return AddressFromBytes(b)
}

// ============================================================================
//                              Base64
// ============================================================================

// 严格模式：拒绝末尾填充位非零的非规范编码。
// 解码器仍会跳过 \r 和 \n，因此 ParseBase64 先校验长度与换行。
var (
	base64PaddedLen = base64.StdEncoding.EncodedLen(AddressLen)
	base64RawLen    = base64.RawStdEncoding.EncodedLen(AddressLen)

	stdBase64 = base64.StdEncoding.Strict()
	rawBase64 = base64.RawStdEncoding.Strict()
)

// Base64 返回标准 base64 表示（字母表 A-Z a-z 0-9 + /，含填充，共 44 字符）
func (a Address) Base64() string {
	return base64.StdEncoding.EncodeToString(a[:])
}

// ParseBase64 从标准 base64 字符串解析 Address
//
// 输入可以带填充（44 字符）也可以不带（43 字符）。
// URL-safe 字母表（- _）以及任何换行都不被接受。
func ParseBase64(s string) (Address, error) {
	if len(s) != base64PaddedLen && len(s) != base64RawLen {
		return EmptyAddress, fmt.Errorf("%w: base64 length %d, want %d or %d", ErrInvalidEncoding, len(s), base64RawLen, base64PaddedLen)
	}
	if strings.ContainsAny(s, "\r\n") {
		return EmptyAddress, fmt.Errorf("%w: base64 contains line break", ErrInvalidEncoding)
	}

	enc := rawBase64
	if strings.HasSuffix(s, "=") {
		enc = stdBase64
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: base64 decodes to %d bytes", ErrInvalidEncoding, len(b))
	}
	return Address(b), nil
}

// ============================================================================
//                              Base58
// ============================================================================

// Base58 返回 Bitcoin 风格的 Base58 表示
func (a Address) Base58() string {
	return base58.Encode(a[:])
}

// ParseBase58 从 Base58 字符串解析 Address
func ParseBase58(s string) (Address, error) {
	if s == "" {
		return EmptyAddress, fmt.Errorf("%w: empty base58 string", ErrInvalidEncoding)
	}
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: base58 decodes to %d bytes", ErrInvalidEncoding, len(b))
	}
	return Address(b), nil
}

// ============================================================================
//                              文本
// ============================================================================

// TextToBytes 把文本按 UTF-16 码元逐个截取低 8 位转换为字节
//
// 注意：这是有损转换。码点 >= 256 的字符会被截断，代理对产生两个字节，
// 非法 UTF-8 序列先变为 U+FFFD。已有 ASCII 输入的摘要值依赖该行为，不可改为 UTF-8。
func TextToBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}
