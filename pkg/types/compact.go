package types

import (
	"encoding/base64"
	"fmt"
)

// ============================================================================
//                              CompactAddress - 紧凑地址
// ============================================================================

const (
	// CompactLen 紧凑地址字符数
	CompactLen = 16

	// CompactBitsPerChar 每个字符承载的位数
	CompactBitsPerChar = 6

	// CompactBits 紧凑地址位数（96）
	CompactBits = CompactLen * CompactBitsPerChar

	// compactMinDigest 派生 16 个 base64 字符至少需要的字节数
	compactMinDigest = CompactBits / 8
)

// Base64Alphabet 标准 base64 字母表，字符的下标即其 6 位值
const Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// base64Index 字符到 6 位值的映射，-1 表示不在字母表中
var base64Index = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(Base64Alphabet); i++ {
		m[Base64Alphabet[i]] = int8(i)
	}
	return m
}()

// symbolValue 返回字符的 6 位值，不在字母表中返回 -1
func symbolValue(c byte) int {
	return int(base64Index[c])
}

// CompactAddress 16 字符的截断 base64 地址
//
// 表示摘要的前 96 位，每字符 6 位。它是摘要的有损投影，
// 不是 Address 的另一种编码，无法还原为 Address。
type CompactAddress string

// CompactFromDigest 从摘要字节派生 CompactAddress
//
// 对摘要做标准 base64 编码后取前 16 个字符。摘要至少需要 12 字节。
func CompactFromDigest(digest []byte) (CompactAddress, error) {
	if len(digest) < compactMinDigest {
		return "", fmt.Errorf("%w: digest has %d bytes, need at least %d", ErrInvalidLength, len(digest), compactMinDigest)
	}
	enc := base64.StdEncoding.EncodeToString(digest)
	return CompactAddress(enc[:CompactLen]), nil
}

// ParseCompact 校验并返回 CompactAddress
//
// 字符串必须恰好 16 个字符，且全部属于标准 base64 字母表（不含填充 '='）。
func ParseCompact(s string) (CompactAddress, error) {
	if len(s) != CompactLen {
		return "", fmt.Errorf("%w: compact length %d, want %d", ErrInvalidEncoding, len(s), CompactLen)
	}
	for i := 0; i < len(s); i++ {
		if symbolValue(s[i]) < 0 {
			return "", fmt.Errorf("%w: invalid compact symbol %q at %d", ErrInvalidEncoding, s[i], i)
		}
	}
	return CompactAddress(s), nil
}

// String 返回字符串表示
func (c CompactAddress) String() string {
	return string(c)
}

// Equal 比较两个紧凑地址
func (c CompactAddress) Equal(other CompactAddress) bool {
	return c == other
}

// WithFlippedBit 构造一个在 bitpos 处与 c 首次不同的新紧凑地址
//
// bitpos 以字母表下标的位计（每字符 6 位）。前 bitpos 位保持不变，
// 第 bitpos 位取反，所在字符的剩余低位以及之后所有字符取自 fill。
// fill 的每个元素是 [0, 64) 内的字母表下标；下标 i 对应第 i 个字符。
func (c CompactAddress) WithFlippedBit(bitpos int, fill [CompactLen]uint8) (CompactAddress, error) {
	if bitpos < 0 || bitpos >= CompactBits {
		return "", fmt.Errorf("%w: %d not in [0, %d]", ErrBitOutOfRange, bitpos, CompactBits-1)
	}

	idx := bitpos / CompactBitsPerChar
	if len(c) <= idx {
		return "", fmt.Errorf("%w: compact address too short for bit %d", ErrInvalidEncoding, bitpos)
	}
	v := symbolValue(c[idx])
	if v < 0 {
		return "", fmt.Errorf("%w: invalid compact symbol %q at %d", ErrInvalidEncoding, c[idx], idx)
	}

	off := uint(bitpos % CompactBitsPerChar)
	flip := 0x20 >> off
	keep := 0x3F &^ (0x3F >> off)
	rest := flip - 1

	out := make([]byte, CompactLen)
	for i := 0; i < idx; i++ {
		if symbolValue(c[i]) < 0 {
			return "", fmt.Errorf("%w: invalid compact symbol %q at %d", ErrInvalidEncoding, c[i], i)
		}
		out[i] = c[i]
	}
	out[idx] = Base64Alphabet[(v&keep)|(^v&flip)|(int(fill[idx])&rest)]
	for i := idx + 1; i < CompactLen; i++ {
		out[i] = Base64Alphabet[fill[i]&0x3F]
	}
	return CompactAddress(out), nil
}
