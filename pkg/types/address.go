package types

import (
	"fmt"
	"math/bits"
)

// ============================================================================
//                              Address - 哈希地址
// ============================================================================

const (
	// AddressLen 地址字节长度
	AddressLen = 32

	// AddressBits 地址位数
	AddressBits = AddressLen * 8
)

// Address 32 字节（256 位）定长地址
//
// 值类型：拷贝之间不共享可变状态，两个地址相等当且仅当 32 字节全部相同。
// 位索引 0 是第 0 字节的最高位。
//
// 外部表示格式：
//   - String()/Hex(): 64 位小写十六进制
//   - Base64(): 标准 base64（44 字符，含填充）
//   - Base58(): Bitcoin 风格 Base58
type Address [AddressLen]byte

// EmptyAddress 全零地址
var EmptyAddress Address

// AddressFromBytes 从字节切片创建 Address
//
// 长度必须恰好为 32，否则返回 ErrInvalidLength。
// 返回的地址持有输入的拷贝。
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), AddressLen)
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// AddressFrom 从任意支持的表示创建 Address
//
// 支持：
//   - Address / [32]byte: 直接返回
//   - []byte: 等同 AddressFromBytes
//   - string: 先尝试十六进制，再尝试 base64
func AddressFrom(v any) (Address, error) {
	switch x := v.(type) {
	case Address:
		return x, nil
	case [AddressLen]byte:
		return Address(x), nil
	case []byte:
		return AddressFromBytes(x)
	case string:
		if a, err := ParseHex(x); err == nil {
			return a, nil
		}
		return ParseBase64(x)
	default:
		return EmptyAddress, fmt.Errorf("%w: unsupported type %T", ErrInvalidEncoding, v)
	}
}

// Bytes 返回地址字节的拷贝
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLen)
	copy(b, a[:])
	return b
}

// Equal 比较两个地址是否相等
func (a Address) Equal(other Address) bool {
	return a == other
}

// IsEmpty 检查地址是否为全零
func (a Address) IsEmpty() bool {
	return a == EmptyAddress
}

// String 返回十六进制表示
func (a Address) String() string {
	return a.Hex()
}

// ShortString 返回前 8 个十六进制字符，用于日志
func (a Address) ShortString() string {
	return a.Hex()[:8]
}

// Bit 返回第 pos 位（0 或 1）
//
// pos 超出 [0, 255] 时 panic。
func (a Address) Bit(pos int) uint8 {
	if pos < 0 || pos >= AddressBits {
		panic(fmt.Sprintf("types: bit position %d out of range", pos))
	}
	return (a[pos/8] >> (7 - uint(pos%8))) & 1
}

// CommonPrefixLen 返回首个差异位的索引
//
// 两地址相等时返回 AddressBits。
func (a Address) CommonPrefixLen(other Address) int {
	for i := 0; i < AddressLen; i++ {
		if x := a[i] ^ other[i]; x != 0 {
			return i*8 + bits.LeadingZeros8(x)
		}
	}
	return AddressBits
}

// WithFlippedBit 构造一个在 pos 处与 a 首次不同的新地址
//
// 新地址的前 pos 位与 a 相同，第 pos 位取反，其余位（pos+1 .. 255）取自 fill
// 的对应位。fill 通常由调用方从安全随机源读取，本函数本身不产生随机数。
func (a Address) WithFlippedBit(pos int, fill [AddressLen]byte) (Address, error) {
	if pos < 0 || pos >= AddressBits {
		return EmptyAddress, fmt.Errorf("%w: %d not in [0, %d]", ErrBitOutOfRange, pos, AddressBits-1)
	}

	idx := pos / 8
	off := uint(pos % 8)
	flip := byte(0x80) >> off
	keep := ^(byte(0xFF) >> off) // pos 之前的高位
	rest := flip - 1              // pos 之后的低位

	out := Address(fill)
	copy(out[:idx], a[:idx])
	out[idx] = (a[idx] & keep) | (^a[idx] & flip) | (fill[idx] & rest)
	return out, nil
}
