package types

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqAddress 返回字节为 0, 1, ..., 31 的地址
func seqAddress() Address {
	var a Address
	for i := range a {
		a[i] = byte(i)
	}
	return a
}

// randomAddress 返回安全随机地址
func randomAddress(t *testing.T) Address {
	t.Helper()
	var a Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}

// ============================================================================
// 构造测试
// ============================================================================

// TestAddressFromBytes_RoundTrip 测试字节往返
func TestAddressFromBytes_RoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		b := make([]byte, AddressLen)
		_, err := rand.Read(b)
		require.NoError(t, err)

		a, err := AddressFromBytes(b)
		require.NoError(t, err)
		assert.Equal(t, b, a.Bytes())
	}
}

// TestAddressFromBytes_InvalidLength 测试非法长度
func TestAddressFromBytes_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 64} {
		_, err := AddressFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidLength, "length %d", n)
	}
}

// TestAddress_BytesIsCopy 测试 Bytes 返回拷贝，值不可被外部修改
func TestAddress_BytesIsCopy(t *testing.T) {
	a := seqAddress()
	b := a.Bytes()
	b[0] = 0xFF

	assert.Equal(t, byte(0), a[0])

	src := make([]byte, AddressLen)
	c, err := AddressFromBytes(src)
	require.NoError(t, err)
	src[0] = 0xFF
	assert.True(t, c.IsEmpty())
}

// TestAddress_Equal 测试相等性
func TestAddress_Equal(t *testing.T) {
	a := seqAddress()
	b := seqAddress()
	assert.True(t, a.Equal(b))

	b[31] ^= 1
	assert.False(t, a.Equal(b))
}

// TestAddressFrom 测试多种输入表示
func TestAddressFrom(t *testing.T) {
	want := seqAddress()

	tests := []struct {
		name string
		in   any
	}{
		{"address", want},
		{"array", [AddressLen]byte(want)},
		{"slice", want.Bytes()},
		{"hex", want.Hex()},
		{"base64", want.Base64()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddressFrom(tt.in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := AddressFrom(42)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = AddressFrom("not an address")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

// TestAddress_ShortString 测试日志短标识
func TestAddress_ShortString(t *testing.T) {
	assert.Equal(t, "00010203", seqAddress().ShortString())
}

// ============================================================================
// 位操作测试
// ============================================================================

// TestAddress_Bit 测试按位读取，位 0 为第 0 字节最高位
func TestAddress_Bit(t *testing.T) {
	var a Address
	a[0] = 0x80
	a[31] = 0x01

	assert.Equal(t, uint8(1), a.Bit(0))
	assert.Equal(t, uint8(0), a.Bit(1))
	assert.Equal(t, uint8(1), a.Bit(255))
	assert.Panics(t, func() { a.Bit(256) })
}

// TestAddress_CommonPrefixLen 测试首个差异位
func TestAddress_CommonPrefixLen(t *testing.T) {
	var zero Address

	assert.Equal(t, AddressBits, zero.CommonPrefixLen(zero))

	b := zero
	b[0] = 0x80
	assert.Equal(t, 0, zero.CommonPrefixLen(b))

	c := zero
	c[2] = 0x20
	assert.Equal(t, 18, zero.CommonPrefixLen(c))
}

// TestAddress_WithFlippedBit_Prefix 测试翻转位置及前缀保持
func TestAddress_WithFlippedBit_Prefix(t *testing.T) {
	var zero, ones [AddressLen]byte
	for i := range ones {
		ones[i] = 0xFF
	}

	tests := []struct {
		pos    int
		prefix string
	}{
		{3, "1"},
		{7, "01"},
		{15, "0001"},
	}
	for _, tt := range tests {
		for _, fill := range [][AddressLen]byte{zero, ones} {
			got, err := EmptyAddress.WithFlippedBit(tt.pos, fill)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, got.Hex()[:len(tt.prefix)], "pos %d", tt.pos)
			assert.Equal(t, tt.pos, EmptyAddress.CommonPrefixLen(got))
		}
	}

	got, err := EmptyAddress.WithFlippedBit(3, zero)
	require.NoError(t, err)
	assert.Equal(t, "10"+zeroHex(62), got.Hex())

	got, err = EmptyAddress.WithFlippedBit(3, ones)
	require.NoError(t, err)
	assert.Equal(t, byte(0x1F), got[0])
	assert.Equal(t, byte(0xFF), got[31])
}

// TestAddress_WithFlippedBit_LastBit 测试最后一位只翻转自身
func TestAddress_WithFlippedBit_LastBit(t *testing.T) {
	a := seqAddress()
	var ones [AddressLen]byte
	for i := range ones {
		ones[i] = 0xFF
	}

	got, err := a.WithFlippedBit(255, ones)
	require.NoError(t, err)

	want := a
	want[31] ^= 1
	assert.Equal(t, want, got)
}

// TestAddress_WithFlippedBit_Random 测试随机地址上翻转后 DistBit 等于翻转位置
func TestAddress_WithFlippedBit_Random(t *testing.T) {
	a := randomAddress(t)
	for pos := 0; pos < AddressBits; pos++ {
		fill := randomAddress(t)
		got, err := a.WithFlippedBit(pos, fill)
		require.NoError(t, err)

		assert.Equal(t, pos, a.CommonPrefixLen(got))
		assert.Equal(t, pos, a.DistBit(got))
		assert.NotEqual(t, a.Bit(pos), got.Bit(pos))
	}
}

// TestAddress_WithFlippedBit_OutOfRange 测试位索引越界
func TestAddress_WithFlippedBit_OutOfRange(t *testing.T) {
	for _, pos := range []int{-1, AddressBits, 1000} {
		_, err := EmptyAddress.WithFlippedBit(pos, [AddressLen]byte{})
		assert.ErrorIs(t, err, ErrBitOutOfRange)
	}
}

func zeroHex(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
