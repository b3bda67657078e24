package hashaddr

import "github.com/dep2p/go-hashaddr/pkg/types"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Address 32 字节地址
type Address = types.Address

// CompactAddress 16 字符紧凑地址
type CompactAddress = types.CompactAddress

// Distance 地址距离
type Distance = types.Distance

// DistBitInfinite 两个地址相等时 DistBit 的返回值
const DistBitInfinite = types.DistBitInfinite

// ════════════════════════════════════════════════════════════════════════════
//                              纯函数
// ════════════════════════════════════════════════════════════════════════════

// AddressFrom 从 Address、[32]byte、[]byte 或文本（hex 优先，其次 base64）构造地址
func AddressFrom(v any) (Address, error) {
	return types.AddressFrom(v)
}

// XORDistance 计算两个地址的距离
func XORDistance(a, b Address) Distance {
	return types.XORDistance(a, b)
}

// DistBit 从距离还原首个差异位
func DistBit(d Distance) int {
	return types.DistBit(d)
}

// CompactDistance 计算两个紧凑地址字符串的距离
func CompactDistance(a, b string) Distance {
	return types.CompactDistance(a, b)
}

// CompactDistBit 从紧凑距离还原首个差异位
func CompactDistBit(d Distance) int {
	return types.CompactDistBit(d)
}

// SortByDistance 按到 target 的距离升序排序
func SortByDistance(target Address, addrs []Address) {
	types.SortByDistance(target, addrs)
}
