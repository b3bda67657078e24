package types

import (
	"math"
	"sort"
)

// ============================================================================
//                              XOR 距离
// ============================================================================

// Distance XOR 距离的浮点量值
//
// 总是非负，只由 XORDistance / CompactDistance 产生，不单独存储。
// 字节地址距离最多 31 个有效位，指数范围 [-132, 123]，在 float64 中精确表示。
// 不能转换为 float32：31 位有效位超出单精度 24 位尾数，
// 相邻距离会被舍入为相等，排序结果随之错误。
type Distance float64

// DistBitInfinite 距离为 0（地址相等）时 DistBit 返回的哨兵值
const DistBitInfinite = math.MaxInt

const (
	// distTopExp 最高位不同时的距离指数，DistBit 以它为基准
	distTopExp = 123

	// distScaleBase 窗口整数的缩放指数基数：n * 2^(distScaleBase - 8*i)
	distScaleBase = 93

	// distWindow 比较窗口字节数
	distWindow = 4
)

// XORDistance 计算两个地址的 XOR 距离
//
// 从首个差异字节 i 开始取 4 字节 XOR 窗口（超过第 32 字节补零），
// 窗口最后一个字节右移 1 位丢弃最低位，按大端拼成整数后乘以 2^(93-8i)。
// 被丢弃的最低位是有意的精度截断，不影响首个差异位的定位。
//
// 地址相等时返回 0。
func XORDistance(a, b Address) Distance {
	i := 0
	for i < AddressLen && a[i] == b[i] {
		i++
	}
	if i == AddressLen {
		return 0
	}

	var w [distWindow]byte
	for k := 0; k < distWindow && i+k < AddressLen; k++ {
		w[k] = a[i+k] ^ b[i+k]
	}
	n := uint32(w[0])<<23 | uint32(w[1])<<15 | uint32(w[2])<<7 | uint32(w[3]>>1)

	return Distance(math.Ldexp(float64(n), distScaleBase-8*i))
}

// DistBit 从距离还原首个差异位的索引：123 - floor(log2(d))
//
// d 为 0（或非法的负数/NaN）时返回 DistBitInfinite。
func DistBit(d Distance) int {
	if !(d > 0) {
		return DistBitInfinite
	}
	// d = frac * 2^exp，frac ∈ [0.5, 1)，故 floor(log2(d)) = exp - 1
	_, exp := math.Frexp(float64(d))
	return distTopExp - (exp - 1)
}

// Distance 计算与另一地址的 XOR 距离
func (a Address) Distance(other Address) Distance {
	return XORDistance(a, other)
}

// DistBit 返回与另一地址首个差异位的索引，相等时返回 DistBitInfinite
func (a Address) DistBit(other Address) int {
	return DistBit(XORDistance(a, other))
}

// ============================================================================
//                              距离比较
// ============================================================================

// CompareDistance 比较 a 和 b 到 target 的距离
//
// 返回：
//
//	-1 如果 dist(a, target) < dist(b, target)
//	 0 如果 dist(a, target) == dist(b, target)
//	 1 如果 dist(a, target) > dist(b, target)
//
// 比较的是完整 256 位 XOR 值，不受浮点窗口截断影响。
func CompareDistance(a, b, target Address) int {
	for i := 0; i < AddressLen; i++ {
		da := a[i] ^ target[i]
		db := b[i] ^ target[i]
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
	}
	return 0
}

// SortByDistance 按到 target 的距离从近到远排序（原地，稳定）
func SortByDistance(target Address, addrs []Address) {
	sort.SliceStable(addrs, func(i, j int) bool {
		return CompareDistance(addrs[i], addrs[j], target) < 0
	})
}
