package types

import "math"

// ============================================================================
//                              紧凑地址距离
// ============================================================================

// compactHalf 每半段的字符数；前后各 8 个字符（48 位）分别累加
const compactHalf = CompactLen / 2

// CompactDistance 直接在字符上计算两个紧凑地址的距离
//
// 对位置 i = 0..15 比较两个字符的字母表下标，距离为 (vA ^ vB) * 2^(-5-6i) 之和。
// 任一字符串在位置 i 没有字符或字符不在字母表中时视为结束。
// 参数接受任意字符串，因此 CompactDistance("A", "B") == 2^-5。
//
// 前 8 个字符不同时结果截断到 53 位有效位（不舍入），
// 因此 CompactDistBit 总能还原首个差异位。
// 该距离不能与 XORDistance 的结果比较。
func CompactDistance(a, b string) Distance {
	var hi, lo uint64
	for i := 0; i < CompactLen && i < len(a) && i < len(b); i++ {
		va := symbolValue(a[i])
		vb := symbolValue(b[i])
		if va < 0 || vb < 0 {
			break
		}
		x := uint64(va ^ vb)
		if i < compactHalf {
			hi |= x << (CompactBitsPerChar * (compactHalf - 1 - i))
		} else {
			lo |= x << (CompactBitsPerChar * (CompactLen - 1 - i))
		}
	}

	if hi != 0 {
		// hi 最多 48 位，拼上 lo 的高 5 位正好 53 位
		return Distance(math.Ldexp(float64(hi<<5|lo>>43), -52))
	}
	return Distance(math.Ldexp(float64(lo), -95))
}

// CompactDistBit 从紧凑距离还原首个差异位：ceil(log2(1/d))
//
// d 为 0 时返回 DistBitInfinite。
func CompactDistBit(d Distance) int {
	if !(d > 0) {
		return DistBitInfinite
	}
	// ceil(log2(1/d)) = -floor(log2(d))，而 floor(log2(d)) = exp - 1
	_, exp := math.Frexp(float64(d))
	return 1 - exp
}

// Distance 计算与另一紧凑地址的距离
func (c CompactAddress) Distance(other CompactAddress) Distance {
	return CompactDistance(string(c), string(other))
}

// DistBit 返回与另一紧凑地址首个差异位的索引，相等时返回 DistBitInfinite
func (c CompactAddress) DistBit(other CompactAddress) int {
	return CompactDistBit(CompactDistance(string(c), string(other)))
}
