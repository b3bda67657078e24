// Package types 定义 hashaddr 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，构造后不可变，"修改"操作总是返回新值。
//
// # 文件组织
//
//   - address.go          - Address（32 字节地址）及构造函数
//   - codec.go            - hex / base64 / base58 / 文本编解码
//   - compact.go          - CompactAddress（16 字符 base64 截断地址）
//   - distance.go         - 字节地址的 XOR 距离与 DistBit
//   - compact_distance.go - CompactAddress 的距离与 DistBit
//   - errors.go           - 公共错误定义
//
// # 两种地址表示
//
// Address 与 CompactAddress 是两个独立类型，各自实现距离度量，
// 二者之间不存在隐式转换。CompactAddress 只能在生成时从原始摘要派生：
//
//	digest := sha256.Sum256(data)
//	addr, _ := types.AddressFromBytes(digest[:])
//	short, _ := types.CompactFromDigest(digest[:])
//
// 两种距离不可直接比较。
//
// # 距离度量
//
// 字节地址的距离把首个差异字节起的 4 字节 XOR 窗口压缩为一个浮点数：
//
//	d := types.XORDistance(a, b)   // 0 表示相等
//	bit := types.DistBit(d)        // 首个差异位的索引（0 为最高位）
//
// 最高位不同时距离为 2^123，仅最后一位不同时距离为 2^-132。
package types
