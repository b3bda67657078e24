// Package randsource 提供地址随机化所用的随机源
//
// 两种随机源有意区分：
//
//   - Secure: 密码学安全字节源（默认 crypto/rand），用于 FlipBitRandomise。
//     读取失败以 types.ErrRandomSourceUnavailable 向上传播，不重试。
//   - Symbols: 非密码学的均匀整数源（math/rand/v2），用于 CompactAddress 的
//     FlipBitAndRandom。紧凑地址路径以简单和性能为先，不应被替换为安全随机源。
package randsource
