// Package digest 提供地址生成所用的 256 位摘要能力
//
// # 算法
//
//   - sha256:      SHA-256，基于 minio/sha256-simd（默认）
//   - blake3:      BLAKE3，256 位输出，基于 lukechampine.com/blake3
//   - blake2b-256: BLAKE2b-256，基于 golang.org/x/crypto/blake2b
//
// 所有实现都是确定的、无状态的，可并发调用。算法一旦选定，
// 同一网络内所有节点必须一致，否则相同内容会得到不同地址。
//
// # 缓存
//
// CachingDigester 用 LRU 记住最近的摘要结果，适用于反复对相同小输入
// （如节点公钥、固定键名）生成地址的场景。
//
// # 失败语义
//
// 上下文已取消时 Digest 返回包装了 types.ErrDigestUnavailable 的错误。
// 本包不做重试。
//
// # Fx 模块
//
//	app := fx.New(
//	    digest.Module(),
//	    fx.Invoke(func(d pkgif.Digester) { ... }),
//	)
package digest
