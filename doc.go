// Package hashaddr 提供基于内容摘要的地址空间
//
// 地址是 32 字节的内容摘要，地址之间的 XOR 距离可以用来组织
// DHT 风格的覆盖网络。本包是各内部模块的统一入口。
//
// # 核心概念
//
//   - Address: 32 字节地址，支持 hex/base64/base58 文本形式
//   - CompactAddress: 16 个 base64 字符（96 位）的紧凑地址
//   - Distance: 两个地址之间的 XOR 距离，DistBit 还原首个差异位
//
// # 快速开始
//
//	svc, err := hashaddr.New(ctx,
//	    hashaddr.WithDigestAlgorithm(config.AlgorithmBLAKE3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	a, _ := svc.GenerateText(ctx, "hello world")
//	b, _ := svc.FlipBitRandomise(a, 10)
//	fmt.Println(a.DistBit(b)) // 10
//
// # 紧凑地址
//
//	c, _ := svc.GenerateCompactText(ctx, "hello world")
//	d, _ := svc.FlipBitAndRandom(c, 20)
//	fmt.Println(c.DistBit(d)) // 20
//
// FlipBitAndRandom 的随机填充来自非密码学随机源，不能用于需要不可预测性的场景。
//
// # 日志
//
// 日志使用 log/slog，通过环境变量控制：
//
//	HASHADDR_LOG_LEVEL=addrgen=debug,warn
//	HASHADDR_LOG_FORMAT=json
package hashaddr
