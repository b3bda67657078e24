// Package interfaces 定义 hashaddr 公共接口
//
// 本文件定义地址生成接口。
package interfaces

import (
	"context"

	"github.com/dep2p/go-hashaddr/pkg/types"
)

// Generator 定义 32 字节地址生成服务
type Generator interface {
	// Generate 计算 input 的摘要并包装为 Address
	Generate(ctx context.Context, input []byte) (types.Address, error)

	// GenerateText 先经 types.TextToBytes 转换文本再生成地址
	GenerateText(ctx context.Context, s string) (types.Address, error)

	// GenerateAll 并发生成一批地址，结果顺序与输入一致
	GenerateAll(ctx context.Context, inputs [][]byte) ([]types.Address, error)

	// FlipBitRandomise 返回前 pos 位与 addr 相同、第 pos 位相反、其余位安全随机的新地址
	FlipBitRandomise(addr types.Address, pos int) (types.Address, error)
}

// CompactGenerator 定义 CompactAddress 生成服务
type CompactGenerator interface {
	// GenerateCompact 计算 input 的摘要并截断为 CompactAddress
	GenerateCompact(ctx context.Context, input []byte) (types.CompactAddress, error)

	// GenerateCompactText 先经 types.TextToBytes 转换文本再生成
	GenerateCompactText(ctx context.Context, s string) (types.CompactAddress, error)

	// FlipBitAndRandom 保留前 bitpos 位、翻转第 bitpos 位，其余位用非安全随机符号填充
	FlipBitAndRandom(addr types.CompactAddress, bitpos int) (types.CompactAddress, error)
}
