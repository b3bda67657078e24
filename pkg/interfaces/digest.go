// Package interfaces 定义 hashaddr 公共接口
//
// 本文件定义 Digester 接口，即地址生成所依赖的摘要能力。
package interfaces

import "context"

// DigestSize 摘要字节长度
const DigestSize = 32

// Digester 定义 256 位内容摘要能力
//
// 实现必须确定且具备抗碰撞/抗原像性。摘要不可用时返回错误，
// 由调用方把错误作为操作失败向上传播，不做内部重试。
type Digester interface {
	// Algorithm 返回算法名称（如 "sha256"）
	Algorithm() string

	// Digest 计算 data 的摘要
	Digest(ctx context.Context, data []byte) ([DigestSize]byte, error)
}
