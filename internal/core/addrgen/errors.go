package addrgen

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDigester 未提供摘要实现
	ErrNilDigester = errors.New("nil digester")

	// ErrNilRandomSource 未提供安全随机源
	ErrNilRandomSource = errors.New("nil random source")
)

// GenerateError 地址生成错误
type GenerateError struct {
	Op      string // 操作名称
	Err     error  // 底层错误
	Message string // 错误消息
}

// Error 实现 error 接口
func (e *GenerateError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("addrgen %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("addrgen %s: %v", e.Op, e.Err)
}

// Unwrap 实现错误解包
func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError 创建生成错误
func NewGenerateError(op string, err error, message string) *GenerateError {
	return &GenerateError{
		Op:      op,
		Err:     err,
		Message: message,
	}
}
