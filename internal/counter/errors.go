package counter

import "fmt"

// SourceError 表示文件字节源无法打开或读完。
// 错误里保留路径标识，调用方报告失败文件时不丢失上下文。
type SourceError struct {
	Path string
	Err  error
}

// Error 实现 error 接口。
func (e *SourceError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

// Unwrap 暴露底层 I/O 错误，支持 errors.Is/As 判定。
func (e *SourceError) Unwrap() error {
	return e.Err
}
