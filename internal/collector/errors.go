package collector

import (
	"errors"
	"fmt"
)

// Kind 标识单文件分析失败的类别。
type Kind int

const (
	// KindUnclassified 表示除下面两类之外的读取或解码失败。
	KindUnclassified Kind = iota
	// KindNotFound 表示目标路径不存在。
	KindNotFound
	// KindPermissionDenied 表示文件存在但没有读取权限。
	KindPermissionDenied
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	default:
		return "unclassified"
	}
}

var (
	// ErrNotFound 可配合 errors.Is 判断路径不存在。
	ErrNotFound = errors.New("file not found")
	// ErrPermissionDenied 可配合 errors.Is 判断权限不足。
	ErrPermissionDenied = errors.New("permission denied")
)

// FileError 是 AnalyzeFile 返回的带类别错误。
type FileError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap 返回底层的操作系统错误。
func (e *FileError) Unwrap() error {
	return e.Err
}

// Is 让 errors.Is(err, ErrNotFound) 等按类别匹配。
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	}
	return false
}

// KindOf 提取错误类别；非 FileError 一律视为 KindUnclassified。
func KindOf(err error) Kind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind
	}
	return KindUnclassified
}
