// Package scanner 提供目录遍历能力。
// 该层只负责“找出哪些文件需要统计”，不读取文件内容。
package scanner

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension 是未指定后缀时使用的源码后缀。
const DefaultExtension = ".py"

// Scanner 按后缀过滤并排除隐藏目录。
type Scanner struct {
	extensions []string
}

// New 创建扫描器。未传入后缀时使用 DefaultExtension。
func New(extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Scanner{extensions: append([]string(nil), extensions...)}
}

// Match 判断文件名是否以任一后缀结尾（区分大小写）。
func (s *Scanner) Match(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Walk 惰性遍历 root 下的候选文件，返回的路径以 root 为前缀。
//
// 规则：
// - root 不是目录（或不存在）时返回空序列
// - root 本身是指向目录的符号链接时会跟随；root 以下的符号链接不跟随
// - 名称以 . 开头的目录（根目录本身除外）连同其子树全部跳过
// - 无法列出的目录静默跳过，错误不会向外传播
// - 指向目录的符号链接不会作为文件产出
// - 调用方提前退出 range 时遍历立即停止
func (s *Scanner) Walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkRoot, ok := resolveRoot(root)
		if !ok {
			return
		}

		_ = filepath.WalkDir(walkRoot, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}

			if entry.IsDir() {
				if path != walkRoot && IsHidden(entry.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.Match(entry.Name()) {
				return nil
			}

			if entry.Type()&fs.ModeSymlink != 0 {
				info, err := os.Stat(path)
				if err == nil && info.IsDir() {
					return nil
				}
			}

			if walkRoot != root {
				relative, err := filepath.Rel(walkRoot, path)
				if err != nil {
					return nil
				}
				path = filepath.Join(root, relative)
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// resolveRoot 返回实际遍历的目录。root 为符号链接时解析到目标目录。
func resolveRoot(root string) (string, bool) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", false
	}

	linkInfo, err := os.Lstat(root)
	if err != nil || linkInfo.Mode()&fs.ModeSymlink == 0 {
		return root, true
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// IsHidden 判断目录名是否属于隐藏目录。
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
