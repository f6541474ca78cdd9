// Package collector 负责单文件行统计与目录级聚合。
// 目录遍历交给 scanner，报告渲染交给 report。
package collector

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"howmany/internal/model"
	"howmany/internal/scanner"
)

// Collector 是行统计服务对象。
type Collector struct {
	logger *log.Logger
	read   func(path string) ([]byte, error)
}

// New 创建采集器。logger 为 nil 时诊断信息直接丢弃。
func New(logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Collector{logger: logger, read: readFile}
}

// AnalyzeFile 读取单个文件并返回行统计。
//
// 错误策略：
// - 路径不存在：返回 KindNotFound，不记录日志
// - 无读取权限：记录日志后返回 KindPermissionDenied
// - 其他读取或 UTF-8 解码失败：记录日志，返回空统计且 error 为 nil
func (c *Collector) AnalyzeFile(path string) (model.FileMetrics, error) {
	if _, err := os.Stat(path); err != nil {
		return model.FileMetrics{}, &FileError{Path: path, Kind: KindNotFound, Err: err}
	}

	content, err := c.read(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			c.logger.Printf("Permission denied: %v", err)
			return model.FileMetrics{}, &FileError{Path: path, Kind: KindPermissionDenied, Err: err}
		}
		c.logger.Printf("Unexpected error: %v", err)
		return model.FileMetrics{}, nil
	}

	if !utf8.Valid(content) {
		c.logger.Printf("Unexpected error: %v", &FileError{
			Path: path,
			Kind: KindUnclassified,
			Err:  errors.New("content is not valid utf-8"),
		})
		return model.FileMetrics{}, nil
	}

	return CountLines(string(content)), nil
}

// readFile 打开、完整读取并关闭文件，所有退出路径都会释放句柄。
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// AnalyzeDirectory 统计 root 下所有匹配后缀的文件。root 不是目录时结果为空。
// 不存在或无权限的文件被静默跳过；其余失败以空统计保留在结果中。
// 结果键为相对 root 的路径（统一使用 / 分隔）。
func (c *Collector) AnalyzeDirectory(root string, extensions ...string) *model.AnalysisResult {
	result := model.NewAnalysisResult()

	for path := range scanner.New(extensions...).Walk(root) {
		metrics, err := c.AnalyzeFile(path)
		if err != nil {
			switch KindOf(err) {
			case KindNotFound, KindPermissionDenied:
				continue
			}
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		result.Add(filepath.ToSlash(relativePath), metrics)
	}

	return result
}
