// Package model 定义 howmany 的核心数据模型。
// 这些结构会被采集器、报告层和命令层共同使用。
package model

import "encoding/json"

// FileMetrics 表示单个文件的行级统计值。
//
// 注意：
// - TotalLines 为按换行符切分后的段数（内容以换行结尾时包含最后的空段）
// - Blank/Comment/Code 三类互斥，三者之和恒等于 TotalLines
// - 零值表示“空统计”，即读取或解码失败时的降级结果
type FileMetrics struct {
	TotalLines   int64 `json:"total_lines" yaml:"total_lines"`
	CodeLines    int64 `json:"code_lines" yaml:"code_lines"`
	CommentLines int64 `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int64 `json:"blank_lines" yaml:"blank_lines"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *FileMetrics) Add(other FileMetrics) {
	m.TotalLines += other.TotalLines
	m.CodeLines += other.CodeLines
	m.CommentLines += other.CommentLines
	m.BlankLines += other.BlankLines
}

// FileResult 是 AnalysisResult 中的一条记录。
type FileResult struct {
	Path    string      `json:"path" yaml:"path"`
	Metrics FileMetrics `json:"metrics" yaml:"metrics"`
}

// AnalysisResult 是一次目录分析的结果：相对路径到 FileMetrics 的有序映射。
// 遍历顺序即插入顺序（目录遍历顺序），路径唯一。
type AnalysisResult struct {
	files []FileResult
	index map[string]int
}

// NewAnalysisResult 创建空结果。
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{index: make(map[string]int)}
}

// Add 写入一条记录。路径已存在时覆盖其统计值并保留原位置。
func (r *AnalysisResult) Add(path string, metrics FileMetrics) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if position, ok := r.index[path]; ok {
		r.files[position].Metrics = metrics
		return
	}
	r.index[path] = len(r.files)
	r.files = append(r.files, FileResult{Path: path, Metrics: metrics})
}

// Get 按相对路径查询统计值。
func (r *AnalysisResult) Get(path string) (FileMetrics, bool) {
	if r == nil {
		return FileMetrics{}, false
	}
	position, ok := r.index[path]
	if !ok {
		return FileMetrics{}, false
	}
	return r.files[position].Metrics, true
}

// Len 返回文件数量。
func (r *AnalysisResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.files)
}

// Files 按插入顺序返回全部记录的副本。
func (r *AnalysisResult) Files() []FileResult {
	if r == nil {
		return nil
	}
	return append([]FileResult(nil), r.files...)
}

// MarshalJSON 以有序数组形式输出，保证导出顺序与遍历顺序一致。
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	files := r.Files()
	if files == nil {
		files = make([]FileResult, 0)
	}
	return json.Marshal(files)
}

// MarshalYAML 与 MarshalJSON 保持一致，输出有序列表。
func (r *AnalysisResult) MarshalYAML() (interface{}, error) {
	files := r.Files()
	if files == nil {
		files = make([]FileResult, 0)
	}
	return files, nil
}
