// Package report 提供 howmany 的输出能力。
// 文本报告面向控制台，JSON/YAML/CSV 用于导出到文件或管道。
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"howmany/internal/model"
)

// NoFilesMessage 是结果为空时的固定输出。
const NoFilesMessage = "No files analyzed."

// TopN 是报告中“最大文件”列表的长度。
const TopN = 5

// Summary 是一组文件的聚合数值。
type Summary struct {
	Files        int     `json:"files" yaml:"files"`
	TotalLines   int64   `json:"total_lines" yaml:"total_lines"`
	CodeLines    int64   `json:"code_lines" yaml:"code_lines"`
	CommentLines int64   `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int64   `json:"blank_lines" yaml:"blank_lines"`
	DocRatio     float64 `json:"documentation_ratio" yaml:"documentation_ratio"`
}

// RankedFile 是“最大文件”列表中的一项，Rank 从 1 开始。
type RankedFile struct {
	Rank       int    `json:"rank" yaml:"rank"`
	Path       string `json:"path" yaml:"path"`
	TotalLines int64  `json:"total_lines" yaml:"total_lines"`
}

// Summarize 计算文件数、各类行数之和以及文档比例。
// 总行数为 0 时文档比例为 0。
func Summarize(result *model.AnalysisResult) Summary {
	var total model.FileMetrics
	files := result.Files()
	for _, item := range files {
		total.Add(item.Metrics)
	}

	summary := Summary{
		Files:        len(files),
		TotalLines:   total.TotalLines,
		CodeLines:    total.CodeLines,
		CommentLines: total.CommentLines,
		BlankLines:   total.BlankLines,
	}
	if total.TotalLines > 0 {
		summary.DocRatio = float64(total.CommentLines) / float64(total.TotalLines) * 100
	}
	return summary
}

// TopFiles 按 TotalLines 降序返回前 n 个文件；行数相同时保持插入顺序。
func TopFiles(result *model.AnalysisResult, n int) []RankedFile {
	files := result.Files()
	sort.SliceStable(files, func(i int, j int) bool {
		return files[i].Metrics.TotalLines > files[j].Metrics.TotalLines
	})
	if n < len(files) {
		files = files[:n]
	}

	ranked := make([]RankedFile, 0, len(files))
	for i, item := range files {
		ranked = append(ranked, RankedFile{
			Rank:       i + 1,
			Path:       item.Path,
			TotalLines: item.Metrics.TotalLines,
		})
	}
	return ranked
}

// Generate 渲染文本报告。name 与 version 出现在标题行。
func Generate(result *model.AnalysisResult, name string, version string) string {
	if result.Len() == 0 {
		return NoFilesMessage
	}

	summary := Summarize(result)

	var builder strings.Builder
	fmt.Fprintf(&builder, "\nAnalysis Report - %s v%s\n", name, version)
	builder.WriteString(strings.Repeat("=", 50))
	builder.WriteString("\n\n")
	fmt.Fprintf(&builder, "Files analyzed: %d\n", summary.Files)
	fmt.Fprintf(&builder, "Total lines: %s\n", humanize.Comma(summary.TotalLines))
	fmt.Fprintf(&builder, "Code lines: %s\n", humanize.Comma(summary.CodeLines))
	fmt.Fprintf(&builder, "Comment lines: %s\n", humanize.Comma(summary.CommentLines))
	fmt.Fprintf(&builder, "Blank lines: %s\n", humanize.Comma(summary.BlankLines))
	fmt.Fprintf(&builder, "Documentation ratio: %.1f%%\n", summary.DocRatio)
	fmt.Fprintf(&builder, "\nTop %d largest files:\n", TopN)

	for _, item := range TopFiles(result, TopN) {
		fmt.Fprintf(&builder, "  %d. %s: %d lines\n", item.Rank, item.Path, item.TotalLines)
	}

	return builder.String()
}
