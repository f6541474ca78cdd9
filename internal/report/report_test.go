package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"howmany/internal/model"
)

// buildResult 按给定顺序构造分析结果，文件名为 f0.py、f1.py ...
func buildResult(totals ...int64) *model.AnalysisResult {
	result := model.NewAnalysisResult()
	for i, total := range totals {
		result.Add("f"+string(rune('0'+i))+".py", model.FileMetrics{
			TotalLines:   total,
			CodeLines:    total / 2,
			CommentLines: total / 4,
			BlankLines:   total - total/2 - total/4,
		})
	}
	return result
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, NoFilesMessage, Generate(model.NewAnalysisResult(), "Sample Analyzer", "1.0.0"))
	assert.Equal(t, NoFilesMessage, Generate(nil, "Sample Analyzer", "1.0.0"))
}

// TestGenerateAllZeroTotals 验证总行数为 0 时不会出现除零。
func TestGenerateAllZeroTotals(t *testing.T) {
	result := model.NewAnalysisResult()
	result.Add("a.py", model.FileMetrics{})
	result.Add("b.py", model.FileMetrics{})

	summary := Summarize(result)
	assert.Equal(t, 2, summary.Files)
	assert.Zero(t, summary.DocRatio)

	text := Generate(result, "Sample Analyzer", "1.0.0")
	assert.Contains(t, text, "Documentation ratio: 0.0%")
	assert.NotContains(t, text, "NaN")
}

func TestGenerateLayout(t *testing.T) {
	result := model.NewAnalysisResult()
	result.Add("main.py", model.FileMetrics{TotalLines: 4, CodeLines: 2, CommentLines: 1, BlankLines: 1})
	result.Add("pkg/util.py", model.FileMetrics{TotalLines: 1234, CodeLines: 1000, CommentLines: 200, BlankLines: 34})

	expected := "\nAnalysis Report - Sample Analyzer v1.0.0\n" +
		strings.Repeat("=", 50) + "\n\n" +
		"Files analyzed: 2\n" +
		"Total lines: 1,238\n" +
		"Code lines: 1,002\n" +
		"Comment lines: 201\n" +
		"Blank lines: 35\n" +
		"Documentation ratio: 16.2%\n" +
		"\nTop 5 largest files:\n" +
		"  1. pkg/util.py: 1234 lines\n" +
		"  2. main.py: 4 lines\n"

	assert.Equal(t, expected, Generate(result, "Sample Analyzer", "1.0.0"))
}

// TestTopFilesOfSix 验证六个文件时只列出最大的五个，排名 1-5 且降序。
func TestTopFilesOfSix(t *testing.T) {
	result := buildResult(7, 10, 5, 9, 6, 8)

	top := TopFiles(result, TopN)

	require.Len(t, top, 5)
	var totals []int64
	for i, item := range top {
		assert.Equal(t, i+1, item.Rank)
		totals = append(totals, item.TotalLines)
	}
	assert.Equal(t, []int64{10, 9, 8, 7, 6}, totals)

	text := Generate(result, "n", "v")
	assert.Contains(t, text, "  1. f1.py: 10 lines\n")
	assert.Contains(t, text, "  5. f4.py: 6 lines\n")
	assert.NotContains(t, text, "f2.py")
}

// TestTopFilesTiesKeepInsertionOrder 验证行数相同的文件保持插入顺序。
func TestTopFilesTiesKeepInsertionOrder(t *testing.T) {
	result := buildResult(3, 5, 3, 5)

	top := TopFiles(result, 10)

	require.Len(t, top, 4)
	assert.Equal(t, []string{"f1.py", "f3.py", "f0.py", "f2.py"}, []string{top[0].Path, top[1].Path, top[2].Path, top[3].Path})
	assert.Empty(t, TopFiles(model.NewAnalysisResult(), TopN))
}

func TestSummarize(t *testing.T) {
	result := model.NewAnalysisResult()
	result.Add("a.py", model.FileMetrics{TotalLines: 4, CodeLines: 2, CommentLines: 1, BlankLines: 1})
	result.Add("b.py", model.FileMetrics{TotalLines: 6, CodeLines: 3, CommentLines: 2, BlankLines: 1})

	assert.Equal(t, Summary{
		Files:        2,
		TotalLines:   10,
		CodeLines:    5,
		CommentLines: 3,
		BlankLines:   2,
		DocRatio:     30,
	}, Summarize(result))
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"text":   FormatText,
		" JSON ": FormatJSON,
		"yml":    FormatYAML,
		"yaml":   FormatYAML,
		"csv":    FormatCSV,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("html")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"out/report.json": FormatJSON,
		"report.YAML":     FormatYAML,
		"report.yml":      FormatYAML,
		"report.csv":      FormatCSV,
		"report.txt":      FormatText,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("report.html")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestWriteJSON(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Write(&buffer, FormatJSON, buildResult(8, 4), "Sample Analyzer", "1.0.0"))

	var document struct {
		Name     string       `json:"name"`
		Version  string       `json:"version"`
		Summary  Summary      `json:"summary"`
		TopFiles []RankedFile `json:"top_files"`
		Files    []model.FileResult
	}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &document))

	assert.Equal(t, "Sample Analyzer", document.Name)
	assert.Equal(t, int64(12), document.Summary.TotalLines)
	require.Len(t, document.Files, 2)
	assert.Equal(t, "f0.py", document.Files[0].Path)
	assert.Equal(t, "f0.py", document.TopFiles[0].Path)
}

func TestWriteYAML(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Write(&buffer, FormatYAML, buildResult(8), "Sample Analyzer", "1.0.0"))

	var document map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &document))

	assert.Equal(t, "Sample Analyzer", document["name"])
	files, ok := document["files"].([]interface{})
	require.True(t, ok)
	require.Len(t, files, 1)
	assert.Equal(t, "f0.py", files[0].(map[string]interface{})["path"])
}

func TestWriteCSV(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Write(&buffer, FormatCSV, buildResult(8, 4), "n", "v"))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"path", "total_lines", "code_lines", "comment_lines", "blank_lines"},
		{"f0.py", "8", "4", "2", "2"},
		{"f1.py", "4", "2", "1", "1"},
	}, records)
}

func TestWriteText(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Write(&buffer, FormatText, model.NewAnalysisResult(), "n", "v"))
	assert.Equal(t, NoFilesMessage+"\n", buffer.String())

	assert.Error(t, Write(&buffer, Format("xml"), model.NewAnalysisResult(), "n", "v"))
}

// TestWriteFileCreatesDirectory 验证导出时自动创建父目录。
func TestWriteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.csv")

	require.NoError(t, WriteFile(path, buildResult(2), "n", "v"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "path,total_lines"))
}

func TestWriteFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	err := WriteFile(path, buildResult(2), "n", "v")

	assert.ErrorContains(t, err, "unsupported export format")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
