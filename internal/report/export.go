package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"howmany/internal/model"
)

// Format 是报告输出格式。
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat 解析用户传入的格式名（忽略大小写与首尾空白）。
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatText, FormatJSON, FormatYAML, FormatCSV:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, allowed values: text, json, yaml, csv", value)
	}
}

// FormatFromPath 根据导出文件后缀推断格式。
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", ext)
	}
}

// Document 是结构化导出的完整模型。
type Document struct {
	Name     string                `json:"name" yaml:"name"`
	Version  string                `json:"version" yaml:"version"`
	Summary  Summary               `json:"summary" yaml:"summary"`
	TopFiles []RankedFile          `json:"top_files" yaml:"top_files"`
	Files    *model.AnalysisResult `json:"files" yaml:"files"`
}

// NewDocument 由分析结果构建导出模型。
func NewDocument(result *model.AnalysisResult, name string, version string) Document {
	if result == nil {
		result = model.NewAnalysisResult()
	}
	return Document{
		Name:     name,
		Version:  version,
		Summary:  Summarize(result),
		TopFiles: TopFiles(result, TopN),
		Files:    result,
	}
}

// Write 按指定格式把结果写入任意 writer。
func Write(writer io.Writer, format Format, result *model.AnalysisResult, name string, version string) error {
	switch format {
	case FormatText:
		if _, err := io.WriteString(writer, Generate(result, name, version)+"\n"); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
		return nil
	case FormatJSON:
		return writeJSON(writer, NewDocument(result, name, version))
	case FormatYAML:
		return writeYAML(writer, NewDocument(result, name, version))
	case FormatCSV:
		return writeCSV(writer, result)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteFile 将结果导出到指定路径，格式由后缀决定。
// 如果目录不存在会自动创建。
func WriteFile(path string, result *model.AnalysisResult, name string, version string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	if err := Write(&buffer, format, result, name, version); err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, buffer.Bytes(), 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

func writeJSON(writer io.Writer, document Document) error {
	content, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeYAML(writer io.Writer, document Document) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}

// writeCSV 每个文件一行，列顺序与 FileMetrics 字段一致。
func writeCSV(writer io.Writer, result *model.AnalysisResult) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write([]string{"path", "total_lines", "code_lines", "comment_lines", "blank_lines"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range result.Files() {
		record := []string{
			item.Path,
			strconv.FormatInt(item.Metrics.TotalLines, 10),
			strconv.FormatInt(item.Metrics.CodeLines, 10),
			strconv.FormatInt(item.Metrics.CommentLines, 10),
			strconv.FormatInt(item.Metrics.BlankLines, 10),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
