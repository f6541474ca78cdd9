package collector

import (
	"strings"

	"howmany/internal/model"
)

// CommentMarker 是注释行的前缀。
const CommentMarker = "#"

// CountLines 对整段文本做行级分类。
//
// 约束说明：
// - 仅以 \n 切分，\r 作为空白字符在去除首尾空白时被忽略
// - 内容以 \n 结尾时最后一个空段也计入 TotalLines
// - 空文本切分后仍有一个空段，因此计为 1 行空白
func CountLines(content string) model.FileMetrics {
	var metrics model.FileMetrics
	for _, line := range strings.Split(content, "\n") {
		classifyLine(&metrics, line)
	}
	return metrics
}

// classifyLine 根据去除首尾空白后的内容更新统计值，每次调用 TotalLines 固定 +1。
func classifyLine(metrics *model.FileMetrics, line string) {
	metrics.TotalLines++

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		metrics.BlankLines++
	case strings.HasPrefix(trimmed, CommentMarker):
		metrics.CommentLines++
	default:
		metrics.CodeLines++
	}
}
