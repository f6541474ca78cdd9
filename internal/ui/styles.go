// Package ui 封装控制台样式。
// 渲染器绑定到具体 writer：输出不是终端时样式自动退化为纯文本。
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles 是一组绑定到同一 writer 的样式。
type Styles struct {
	Banner  lipgloss.Style
	Usage   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles 为 writer 创建样式。
func NewStyles(writer io.Writer) Styles {
	renderer := lipgloss.NewRenderer(writer)

	return Styles{
		Banner: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Usage: renderer.NewStyle().
			Foreground(lipgloss.Color("11")),
		Warning: renderer.NewStyle().
			Foreground(lipgloss.Color("9")),
		Muted: renderer.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}
