package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"howmany/internal/config"
	"howmany/internal/model"
	"howmany/internal/report"
	"howmany/internal/ui"
)

// exportResult 在配置了 --output 时把结果额外导出到文件。
// 标准输出为结构化格式时提示信息写入 stderr，避免污染管道数据。
func exportResult(cmd *cobra.Command, cfg *config.Config, result *model.AnalysisResult) error {
	if cfg.Output == "" {
		return nil
	}

	if err := report.WriteFile(cfg.Output, result, cfg.Name, cfg.ReportVersion); err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	if cfg.Format != report.FormatText {
		writer = cmd.ErrOrStderr()
	}
	_, _ = fmt.Fprintln(writer, ui.NewStyles(writer).Muted.Render("Report exported to "+cfg.Output))
	return nil
}
