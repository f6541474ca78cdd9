package cmd

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"howmany/internal/collector"
	"howmany/internal/config"
	"howmany/internal/model"
	"howmany/internal/report"
)

// newFileCmd 创建 file 子命令，直接统计单个文件。
// 与目录模式不同，文件不存在或无权限时错误会向上返回并以非 0 状态退出。
// 示例：
//
//	howmany file ./main.py
//	howmany file ./main.py --format json
func newFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "统计单个文件的行数",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "", 0)
			metrics, err := collector.New(logger).AnalyzeFile(args[0])
			if err != nil {
				return fmt.Errorf("analyze file: %w", err)
			}

			result := model.NewAnalysisResult()
			result.Add(filepath.ToSlash(args[0]), metrics)

			if cfg.Format == report.FormatText {
				if err := printFileTable(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if err := report.Write(cmd.OutOrStdout(), cfg.Format, result, cfg.Name, cfg.ReportVersion); err != nil {
				return err
			}

			return exportResult(cmd, cfg, result)
		},
	}
}

// printFileTable 使用表格展示单文件统计结果。
func printFileTable(writer io.Writer, result *model.AnalysisResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "FILE\tTOTAL\tCODE\tCOMMENT\tBLANK"); err != nil {
		return err
	}
	for _, item := range result.Files() {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\n",
			item.Path,
			item.Metrics.TotalLines,
			item.Metrics.CodeLines,
			item.Metrics.CommentLines,
			item.Metrics.BlankLines,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}
