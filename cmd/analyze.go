package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"howmany/internal/collector"
	"howmany/internal/config"
	"howmany/internal/report"
	"howmany/internal/ui"
)

// runAnalyze 是根命令的执行逻辑。
// 示例：
//
//	howmany ./project
//	howmany ./project --ext .py,.sh --output out/report.json
func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := ui.NewStyles(out)

	if len(args) == 0 {
		_, _ = fmt.Fprintln(out, styles.Usage.Render(usageLine))
		return errMissingDirectory
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	directory := args[0]
	if cfg.Format == report.FormatText {
		if _, err := fmt.Fprintln(out, styles.Banner.Render("Analyzing directory: "+directory)); err != nil {
			return err
		}
	}

	logger := log.New(cmd.ErrOrStderr(), "", 0)
	result := collector.New(logger).AnalyzeDirectory(directory, cfg.Extensions...)

	if err := report.Write(out, cfg.Format, result, cfg.Name, cfg.ReportVersion); err != nil {
		return err
	}

	return exportResult(cmd, cfg, result)
}
