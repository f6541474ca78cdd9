// Package cmd 提供 howmany 的命令行入口与子命令编排。
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"howmany/internal/config"
	"howmany/internal/ui"
)

// usageLine 是缺少目录参数时打印的用法提示。
const usageLine = "Usage: howmany <directory>"

var errMissingDirectory = errors.New("missing directory argument")

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "howmany <directory>",
		Short: "统计目录下源码文件的代码行、注释行与空白行",
		Long: "howmany 递归扫描目录（跳过以 . 开头的隐藏目录），\n" +
			"按后缀筛选文件并统计 total/code/comment/blank 行数，输出汇总报告。",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	config.InitFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newFileCmd())

	return rootCmd
}

// PrintError 以警告样式输出命令失败信息，供 main 在退出前调用。
func PrintError(writer io.Writer, err error) {
	_, _ = fmt.Fprintln(writer, ui.NewStyles(writer).Warning.Render("howmany error: "+err.Error()))
}
