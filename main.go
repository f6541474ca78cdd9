// howmany 统计目录下源码文件的总行、代码行、注释行与空白行，并输出汇总报告。
//
//	howmany ./project
//	howmany file ./project/main.py
package main

import (
	"os"

	"howmany/cmd"
)

// version 通过 -ldflags "-X main.version=vX.Y.Z" 在发布时注入。
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
