// Package cmd 提供 locmeter 的命令行入口与子命令编排。
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "locmeter",
		Short: "基于通用词法状态机的代码行统计工具",
		Long: "locmeter 是一个表驱动的代码行统计工具：\n" +
			"同一个前向扫描状态机消费各语言的语法规则表，\n" +
			"统计 lines/code/comments/blanks，支持并发扫描与 JSON 导出。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd())
	rootCmd.AddCommand(newScanCmd())

	return rootCmd
}
