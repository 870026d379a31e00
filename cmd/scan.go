package cmd

import (
	"errors"
	"fmt"
	"strings"

	"locmeter/internal/config"
	"locmeter/internal/report"
	"locmeter/internal/scanner"

	"github.com/spf13/cobra"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format     string
	output     string
	configFile string
	workers    int
	docStrings bool
	exclude    []string
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	locmeter scan .
//	locmeter scan ./project --format json --output result.json
//	locmeter scan ./project --doc-strings --exclude 'vendor/*'
func newScanCmd() *cobra.Command {
	options := scanOptions{
		format: "table",
		output: "output.json",
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出代码行统计信息",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			cfg, err := resolveConfig(cmd, options)
			if err != nil {
				return err
			}

			service := scanner.NewService(cfg)
			result, err := service.ScanPath(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	scanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	scanCmd.Flags().StringVar(&options.configFile, "config", "", "YAML 配置文件路径")
	scanCmd.Flags().IntVar(&options.workers, "workers", 0, "并发 worker 数量，0 表示按 CPU 数量")
	scanCmd.Flags().BoolVar(&options.docStrings, "doc-strings", false, "把文档字符串按注释分类")
	scanCmd.Flags().StringSliceVar(&options.exclude, "exclude", nil, "排除的路径 glob，可重复指定")

	return scanCmd
}

// resolveConfig 合并配置文件与命令行标志。
// 显式给出的标志优先于配置文件内容。
func resolveConfig(cmd *cobra.Command, options scanOptions) (config.Config, error) {
	cfg := config.Default()

	if options.configFile != "" {
		loaded, err := config.Load(options.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("workers") {
		if options.workers <= 0 {
			return cfg, errors.New("workers must be greater than 0")
		}
		cfg.Workers = options.workers
	}

	if cmd.Flags().Changed("doc-strings") {
		docStrings := options.docStrings
		cfg.DocStringsAsComments = &docStrings
	}

	if len(options.exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, options.exclude...)
	}

	return cfg, nil
}
