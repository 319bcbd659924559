package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/dupe-hunter/app"
	"github.com/moyu-x/dupe-hunter/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupe-hunter [directory]",
		Short: "按内容查找目录树中的重复文件",
		Long: `遍历指定目录（默认当前目录）中的所有文件，先按文件大小分组，
再只对大小相同的文件计算 XXH3 哈希，列出内容完全相同的文件组以及可释放的空间。`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runScan,
	}

	cmd.Flags().StringP("config", "c", "", "配置文件路径（默认依次查找 $HOME/.dupe-hunter、当前目录、/etc/dupe-hunter）")
	cmd.Flags().BoolP("verbose", "v", false, "显示详细日志")
	cmd.Flags().String("log-level", "", "日志级别 (debug, info, warn, error)")
	cmd.Flags().String("log-file", "", "日志文件路径")
	cmd.Flags().Bool("include-empty", false, "同时比较空文件")
	cmd.Flags().String("report", "", "将结果写入 JSON 报告文件")
	cmd.Flags().BoolP("quiet", "q", false, "不显示进度条")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	reportPath, _ := cmd.Flags().GetString("report")

	logLevel := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		logLevel, _ = cmd.Flags().GetString("log-level")
	}
	logFile := cfg.Logging.File
	if cmd.Flags().Changed("log-file") {
		logFile, _ = cmd.Flags().GetString("log-file")
	}
	includeEmpty := cfg.Scanner.IncludeEmpty
	if cmd.Flags().Changed("include-empty") {
		includeEmpty, _ = cmd.Flags().GetBool("include-empty")
	}

	opts := &app.ScanOptions{
		Root:         root,
		IncludeEmpty: includeEmpty,
		ReportPath:   reportPath,
		Quiet:        quiet,
		Verbose:      verbose,
		LogLevel:     logLevel,
		LogFile:      logFile,
		Out:          cmd.OutOrStdout(),
	}

	_, err = app.RunScan(opts)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败 %s: %w", path, err)
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
