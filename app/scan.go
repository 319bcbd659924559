package app

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/dupe-hunter/internal"
	"github.com/moyu-x/dupe-hunter/pkg/deduplicator"
	"github.com/moyu-x/dupe-hunter/pkg/hasher"
	"github.com/moyu-x/dupe-hunter/pkg/logger"
	"github.com/moyu-x/dupe-hunter/pkg/progress"
	"github.com/moyu-x/dupe-hunter/pkg/report"
	"github.com/moyu-x/dupe-hunter/pkg/scanner"
)

type ScanOptions struct {
	Root         string
	IncludeEmpty bool
	ReportPath   string
	Quiet        bool
	Verbose      bool
	LogLevel     string
	LogFile      string

	// 以下字段为空时使用默认值
	Fs       afero.Fs
	Out      io.Writer
	Progress progress.Sink
}

func RunScan(opts *ScanOptions) (*internal.ScanResult, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	sink := opts.Progress
	if sink == nil {
		if opts.Quiet {
			sink = progress.Discard
		} else {
			sink = progress.NewBar(os.Stderr)
		}
	}

	root, err := scanner.ValidateRoot(fs, opts.Root)
	if err != nil {
		return nil, err
	}

	scanID := uuid.NewString()
	logger.With("scan", scanID)
	logger.Get().Info().Msgf("开始扫描: %s", root)

	walker := scanner.NewFileWalker(fs)
	walker.IncludeEmpty = opts.IncludeEmpty
	walker.Progress = sink

	entries, err := walker.Collect(root)
	if err != nil {
		return nil, fmt.Errorf("扫描目录失败: %w", err)
	}

	res := deduplicator.Find(entries, hasher.NewHasher(fs), sink)

	for _, s := range res.Skipped {
		logger.Get().Debug().Err(s.Err).Msgf("跳过的文件: %s", s.Path)
	}

	if err := report.Render(out, res); err != nil {
		return nil, fmt.Errorf("输出报告失败: %w", err)
	}

	if opts.ReportPath != "" {
		if err := report.WriteJSON(fs, opts.ReportPath, res, root, scanID); err != nil {
			return nil, err
		}
		logger.Get().Info().Msgf("JSON 报告已写入: %s", opts.ReportPath)
	}

	return res, nil
}
