package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/dupe-hunter/internal"
	"github.com/moyu-x/dupe-hunter/pkg/logger"
	"github.com/moyu-x/dupe-hunter/pkg/progress"
)

var (
	ErrRootNotFound = errors.New("目录不存在")
	ErrNotDirectory = errors.New("不是目录")
)

type FileWalker struct {
	Fs           afero.Fs
	IncludeEmpty bool

	// 扫描阶段的进度，总数未知
	Progress progress.Sink
}

func NewFileWalker(fs afero.Fs) *FileWalker {
	return &FileWalker{
		Fs: fs,
	}
}

// ValidateRoot 将根目录解析为绝对路径，并确认其存在且是目录
// 根目录本身是符号链接时解析到真实路径，遍历不会跟随符号链接
func ValidateRoot(fs afero.Fs, root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("解析路径失败 %s: %w", root, err)
	}

	if _, ok := fs.(*afero.OsFs); ok {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%s: %w", abs, ErrRootNotFound)
			}
			return "", fmt.Errorf("解析符号链接失败 %s: %w", abs, err)
		}
		if resolved != abs {
			logger.Get().Debug().Msgf("根目录为符号链接: %s -> %s", abs, resolved)
		}
		abs = resolved
	}

	info, err := fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", abs, ErrRootNotFound)
		}
		return "", fmt.Errorf("访问目录失败 %s: %w", abs, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}

	return abs, nil
}

// Walk 遍历 root 下的普通文件，符号链接和其他特殊文件不会传给 callback
func (w *FileWalker) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return afero.Walk(w.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("读取目录失败 %s: %w", root, err)
			}
			logger.Get().Debug().Err(err).Str("path", path).Msg("访问路径出错，已跳过")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if info.Size() == 0 && !w.IncludeEmpty {
			return nil
		}

		return callback(path, info)
	})
}

// Collect 按遍历顺序返回所有文件条目
func (w *FileWalker) Collect(root string) ([]internal.FileEntry, error) {
	logger.Get().Info().Msgf("开始扫描文件大小: %s", root)

	sink := w.Progress
	if sink == nil {
		sink = progress.Discard
	}

	var entries []internal.FileEntry
	sink.Start(-1)
	err := w.Walk(root, func(path string, info os.FileInfo) error {
		entries = append(entries, internal.FileEntry{Path: path, Size: info.Size()})
		sink.Advance(path, nil)
		logger.Get().Trace().Int64("size", info.Size()).Msgf("发现文件: %s", path)
		return nil
	})
	sink.Finish()
	if err != nil {
		logger.Get().Error().Err(err).Msgf("扫描目录失败: %s", root)
		return nil, err
	}

	logger.Get().Info().Msgf("扫描完成，共找到 %d 个文件", len(entries))
	return entries, nil
}
