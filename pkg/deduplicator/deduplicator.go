package deduplicator

import (
	"time"

	"github.com/moyu-x/dupe-hunter/internal"
	"github.com/moyu-x/dupe-hunter/pkg/hasher"
	"github.com/moyu-x/dupe-hunter/pkg/logger"
	"github.com/moyu-x/dupe-hunter/pkg/progress"
)

// Hasher 计算单个文件的内容指纹
type Hasher interface {
	Hash(path string) (hasher.Fingerprint, error)
}

// GroupBySize 按文件大小分组，只保留成员数不少于 2 的组
// 组按大小首次出现的顺序排列，组内路径保持输入顺序
func GroupBySize(entries []internal.FileEntry) []internal.SizeGroup {
	index := make(map[int64]int)
	var groups []internal.SizeGroup

	for _, entry := range entries {
		i, ok := index[entry.Size]
		if !ok {
			i = len(groups)
			index[entry.Size] = i
			groups = append(groups, internal.SizeGroup{Size: entry.Size})
		}
		groups[i].Paths = append(groups[i].Paths, entry.Path)
	}

	candidates := groups[:0]
	for _, group := range groups {
		if len(group.Paths) > 1 {
			candidates = append(candidates, group)
		}
	}
	return candidates
}

// GroupByHash 对同一大小组内的文件计算哈希并按摘要分组
// 无法读取的文件从组中剔除并记录在返回的跳过列表中
func GroupByHash(group internal.SizeGroup, h Hasher, sink progress.Sink) ([]internal.DuplicateSet, []internal.SkippedFile) {
	index := make(map[string]int)
	var sets []internal.DuplicateSet
	var skipped []internal.SkippedFile

	for _, path := range group.Paths {
		fp, err := h.Hash(path)
		sink.Advance(path, err)
		if err != nil {
			logger.Get().Warn().Err(err).Msgf("无法读取文件，已跳过: %s", path)
			skipped = append(skipped, internal.SkippedFile{Path: path, Err: err})
			continue
		}

		i, ok := index[fp.Digest]
		if !ok {
			i = len(sets)
			index[fp.Digest] = i
			sets = append(sets, internal.DuplicateSet{
				Digest: fp.Digest,
				Size:   group.Size,
				Kind:   fp.Kind,
			})
		}
		sets[i].Paths = append(sets[i].Paths, path)
	}

	duplicates := sets[:0]
	for _, set := range sets {
		if len(set.Paths) > 1 {
			duplicates = append(duplicates, set)
		}
	}
	return duplicates, skipped
}

// Find 依次执行大小分组和哈希分组
func Find(entries []internal.FileEntry, h Hasher, sink progress.Sink) *internal.ScanResult {
	if sink == nil {
		sink = progress.Discard
	}

	res := &internal.ScanResult{
		TotalFiles: len(entries),
		StartTime:  time.Now(),
	}

	groups := GroupBySize(entries)
	for _, group := range groups {
		res.Candidates += len(group.Paths)
	}
	logger.Get().Info().Msgf("按大小筛选完成，%d 个大小组，共 %d 个候选文件", len(groups), res.Candidates)

	sink.Start(res.Candidates)
	for _, group := range groups {
		sets, skipped := GroupByHash(group, h, sink)
		res.Sets = append(res.Sets, sets...)
		res.Skipped = append(res.Skipped, skipped...)
	}
	sink.Finish()

	res.EndTime = time.Now()
	logger.Get().Info().Msgf("哈希比较完成，发现 %d 组重复文件，跳过 %d 个文件，耗时: %v",
		len(res.Sets), len(res.Skipped), res.EndTime.Sub(res.StartTime))
	return res
}
