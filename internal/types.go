package internal

import "time"

// 扫描得到的文件条目
type FileEntry struct {
	Path string
	Size int64
}

// 相同大小的候选文件
type SizeGroup struct {
	Size  int64
	Paths []string
}

// 大小与内容哈希都相同的一组文件
type DuplicateSet struct {
	Digest string
	Size   int64
	Paths  []string
	Kind   string
}

// Reclaimable 删除除一份以外的所有副本可释放的字节数
func (s DuplicateSet) Reclaimable() int64 {
	if len(s.Paths) < 2 {
		return 0
	}
	return s.Size * int64(len(s.Paths)-1)
}

// 哈希阶段无法读取的文件
type SkippedFile struct {
	Path string
	Err  error
}

// 一次扫描的结果
type ScanResult struct {
	Sets       []DuplicateSet
	Skipped    []SkippedFile
	TotalFiles int
	Candidates int
	StartTime  time.Time
	EndTime    time.Time
}

func (r *ScanResult) Reclaimable() int64 {
	var total int64
	for _, set := range r.Sets {
		total += set.Reclaimable()
	}
	return total
}

func (r *ScanResult) DuplicateFiles() int {
	count := 0
	for _, set := range r.Sets {
		count += len(set.Paths) - 1
	}
	return count
}
