package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/moyu-x/dupe-hunter/internal"
)

type jsonGroup struct {
	Digest      string   `json:"digest"`
	Size        int64    `json:"size"`
	Kind        string   `json:"kind,omitempty"`
	Paths       []string `json:"paths"`
	Reclaimable int64    `json:"reclaimable_bytes"`
}

type jsonSkipped struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type jsonReport struct {
	ScanID          string        `json:"scan_id"`
	RootPath        string        `json:"root_path"`
	StartedAt       time.Time     `json:"started_at"`
	FinishedAt      time.Time     `json:"finished_at"`
	TotalFiles      int           `json:"total_files"`
	Candidates      int           `json:"candidates"`
	DuplicateGroups []jsonGroup   `json:"duplicate_groups"`
	DuplicateFiles  int           `json:"duplicate_files"`
	Reclaimable     int64         `json:"reclaimable_bytes"`
	Skipped         []jsonSkipped `json:"skipped,omitempty"`
}

func newJSONReport(res *internal.ScanResult, root, scanID string) jsonReport {
	r := jsonReport{
		ScanID:          scanID,
		RootPath:        root,
		StartedAt:       res.StartTime,
		FinishedAt:      res.EndTime,
		TotalFiles:      res.TotalFiles,
		Candidates:      res.Candidates,
		DuplicateGroups: make([]jsonGroup, 0, len(res.Sets)),
		DuplicateFiles:  res.DuplicateFiles(),
		Reclaimable:     res.Reclaimable(),
	}

	for _, set := range res.Sets {
		r.DuplicateGroups = append(r.DuplicateGroups, jsonGroup{
			Digest:      set.Digest,
			Size:        set.Size,
			Kind:        set.Kind,
			Paths:       set.Paths,
			Reclaimable: set.Reclaimable(),
		})
	}

	for _, s := range res.Skipped {
		r.Skipped = append(r.Skipped, jsonSkipped{Path: s.Path, Error: s.Err.Error()})
	}
	return r
}

// WriteJSON 将扫描结果写为 JSON 报告
func WriteJSON(fs afero.Fs, path string, res *internal.ScanResult, root, scanID string) error {
	data, err := json.MarshalIndent(newJSONReport(res, root, scanID), "", "  ")
	if err != nil {
		return fmt.Errorf("序列化报告失败: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("写入报告失败: %w", err)
	}
	return nil
}
