package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/moyu-x/dupe-hunter/internal"
)

const (
	colName = iota
	colDir
	colSize
	colKind
)

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func shortDigest(digest string) string {
	if len(digest) <= internal.DigestPrefixLen {
		return digest
	}
	return digest[:internal.DigestPrefixLen] + "..."
}

// tableRows 返回表格数据行和组标题所在的行号
// 行号从 0 开始计数，与 table.StyleFunc 的数据行编号一致，表头为 table.HeaderRow
func tableRows(sets []internal.DuplicateSet) ([][]string, map[int]bool) {
	groupRows := make(map[int]bool)
	var rows [][]string

	for _, set := range sets {
		groupRows[len(rows)] = true
		rows = append(rows, []string{fmt.Sprintf("组 (%s)", shortDigest(set.Digest)), "", "", ""})

		kind := set.Kind
		if kind == "" {
			kind = "-"
		}
		for _, path := range set.Paths {
			rows = append(rows, []string{filepath.Base(path), filepath.Dir(path), FormatBytes(set.Size), kind})
		}
	}
	return rows, groupRows
}

func cellStyleFunc(groupRows map[int]bool) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case groupRows[row]:
			return groupStyle
		case col == colName:
			return nameStyle
		case col == colDir:
			return pathStyle
		case col == colSize:
			return sizeStyle
		default:
			return cellStyle
		}
	}
}

// Table 构建重复文件表格，每组先输出一行组标题
func Table(sets []internal.DuplicateSet) *table.Table {
	rows, groupRows := tableRows(sets)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("文件名", "路径", "大小", "类型").
		Rows(rows...).
		StyleFunc(cellStyleFunc(groupRows))
}

// Render 输出扫描结果
func Render(w io.Writer, res *internal.ScanResult) error {
	if len(res.Sets) == 0 {
		_, err := fmt.Fprintln(w, successStyle.Render("未发现重复文件！"))
		if err != nil {
			return err
		}
		return renderSkipped(w, res)
	}

	if _, err := fmt.Fprintln(w, titleStyle.Render("重复文件列表")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Table(res.Sets).String()); err != nil {
		return err
	}

	summary := []string{
		fmt.Sprintf("共发现 %d 组重复文件", len(res.Sets)),
		fmt.Sprintf("重复文件数: %d", res.DuplicateFiles()),
		fmt.Sprintf("可释放空间: %s", FormatBytes(res.Reclaimable())),
	}
	for _, line := range summary {
		if _, err := fmt.Fprintln(w, successStyle.Render(line)); err != nil {
			return err
		}
	}

	return renderSkipped(w, res)
}

func renderSkipped(w io.Writer, res *internal.ScanResult) error {
	if len(res.Skipped) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("无法读取而跳过的文件: %d", len(res.Skipped))))
	return err
}
