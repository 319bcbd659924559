package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Sink 接收扫描和哈希阶段的状态事件
// total 为负数表示总数未知
type Sink interface {
	Start(total int)
	Advance(path string, err error)
	Finish()
}

type discard struct{}

func (discard) Start(int)             {}
func (discard) Advance(string, error) {}
func (discard) Finish()               {}

// Discard 丢弃所有事件
var Discard Sink = discard{}

// Bar 在终端显示哈希进度条
type Bar struct {
	out    io.Writer
	bar    *progressbar.ProgressBar
	failed int
}

func NewBar(out io.Writer) *Bar {
	if out == nil {
		out = os.Stderr
	}
	return &Bar{out: out}
}

const (
	scanDescription = "扫描文件大小..."
	hashDescription = "计算候选文件哈希..."
)

func (b *Bar) Start(total int) {
	b.failed = 0
	if total < 0 {
		b.bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(b.out),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription(scanDescription),
			progressbar.OptionClearOnFinish(),
		)
		return
	}

	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(hashDescription),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Advance(path string, err error) {
	if b.bar == nil {
		return
	}
	if err != nil {
		b.failed++
		b.bar.Describe(fmt.Sprintf("%s (跳过 %d)", hashDescription, b.Failed()))
	}
	b.bar.Add(1)
}

func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	b.bar.Finish()
}

// Failed 返回当前阶段读取失败的文件数
func (b *Bar) Failed() int {
	return b.failed
}

// Event 一次 Advance 调用的记录
type Event struct {
	Path string
	Err  error
}

// Recorder 记录收到的所有事件
type Recorder struct {
	Total    int
	Started  bool
	Finished bool
	Events   []Event
	// 每次 Start 传入的总数
	Phases   []int
}

func (r *Recorder) Start(total int) {
	r.Started = true
	r.Total = total
	r.Phases = append(r.Phases, total)
}

func (r *Recorder) Advance(path string, err error) {
	r.Events = append(r.Events, Event{Path: path, Err: err})
}

func (r *Recorder) Finish() {
	r.Finished = true
}

// Failures 返回带错误的事件
func (r *Recorder) Failures() []Event {
	var failed []Event
	for _, e := range r.Events {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}
