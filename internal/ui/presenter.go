package ui

import (
	"fmt"

	"github.com/ytget/yt-mp3/internal/download"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/progress"
)

// BatchView is the display state of the window, derived only from
// download events. It holds no widgets so it can be tested headless.
type BatchView struct {
	Running       bool
	Total         int
	Current       int // 1-based position of the active item
	Title         string
	StatusKey     string
	Fraction      float64
	Indeterminate bool
	SizeText      string
	SpeedText     string
	Files         []string // completed files across batches, oldest first
	Failures      []string
	Summary       *model.Summary
}

// NewBatchView returns an idle view
func NewBatchView() *BatchView {
	return &BatchView{StatusKey: KeyReady}
}

// Apply folds one event into the view. It reports whether Files changed.
func (v *BatchView) Apply(ev download.Event) bool {
	switch ev.Type {
	case download.EventBatchStarted:
		v.Running = true
		v.Total = ev.Total
		v.Current = 0
		v.Title = ""
		v.StatusKey = KeyReady
		v.resetProgress()
		v.Failures = nil
		v.Summary = nil

	case download.EventItemStarted:
		v.Current = ev.Item.Index + 1
		v.Title = ev.Item.GetDisplayTitle()
		v.StatusKey = StatusKey(ev.Item.Status)
		v.resetProgress()

	case download.EventItemStatus:
		v.Title = ev.Item.GetDisplayTitle()
		v.StatusKey = StatusKey(ev.Item.Status)

	case download.EventItemProgress:
		if snap := ev.Progress; snap != nil {
			v.Fraction = snap.Fraction
			v.Indeterminate = snap.Indeterminate
			v.SizeText = snap.SizeText
			v.SpeedText = snap.SpeedText
		}

	case download.EventItemDone:
		v.StatusKey = KeyStatusDone
		v.Fraction = 1
		v.Indeterminate = false
		if ev.Item.OutputPath != "" {
			v.Files = append(v.Files, ev.Item.OutputPath)
			return true
		}

	case download.EventItemSkipped:
		v.Title = ev.Item.GetDisplayTitle()
		v.StatusKey = KeyStatusSkipped
		v.Indeterminate = false

	case download.EventItemFailed:
		v.StatusKey = KeyStatusFailed
		v.Indeterminate = false
		v.Failures = append(v.Failures, FailureLine(ev.Item, ev.Err))

	case download.EventBatchDone:
		v.Running = false
		v.Indeterminate = false
		v.Summary = ev.Summary
	}
	return false
}

// Counter renders "current/total", or an empty string when idle
func (v *BatchView) Counter() string {
	if v.Total == 0 || v.Current == 0 {
		return ""
	}
	return fmt.Sprintf(ItemCounterFormat, v.Current, v.Total)
}

// LastFile returns the most recent completed file or ""
func (v *BatchView) LastFile() string {
	if len(v.Files) == 0 {
		return ""
	}
	return v.Files[len(v.Files)-1]
}

func (v *BatchView) resetProgress() {
	v.Fraction = 0
	v.Indeterminate = true
	v.SizeText = progress.FormatSize(0, 0)
	v.SpeedText = progress.FormatSpeed(0)
}

// StatusKey maps an item status to its localization key
func StatusKey(status model.ItemStatus) string {
	switch status {
	case model.ItemStatusResolving:
		return KeyStatusResolving
	case model.ItemStatusCheckingDedup:
		return KeyStatusChecking
	case model.ItemStatusFetching:
		return KeyStatusDownloading
	case model.ItemStatusRelocating, model.ItemStatusRecorded:
		return KeyStatusSaving
	case model.ItemStatusDone:
		return KeyStatusDone
	case model.ItemStatusSkipped:
		return KeyStatusSkipped
	case model.ItemStatusFailed:
		return KeyStatusFailed
	}
	return KeyReady
}

// FailureLine formats a failed item for the status area
func FailureLine(item *model.WorkItem, err error) string {
	name := DashPlaceholder
	if item != nil {
		name = item.GetDisplayTitle()
	}
	msg := DashPlaceholder
	switch {
	case err != nil:
		msg = err.Error()
	case item != nil && item.LastError != "":
		msg = item.LastError
	}
	return fmt.Sprintf(FailureLineFormat, name, msg)
}
