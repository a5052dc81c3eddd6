package download

import (
	"time"

	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/progress"
)

// EventType identifies what happened
type EventType string

const (
	EventBatchStarted EventType = "batch_started"
	EventItemStarted  EventType = "item_started"
	EventItemStatus   EventType = "item_status"
	EventItemProgress EventType = "item_progress"
	EventItemDone     EventType = "item_done"
	EventItemSkipped  EventType = "item_skipped"
	EventItemFailed   EventType = "item_failed"
	EventBatchDone    EventType = "batch_done"
)

// IsTerminal reports whether the event ends an item
func (t EventType) IsTerminal() bool {
	return t == EventItemDone || t == EventItemSkipped || t == EventItemFailed
}

// Event is one ordered notification from the worker. Item is a copy taken
// when the event was emitted and may be read from any goroutine.
type Event struct {
	Type     EventType
	BatchID  string
	Total    int
	Item     *model.WorkItem
	Progress *progress.Snapshot
	Err      error
	Summary  *model.Summary
	Time     time.Time
}
