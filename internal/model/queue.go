package model

import (
	"errors"
	"strings"
	"time"
)

// Queue validation errors
var (
	ErrNoURLs        = errors.New("no valid URLs")
	ErrNoDestination = errors.New("no destination folder selected")
)

// Queue is one batch of URLs bound for a destination directory
type Queue struct {
	ID      string
	URLs    []string
	DestDir string
}

// NewQueue creates a queue with a fresh batch ID
func NewQueue(urls []string, destDir string) Queue {
	return Queue{
		ID:      NewID(BatchIDPrefix),
		URLs:    urls,
		DestDir: destDir,
	}
}

// Validate checks that the queue has work and somewhere to put it
func (q Queue) Validate() error {
	if len(q.URLs) == 0 {
		return ErrNoURLs
	}
	if strings.TrimSpace(q.DestDir) == "" {
		return ErrNoDestination
	}
	return nil
}

// Items creates one pending work item per URL
func (q Queue) Items() []*WorkItem {
	items := make([]*WorkItem, 0, len(q.URLs))
	for i, u := range q.URLs {
		items = append(items, NewWorkItem(i, u))
	}
	return items
}

// ItemError pairs a failed item with its error message
type ItemError struct {
	URL     string
	VideoID string
	Message string
}

// Summary is the outcome of a finished batch
type Summary struct {
	BatchID    string
	Total      int
	Succeeded  int
	Skipped    int
	Failed     int
	Files      []string
	Errors     []ItemError
	Cancelled  bool // the batch stopped before every item was processed
	StartedAt  time.Time
	FinishedAt time.Time
}

// Add folds a finished item into the summary
func (s *Summary) Add(item *WorkItem) {
	switch item.Status {
	case ItemStatusDone:
		s.Succeeded++
		if item.OutputPath != "" {
			s.Files = append(s.Files, item.OutputPath)
		}
	case ItemStatusSkipped:
		s.Skipped++
	case ItemStatusFailed:
		s.Failed++
		s.Errors = append(s.Errors, ItemError{
			URL:     item.URL,
			VideoID: item.VideoID,
			Message: item.LastError,
		})
	}
}

// Processed returns the number of items that reached a terminal state
func (s *Summary) Processed() int {
	return s.Succeeded + s.Skipped + s.Failed
}
