package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID prefixes
const (
	ItemIDPrefix  = "item-"
	BatchIDPrefix = "batch-"
)

// Metadata is the subset of extractor output the workflow needs
type Metadata struct {
	ID    string // platform-assigned video identifier
	Title string // raw source title
}

// WorkItem pairs a source URL with its processing state
type WorkItem struct {
	ID         string
	Index      int // position in the queue, 0-based
	URL        string
	VideoID    string
	Title      string // raw title once resolved
	Status     ItemStatus
	OutputPath string // final path in the destination directory
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewWorkItem creates a pending work item for url at the given queue index
func NewWorkItem(index int, url string) *WorkItem {
	return &WorkItem{
		ID:     NewID(ItemIDPrefix),
		Index:  index,
		URL:    url,
		Status: ItemStatusPending,
	}
}

// Clone returns a copy safe to hand to another goroutine
func (wi *WorkItem) Clone() *WorkItem {
	c := *wi
	return &c
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (wi *WorkItem) GetDisplayTitle() string {
	if wi.Title != "" && !strings.HasPrefix(wi.Title, "http") {
		return wi.Title
	}

	if wi.OutputPath != "" {
		parts := strings.FieldsFunc(wi.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return wi.URL
}

// Elapsed returns how long the item took, or zero if it has not finished
func (wi *WorkItem) Elapsed() time.Duration {
	if wi.StartedAt.IsZero() || wi.FinishedAt.IsZero() {
		return 0
	}
	return wi.FinishedAt.Sub(wi.StartedAt)
}

// NewID generates a prefixed UUID v7, falling back to a timestamp
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	return prefix + id.String()
}
