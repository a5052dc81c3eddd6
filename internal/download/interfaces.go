package download

import (
	"context"

	"github.com/ytget/yt-mp3/internal/model"
)

// IDStore is the persistent set of completed video IDs
type IDStore interface {
	Contains(id string) (bool, error)
	Record(id string) error
}

// Runner defines the interface the presentation layers use to run batches.
type Runner interface {
	// Start validates the queue and processes it in the background. The
	// returned channel must be drained until it is closed.
	Start(ctx context.Context, queue model.Queue) (<-chan Event, error)

	// Run processes the queue on the calling goroutine
	Run(ctx context.Context, queue model.Queue, onEvent func(Event)) (model.Summary, error)
}
