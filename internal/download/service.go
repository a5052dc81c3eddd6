package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/extractor"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
	"github.com/ytget/yt-mp3/internal/progress"
	"github.com/ytget/yt-mp3/internal/sanitize"
)

// Staging and output constants
const (
	StagingDirName     = ".temp"
	OutputExtension    = ".mp3"
	DefaultEventBuffer = 64
)

// Options configures a Service
type Options struct {
	FFmpegPath  string
	Collision   model.CollisionPolicy
	EventBuffer int
}

// Service runs download batches one item at a time
type Service struct {
	extractor extractor.Extractor
	store     IDStore
	opts      Options
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new download service
func NewService(ex extractor.Extractor, store IDStore, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = DefaultEventBuffer
	}
	if opts.Collision == "" {
		opts.Collision = model.DefaultCollisionPolicy
	}
	return &Service{
		extractor: ex,
		store:     store,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// StagingDir returns the staging directory used for a destination
func StagingDir(destDir string) string {
	return filepath.Join(destDir, StagingDirName)
}

// Start validates the queue, then processes it on a background goroutine.
// Events arrive in order on the returned channel, which is closed after
// EventBatchDone.
func (s *Service) Start(ctx context.Context, queue model.Queue) (<-chan Event, error) {
	staging, err := s.prepare(queue)
	if err != nil {
		return nil, err
	}

	events := make(chan Event, s.opts.EventBuffer)
	go func() {
		defer close(events)
		s.process(ctx, queue, staging, func(ev Event) {
			events <- ev
		})
	}()
	return events, nil
}

// Run processes the queue on the calling goroutine and returns the summary.
// onEvent may be nil.
func (s *Service) Run(ctx context.Context, queue model.Queue, onEvent func(Event)) (model.Summary, error) {
	staging, err := s.prepare(queue)
	if err != nil {
		return model.Summary{}, err
	}
	if onEvent == nil {
		onEvent = func(Event) {}
	}
	return s.process(ctx, queue, staging, onEvent), nil
}

// prepare rejects unusable input before any event is emitted
func (s *Service) prepare(queue model.Queue) (string, error) {
	if err := queue.Validate(); err != nil {
		return "", newError(KindInput, "", "", err)
	}

	staging := StagingDir(queue.DestDir)
	if err := platform.CreateDirectoryIfNotExists(staging); err != nil {
		return "", newError(KindInput, "", "", fmt.Errorf("failed to create staging directory %s: %w", staging, err))
	}
	return staging, nil
}

func (s *Service) process(ctx context.Context, queue model.Queue, staging string, emit func(Event)) model.Summary {
	items := queue.Items()
	summary := model.Summary{
		BatchID:   queue.ID,
		Total:     len(items),
		StartedAt: s.now(),
	}

	s.logger.Info("batch started",
		zap.String("batch_id", queue.ID),
		zap.Int("items", len(items)),
		zap.String("dest_dir", queue.DestDir))
	emit(Event{Type: EventBatchStarted, BatchID: queue.ID, Total: len(items), Time: s.now()})

	for _, item := range items {
		if ctx.Err() != nil {
			summary.Cancelled = true
			s.logger.Warn("batch cancelled",
				zap.String("batch_id", queue.ID),
				zap.Int("processed", summary.Processed()))
			break
		}

		r := &itemRun{service: s, ctx: ctx, batchID: queue.ID, total: len(items), item: item, emit: emit}
		r.execute(staging, queue.DestDir)
		summary.Add(item)
	}

	summary.FinishedAt = s.now()
	s.logger.Info("batch finished",
		zap.String("batch_id", queue.ID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)))

	final := summary
	emit(Event{Type: EventBatchDone, BatchID: queue.ID, Total: len(items), Summary: &final, Time: s.now()})
	return summary
}

// itemRun carries the state of one item through the pipeline
type itemRun struct {
	service *Service
	ctx     context.Context
	batchID string
	total   int
	item    *model.WorkItem
	emit    func(Event)
}

func (r *itemRun) execute(staging, destDir string) {
	s := r.service
	item := r.item
	item.StartedAt = s.now()

	if !r.advance(model.ItemStatusResolving, EventItemStarted) {
		return
	}

	meta, err := s.extractor.Resolve(r.ctx, item.URL)
	if err != nil {
		r.fail(newError(KindResolution, item.URL, "", err))
		return
	}
	item.VideoID = meta.ID
	item.Title = meta.Title

	if !r.advance(model.ItemStatusCheckingDedup, EventItemStatus) {
		return
	}

	seen, err := s.store.Contains(meta.ID)
	if err != nil {
		r.fail(newError(KindStore, item.URL, meta.ID, err))
		return
	}
	if seen {
		s.logger.Info("already downloaded",
			zap.String("video_id", meta.ID),
			zap.String("url", item.URL))
		r.finish(model.ItemStatusSkipped, EventItemSkipped, nil)
		return
	}

	if !r.advance(model.ItemStatusFetching, EventItemStatus) {
		return
	}

	if err := r.fetch(staging); err != nil {
		r.fail(newError(KindFetch, item.URL, meta.ID, err))
		return
	}

	if !r.advance(model.ItemStatusRelocating, EventItemStatus) {
		return
	}

	artifact, err := platform.FindArtifact(staging, meta.ID, OutputExtension)
	if err != nil {
		r.fail(newError(KindArtifactNotFound, item.URL, meta.ID, err))
		return
	}

	output, err := s.relocate(artifact, fileBaseName(meta), staging, destDir)
	if err != nil {
		r.fail(newError(KindRelocate, item.URL, meta.ID, err))
		return
	}
	item.OutputPath = output

	// the ID is recorded only once the file is in place
	if err := s.store.Record(meta.ID); err != nil {
		r.fail(newError(KindStore, item.URL, meta.ID, err))
		return
	}

	if !r.advance(model.ItemStatusRecorded, EventItemStatus) {
		return
	}
	s.logger.Info("downloaded",
		zap.String("video_id", meta.ID),
		zap.String("path", output))
	r.finish(model.ItemStatusDone, EventItemDone, nil)
}

// fetch runs the extractor and forwards progress. Callbacks that arrive
// after Fetch returned are dropped so they cannot follow the terminal event.
func (r *itemRun) fetch(staging string) error {
	tracker := progress.NewTracker(r.item.ID)

	var mu sync.Mutex
	open := true
	onProgress := func(u progress.Update) {
		mu.Lock()
		defer mu.Unlock()
		if !open {
			return
		}
		snap := tracker.Observe(u)
		r.emit(r.event(EventItemProgress, &snap, nil))
	}

	err := r.service.extractor.Fetch(r.ctx, r.item.URL, extractor.FetchOptions{
		StagingDir: staging,
		FFmpegPath: r.service.opts.FFmpegPath,
	}, onProgress)

	mu.Lock()
	open = false
	mu.Unlock()
	return err
}

// relocate renames the artifact to base.mp3 inside staging, then moves it
// into destDir according to the collision policy
func (s *Service) relocate(artifact, base, staging, destDir string) (string, error) {
	fileName := base + OutputExtension
	staged := filepath.Join(staging, fileName)
	if artifact != staged {
		if err := platform.MoveFile(artifact, staged); err != nil {
			return "", err
		}
	}

	target := filepath.Join(destDir, fileName)
	switch s.opts.Collision {
	case model.CollisionSkip:
		if _, err := os.Stat(target); err == nil {
			if err := os.Remove(staged); err != nil {
				return "", fmt.Errorf("failed to discard %s: %w", staged, err)
			}
			s.logger.Info("kept existing file", zap.String("path", target))
			return target, nil
		}
	case model.CollisionUniquify:
		unique, err := platform.UniquePath(target)
		if err != nil {
			return "", err
		}
		target = unique
	}

	if err := platform.MoveFile(staged, target); err != nil {
		return "", err
	}
	return target, nil
}

// fileBaseName is the cleaned title, or the video ID when nothing remains
func fileBaseName(meta model.Metadata) string {
	if name := sanitize.Title(meta.Title); name != "" {
		return name
	}
	return meta.ID
}

func (r *itemRun) event(t EventType, snap *progress.Snapshot, err error) Event {
	return Event{
		Type:     t,
		BatchID:  r.batchID,
		Total:    r.total,
		Item:     r.item.Clone(),
		Progress: snap,
		Err:      err,
		Time:     r.service.now(),
	}
}

// advance moves the item forward and emits t. A refused transition fails
// the item and returns false.
func (r *itemRun) advance(to model.ItemStatus, t EventType) bool {
	if err := model.Transition(r.item, to); err != nil {
		r.service.logger.Error("invalid transition", zap.Error(err))
		r.item.Status = model.ItemStatusFailed
		r.item.LastError = err.Error()
		r.item.FinishedAt = r.service.now()
		r.emit(r.event(EventItemFailed, nil, err))
		return false
	}
	r.emit(r.event(t, nil, nil))
	return true
}

func (r *itemRun) finish(to model.ItemStatus, t EventType, err error) {
	if terr := model.Transition(r.item, to); terr != nil {
		r.service.logger.Error("invalid transition", zap.Error(terr))
		r.item.Status = model.ItemStatusFailed
		t = EventItemFailed
	}
	if err != nil {
		r.item.LastError = err.Error()
	}
	r.item.FinishedAt = r.service.now()
	r.emit(r.event(t, nil, err))
}

func (r *itemRun) fail(err *Error) {
	r.service.logger.Warn("item failed",
		zap.String("item_id", r.item.ID),
		zap.String("url", r.item.URL),
		zap.String("video_id", err.VideoID),
		zap.String("kind", err.Kind.String()),
		zap.Error(err.Err))
	r.finish(model.ItemStatusFailed, EventItemFailed, err)
}
