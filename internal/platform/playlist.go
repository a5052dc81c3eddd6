package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ytget/ytdlp/v2"
	"go.uber.org/zap"
)

// Timeout constants
const (
	DefaultPlaylistTimeout = 60 * time.Second
)

// PlaylistEntry is one video of a playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
}

// URL returns the watch URL of the entry
func (e PlaylistEntry) URL() string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, e.VideoID)
}

type playlistLister func(ctx context.Context, playlistID string) ([]PlaylistEntry, error)

// PlaylistExpander replaces playlist URLs with the URLs of their videos
type PlaylistExpander struct {
	timeout time.Duration
	logger  *zap.Logger
	list    playlistLister
}

// NewPlaylistExpander creates an expander backed by github.com/ytget/ytdlp
func NewPlaylistExpander(logger *zap.Logger) *PlaylistExpander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlaylistExpander{
		timeout: DefaultPlaylistTimeout,
		logger:  logger,
		list:    listPlaylistItems,
	}
}

// SetTimeout sets the timeout for each playlist lookup
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand returns urls with every playlist URL replaced by its videos, in
// playlist order. A playlist that cannot be listed stays in the result as is
// and its error is included in the joined error.
func (p *PlaylistExpander) Expand(ctx context.Context, urls []string) ([]string, error) {
	var errs []error
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))

	add := func(url string) {
		if !seen[url] {
			seen[url] = true
			out = append(out, url)
		}
	}

	for _, url := range urls {
		playlistID := ExtractPlaylistID(url)
		if playlistID == "" {
			add(url)
			continue
		}

		entries, err := p.listWithTimeout(ctx, playlistID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn("playlist expansion failed",
				zap.String("playlist_id", playlistID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("playlist %s: %w", playlistID, err))
			add(url)
			continue
		}

		p.logger.Info("expanded playlist",
			zap.String("playlist_id", playlistID),
			zap.Int("videos", len(entries)))
		for _, entry := range entries {
			if entry.VideoID == "" {
				continue
			}
			add(entry.URL())
		}
	}

	return out, errors.Join(errs...)
}

func (p *PlaylistExpander) listWithTimeout(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.list(ctx, playlistID)
}

func listPlaylistItems(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, PlaylistEntry{VideoID: it.VideoID, Title: it.Title})
	}
	return entries, nil
}
