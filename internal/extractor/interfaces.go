package extractor

import (
	"context"

	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/progress"
)

// FetchOptions controls where a fetch writes and which ffmpeg it uses
type FetchOptions struct {
	// StagingDir receives <id>.<ext> and the transcoded <id>.mp3
	StagingDir string
	// FFmpegPath is passed as --ffmpeg-location when non-empty
	FFmpegPath string
}

// Extractor defines the interface to the external media extractor.
type Extractor interface {
	// Resolve returns the video ID and title without downloading the payload
	Resolve(ctx context.Context, url string) (model.Metadata, error)

	// Fetch downloads the best audio stream of url and transcodes it to MP3
	// inside opts.StagingDir. onProgress may be nil.
	Fetch(ctx context.Context, url string, opts FetchOptions, onProgress func(progress.Update)) error
}
