package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/encoder"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/progress"
)

// yt-dlp option values
const (
	BestAudioFormat    = "bestaudio/best"
	OutputTemplateName = "%(id)s.%(ext)s"
	ProgressInterval   = 500 * time.Millisecond

	statusDownloading = "downloading"
	statusFinished    = "finished"
)

// Resolution errors
var (
	ErrNoInfo       = errors.New("extractor returned no metadata")
	ErrMissingID    = errors.New("metadata has no id")
	ErrMissingTitle = errors.New("metadata has no title")
)

// YTDLP implements Extractor using the yt-dlp binary
type YTDLP struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewYTDLP creates a yt-dlp backed extractor
func NewYTDLP(logger *zap.Logger) *YTDLP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLP{logger: logger, now: time.Now}
}

// Resolve runs yt-dlp with --dump-json, which never downloads the payload
func (y *YTDLP) Resolve(ctx context.Context, url string) (model.Metadata, error) {
	dl := ytdlp.New().
		DumpJSON().
		NoPlaylist().
		NoWarnings()

	res, err := dl.Run(ctx, url)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("failed to extract info: %w", err)
	}

	info, err := res.GetExtractedInfo()
	if err != nil {
		return model.Metadata{}, fmt.Errorf("failed to parse extracted info: %w", err)
	}
	if len(info) == 0 {
		return model.Metadata{}, ErrNoInfo
	}

	meta, err := metadataFromInfo(info[0])
	if err != nil {
		return model.Metadata{}, err
	}

	y.logger.Debug("resolved metadata",
		zap.String("url", url),
		zap.String("video_id", meta.ID),
		zap.String("title", meta.Title))
	return meta, nil
}

// Fetch downloads and transcodes url into opts.StagingDir
func (y *YTDLP) Fetch(ctx context.Context, url string, opts FetchOptions, onProgress func(progress.Update)) error {
	if strings.TrimSpace(opts.StagingDir) == "" {
		return errors.New("staging directory is required")
	}

	dl := ytdlp.New().
		Format(BestAudioFormat).
		Output(OutputTemplate(opts.StagingDir)).
		RestrictFilenames().
		NoPart().
		NoContinue().
		ExtractAudio().
		AudioFormat(encoder.AudioFormat).
		AudioQuality(encoder.AudioQualityMax).
		NoPlaylist().
		NoWarnings()

	if opts.FFmpegPath != "" {
		dl.FFmpegLocation(opts.FFmpegPath)
	}

	if onProgress != nil {
		dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			if u, ok := y.toUpdate(update); ok {
				onProgress(u)
			}
		})
	}

	y.logger.Debug("fetching audio",
		zap.String("url", url),
		zap.String("staging_dir", opts.StagingDir),
		zap.String("ffmpeg", opts.FFmpegPath))

	if _, err := dl.Run(ctx, url); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("yt-dlp failed: %w", err)
	}
	return nil
}

// OutputTemplate returns the yt-dlp output template for a staging directory
func OutputTemplate(stagingDir string) string {
	return filepath.Join(stagingDir, OutputTemplateName)
}

// toUpdate converts a yt-dlp progress line into an Update. Speed is derived
// from the time since the transfer started.
func (y *YTDLP) toUpdate(update ytdlp.ProgressUpdate) (progress.Update, bool) {
	switch update.Status {
	case statusDownloading, statusFinished:
	default:
		return progress.Update{}, false
	}

	u := progress.Update{
		Downloaded: int64(update.DownloadedBytes),
		Total:      int64(update.TotalBytes),
	}

	if !update.Started.IsZero() {
		elapsed := y.now().Sub(update.Started)
		if elapsed.Seconds() > 0 {
			u.Speed = float64(update.DownloadedBytes) / elapsed.Seconds()
		}
	}

	if update.Status == statusFinished && u.Total > 0 {
		u.Downloaded = u.Total
	}
	return u, true
}

func metadataFromInfo(info *ytdlp.ExtractedInfo) (model.Metadata, error) {
	if info == nil {
		return model.Metadata{}, ErrNoInfo
	}

	id := strings.TrimSpace(info.ID)
	if id == "" {
		return model.Metadata{}, ErrMissingID
	}
	if info.Title == nil || strings.TrimSpace(*info.Title) == "" {
		return model.Metadata{}, fmt.Errorf("%w (id %s)", ErrMissingTitle, id)
	}

	return model.Metadata{ID: id, Title: *info.Title}, nil
}
