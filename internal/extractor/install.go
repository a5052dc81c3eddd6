package extractor

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
)

// Binary describes the yt-dlp executable that will be used
type Binary struct {
	Path    string
	Version string
}

// EnsureBinary resolves the yt-dlp executable. With download set, a missing
// binary is fetched into the go-ytdlp cache directory.
func EnsureBinary(ctx context.Context, download bool) (Binary, error) {
	resolved, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{DisableDownload: !download})
	if err != nil {
		return Binary{}, fmt.Errorf("yt-dlp not available: %w", err)
	}
	return Binary{Path: resolved.Executable, Version: resolved.Version}, nil
}
