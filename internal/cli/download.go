package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/download"
	"github.com/ytget/yt-mp3/internal/idstore"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// ErrNoURLs is returned when neither arguments nor --file yield a URL
var ErrNoURLs = errors.New("no valid URLs: pass links starting with http as arguments or via --file")

type downloadFlags struct {
	dest      string
	file      string
	collision string
	noExpand  bool
	quiet     bool
}

func (a *App) downloadCommand() *cobra.Command {
	var f downloadFlags
	cmd := &cobra.Command{
		Use:   "download [urls...]",
		Short: "Download each URL as an MP3",
		Example: `  yt-mp3 download https://www.youtube.com/watch?v=dQw4w9WgXcQ --dest ~/Music
  yt-mp3 download --file urls.txt --collision uniquify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDownload(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.dest, "dest", "d", "", "destination folder (default from config)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read URLs from a file, one per line")
	cmd.Flags().StringVar(&f.collision, "collision", "", "when the target exists: overwrite, uniquify or skip")
	cmd.Flags().BoolVar(&f.noExpand, "no-expand", false, "do not expand playlist URLs")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "hide progress bars")
	return cmd
}

func (a *App) runDownload(cmd *cobra.Command, args []string, f downloadFlags) error {
	urls, err := collectURLs(args, f.file)
	if err != nil {
		return err
	}

	opts := a.opts
	if f.dest != "" {
		opts.DownloadDir = f.dest
	}
	if f.collision != "" {
		opts.CollisionPolicy = f.collision
	}
	policy, err := model.ParseCollisionPolicy(opts.CollisionPolicy)
	if err != nil {
		return err
	}

	// SIGINT stops the batch between items and interrupts yt-dlp
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.ExpandPlaylists && !f.noExpand {
		expanded, err := a.newExpander(a.logger).Expand(ctx, urls)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("playlist expansion incomplete: ")+err.Error())
		}
		if len(expanded) > 0 {
			urls = expanded
		}
	}

	ffmpegPath := ""
	if loc, err := a.locateFFmpeg(opts.FFmpegPath); err != nil {
		a.logger.Warn("ffmpeg not located, leaving lookup to yt-dlp", zap.Error(err))
	} else {
		ffmpegPath = loc.Path
		a.logger.Debug("using ffmpeg", zap.String("path", loc.Path), zap.String("source", string(loc.Source)))
	}

	svc := download.NewService(
		a.newExtractor(a.logger),
		idstore.New(opts.IDStorePath),
		download.Options{
			FFmpegPath:  ffmpegPath,
			Collision:   policy,
			EventBuffer: opts.EventBuffer,
		},
		a.logger,
	)

	out := cmd.OutOrStdout()
	rep := newReporter(out, f.quiet)
	summary, err := svc.Run(ctx, model.NewQueue(urls, opts.DownloadDir), rep.Handle)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderSummary(summary))

	switch {
	case summary.Cancelled:
		return fmt.Errorf("cancelled after %d of %d item(s)", summary.Processed(), summary.Total)
	case summary.Failed > 0:
		return fmt.Errorf("%d of %d download(s) failed", summary.Failed, summary.Total)
	}
	return nil
}

// collectURLs merges positional arguments and the optional URL file
func collectURLs(args []string, file string) ([]string, error) {
	text := strings.Join(args, "\n")
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read URL file: %w", err)
		}
		text += "\n" + string(data)
	}

	urls := platform.ParseURLs(text)
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}
	return urls, nil
}
