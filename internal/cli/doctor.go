package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-mp3/internal/idstore"
)

// ErrChecksFailed is returned by doctor when any check fails
var ErrChecksFailed = errors.New("environment checks failed")

type check struct {
	name   string
	detail string
	err    error
}

func (a *App) doctorCommand() *cobra.Command {
	var install bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that yt-dlp, ffmpeg and the output locations are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var checks []check

			if bin, err := a.ensureYTDLP(ctx, install); err != nil {
				checks = append(checks, check{name: "yt-dlp", err: err})
			} else {
				checks = append(checks, check{name: "yt-dlp", detail: bin.Path + " " + bin.Version})
			}

			loc, err := a.locateFFmpeg(a.opts.FFmpegPath)
			if err != nil {
				checks = append(checks, check{name: "ffmpeg", err: err})
			} else if version, err := a.probeFFmpeg(ctx, loc.Path); err != nil {
				checks = append(checks, check{name: "ffmpeg", err: err})
			} else {
				checks = append(checks, check{name: "ffmpeg", detail: fmt.Sprintf("%s (%s) %s", loc.Path, loc.Source, version)})
			}

			checks = append(checks, checkDir("download dir", a.opts.DownloadDir))
			checks = append(checks, checkStore(a.opts.IDStorePath))

			if failed := printChecks(cmd.OutOrStdout(), checks); failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(checks))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "download yt-dlp when it is missing")
	return cmd
}

func checkDir(name, dir string) check {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return check{name: name, detail: dir + " (will be created)"}
	case err != nil:
		return check{name: name, err: err}
	case !info.IsDir():
		return check{name: name, err: fmt.Errorf("%s is not a directory", dir)}
	}
	return check{name: name, detail: dir}
}

func checkStore(path string) check {
	store := idstore.New(path)
	ids, err := store.All()
	if err != nil {
		return check{name: "id store", err: err}
	}
	return check{name: "id store", detail: fmt.Sprintf("%s (%d IDs)", store.Path(), len(ids))}
}

func printChecks(out io.Writer, checks []check) int {
	failed := 0
	for _, c := range checks {
		if c.err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render(markFailed), c.name, c.err)
			continue
		}
		fmt.Fprintf(out, "%s %s: %s\n", okStyle.Render(markDone), c.name, mutedStyle.Render(c.detail))
	}
	return failed
}
