package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-mp3/internal/sanitize"
)

func (a *App) sanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sanitize <title>",
		Short:   "Show the file name a video title would get",
		Example: `  yt-mp3 sanitize "Artist - Song (Official Video) | HD"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sanitize.Title(strings.Join(args, " ")))
			return nil
		},
	}
}
