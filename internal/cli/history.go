package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-mp3/internal/idstore"
)

func (a *App) historyCommand() *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the video IDs that were already downloaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := idstore.New(a.opts.IDStorePath)
			ids, err := store.All()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count {
				fmt.Fprintln(out, len(ids))
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of recorded IDs")
	return cmd
}
