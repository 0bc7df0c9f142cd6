package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/util"
)

func init() {
	cmdRoot.AddCommand(cmdSearch())
}

func cmdSearch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search lyrics by track and artist names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				track      = util.ErrWrap("")(cmd.Flags().GetString("track"))
				artist     = util.ErrWrap("")(cmd.Flags().GetString("artist"))
				duration   = util.ErrWrap(0)(cmd.Flags().GetInt("duration"))
				candidates = util.ErrWrap(false)(cmd.Flags().GetBool("candidates"))
			)
			if len(strings.TrimSpace(track)) == 0 {
				return errors.New("track name is required")
			}
			printResult(engine.Search(cmd.Context(), track, artist, duration), candidates)
			return nil
		},
	}
	cmd.Flags().StringP("track", "t", "", "Track name")
	cmd.Flags().StringP("artist", "a", "", "Artist name")
	cmd.Flags().IntP("duration", "d", 0, "Track duration in seconds (0 if unknown)")
	cmd.Flags().Bool("candidates", false, "List every candidate returned by the search")
	return cmd
}
