package cmd

import (
	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/title"
)

func init() {
	cmdRoot.AddCommand(cmdParse())
}

func cmdParse() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TITLE",
		Short: "Guess artist and track from a video title",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			result := title.Parse(args[0])
			tui.Printf("artist: %s", result.Artist)
			tui.Printf("track: %s", result.Track)
			tui.Printf("lyric video: %t", title.IsLyricVideoTitle(args[0]))
			return nil
		},
	}
}
