package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/lyrics"
	"github.com/streambinder/lyricsync/util"
	utilcmd "github.com/streambinder/lyricsync/util/cmd"
)

func init() {
	cmdRoot.AddCommand(cmdMatch())
}

func cmdMatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [TITLE]",
		Short: "Find lyrics for a video, given its raw title or its URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				url        = util.ErrWrap("")(cmd.Flags().GetString("url"))
				output     = util.ErrWrap("")(cmd.Flags().GetString("output"))
				candidates = util.ErrWrap(false)(cmd.Flags().GetBool("candidates"))
			)

			track, err := matchTrack(cmd, url, args)
			if err != nil {
				return err
			}

			var manualID, delay int
			if len(url) > 0 {
				repository, err := openRepository()
				if err != nil {
					return err
				}
				manualID, delay, err = preferences(repository, url)
				util.ErrSuppress(repository.Close())
				if err != nil {
					return err
				}
			}

			tui.Lot("match").Printf("%s by %s", track.Title, track.Author)
			result, err := engine.Resolve(cmd.Context(), generations.Next(), track.Title, track.Author, track.Duration, manualID)
			tui.Lot("match").Wipe()
			if err != nil {
				return err
			}
			track.Lyrics = lyrics.Delay(result, delay)
			printResult(track.Lyrics, candidates)

			if len(output) > 0 && track.Lyrics.Found {
				path, err := install(track, output)
				if err != nil {
					return err
				}
				tui.Printf("lyrics installed to %s", path)
			}
			return nil
		},
	}
	cmd.Flags().String("author", "", "Video author (channel or uploader name)")
	cmd.Flags().Int("duration", 0, "Video duration in seconds (0 if unknown)")
	cmd.Flags().StringP("url", "u", "", "Video URL to read metadata from")
	cmd.Flags().StringP("output", "o", "", "Directory to install the lyrics file into")
	cmd.Flags().Bool("candidates", false, "List every candidate seen along the way")
	return cmd
}

// matchTrack describes the video to match, either by its URL or by the given title,
// letting flags override the upstream metadata
func matchTrack(cmd *cobra.Command, url string, args []string) (*entity.Track, error) {
	var track *entity.Track
	switch {
	case len(url) > 0:
		tui.Lot("fetch").Print(url)
		metadata, err := utilcmd.YouTubeMetadata(cmd.Context(), url)
		tui.Lot("fetch").Wipe()
		if err != nil {
			return nil, err
		}
		track = metadata
	case len(args) > 0:
		track = &entity.Track{Title: args[0]}
	default:
		return nil, errors.New("either a title or an url is required")
	}

	if len(args) > 0 {
		track.Title = args[0]
	}
	if cmd.Flags().Changed("author") {
		track.Author = util.ErrWrap(track.Author)(cmd.Flags().GetString("author"))
	}
	if cmd.Flags().Changed("duration") {
		track.Duration = util.ErrWrap(track.Duration)(cmd.Flags().GetInt("duration"))
	}
	return track, nil
}

// install writes the track lyrics as LRC file inside dir
func install(track *entity.Track, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, track.Path().Lyrics())
	return path, os.WriteFile(path, []byte(lyrics.FormatLRC(track.Lyrics)), 0o644)
}
