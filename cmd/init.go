package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bogem/id3v2/v2"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/entity/id3"
	"github.com/streambinder/lyricsync/lyrics"
	"github.com/streambinder/lyricsync/util"
)

func init() {
	cmdRoot.AddCommand(cmdInit())
}

func cmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Embed lyrics into the mp3 files of a local library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				dir     = util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("library"))
				force   = util.ErrWrap(false)(cmd.Flags().GetBool("force"))
				counter int
			)
			if err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
					return nil
				}

				tui.Lot("init").Print(path)
				embedded, err := processFile(cmd.Context(), path, force)
				tui.Lot("init").Wipe()
				if err != nil {
					tui.AnchorPrintf("error processing file %s: %s", path, err)
				} else if embedded {
					counter++
				}
				return nil
			}); err != nil {
				return err
			}
			tui.Lot("init").Close(fmt.Sprintf("%d tracks", counter))
			return nil
		},
	}
	cmd.Flags().StringP("library", "l", xdg.UserDirs.Music, "Path to music library")
	cmd.Flags().BoolP("force", "f", false, "Replace lyrics already embedded")
	return cmd
}

// processFile looks for the lyrics of the track at path,
// embedding them if found: tells whether it did
func processFile(ctx context.Context, path string, force bool) (bool, error) {
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false, fmt.Errorf("failed to open mp3 file: %w", err)
	}
	defer tag.Close()

	if tag.HasLyrics() && !force {
		return false, nil
	}

	var result entity.Result
	if track, artist := tag.Title(), tag.Artist(); len(track) > 0 && len(artist) > 0 {
		// variant suffixes such as " - Remastered" only add noise to the search
		song := (&entity.Track{Title: track}).Song()
		result = engine.Search(ctx, song, artist, tag.Duration())
	} else {
		// untagged files are usually named after the video they come from
		if result, err = engine.SearchWithStrategies(ctx, lyrics.Generation{},
			util.FileBaseStem(path), artist, tag.Duration()); err != nil {
			return false, err
		}
	}
	if !result.Found {
		tui.Printf("no lyrics for %s", path)
		return false, nil
	}

	text := result.PlainLyrics
	if result.Synced {
		text = lyrics.FormatLRC(result)
	}
	tag.SetLyrics(text)
	if err := tag.Save(); err != nil {
		return false, fmt.Errorf("failed to save mp3 file: %w", err)
	}
	tui.Printf("lyrics for %s: %s by %s (id: %d)", path, result.TrackName, result.ArtistName, result.ID)
	return true, nil
}
