package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/util"
)

func init() {
	cmdRoot.AddCommand(cmdSelect())
}

func cmdSelect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select URL [ID]",
		Short: "Pin lyrics and timing offset for a video",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				url      = args[0]
				query    = util.ErrWrap("")(cmd.Flags().GetString("query"))
				duration = util.ErrWrap(0)(cmd.Flags().GetInt("duration"))
				id       int
			)
			switch {
			case len(args) > 1 && len(query) > 0:
				return errors.New("either a lyrics id or a query is allowed")
			case len(args) > 1:
				if id, err = parseID(args[1]); err != nil {
					return err
				}
			case len(query) > 0:
				if id, err = pick(cmd.Context(), query, duration); err != nil {
					return err
				}
			}

			repository, err := openRepository()
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := repository.Close(); err == nil {
					err = closeErr
				}
			}()

			if id > 0 {
				if err := repository.SetLyricID(url, id); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("delay") {
				if err := repository.SetDelay(url, util.ErrWrap(0)(cmd.Flags().GetInt("delay"))); err != nil {
					return err
				}
			}

			id, delay, err := preferences(repository, url)
			if err != nil {
				return err
			}
			tui.Printf("%s: lyrics %d, delay %dms", url, id, delay)
			return nil
		},
	}
	cmd.Flags().Int("delay", 0, "Lyrics timing offset in milliseconds")
	cmd.Flags().StringP("query", "q", "", "Search lyrics to pick from interactively")
	cmd.Flags().IntP("duration", "d", 0, "Video duration in seconds, as search hint")
	return cmd
}

// pick lists the lyrics found for query and lets the user choose,
// returning 0 if the choice is skipped
func pick(ctx context.Context, query string, duration int) (int, error) {
	candidates := engine.Candidates(ctx, query, duration)
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no lyrics found for %q", query)
	}
	printCandidates(candidates)

	choice := tui.Reads(fmt.Sprintf("select lyrics [1-%d], empty to skip:", len(candidates)))
	if len(choice) == 0 {
		return 0, nil
	}
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(candidates) {
		return 0, fmt.Errorf("invalid choice: %s", choice)
	}
	return candidates[index-1].ID, nil
}
