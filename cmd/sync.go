package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arunsworld/nursery"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/lyrics"
	"github.com/streambinder/lyricsync/store"
	"github.com/streambinder/lyricsync/util"
	utilcmd "github.com/streambinder/lyricsync/util/cmd"
)

const (
	routineTypeMatch int = iota
	routineTypeInstall
)

var routineQueues map[int](chan interface{})

func init() {
	cmdRoot.AddCommand(cmdSync())
}

func cmdSync() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sync FILE",
		Short:        "Synchronize lyrics for a list of video URLs, one per line",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				output  = util.ErrWrap(".")(cmd.Flags().GetString("output"))
				workers = util.ErrWrap(1)(cmd.Flags().GetInt("workers"))
			)

			urls, err := readURLs(args[0])
			if err != nil {
				return err
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

			if err := nursery.RunConcurrently(
				routineFetch(urls),
				routineMatch(repository, max(workers, 1)),
				routineInstall(output),
			); err != nil {
				return err
			}

			tui.Printf("synchronization complete")
			return nil
		},
		PreRun: func(*cobra.Command, []string) {
			routineQueues = map[int](chan interface{}){
				routineTypeMatch:   make(chan interface{}, 10000),
				routineTypeInstall: make(chan interface{}, 10),
			}
		},
	}
	cmd.Flags().StringP("output", "o", ".", "Directory to install lyrics files into")
	cmd.Flags().IntP("workers", "w", 4, "Number of videos matched concurrently")
	return cmd
}

// readURLs reads the video URLs listed in path,
// skipping blank lines and "#" comments
func readURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		urls    []string
		scanner = bufio.NewScanner(file)
	)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); len(line) > 0 && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

// fetcher resolves the metadata of every video
func routineFetch(urls []string) func(context.Context, chan error) {
	return func(ctx context.Context, ch chan error) {
		// remember to stop passing data to matchers
		defer close(routineQueues[routineTypeMatch])

		counter := 0
		for _, url := range urls {
			if err := ctx.Err(); err != nil {
				ch <- err
				return
			}

			tui.Lot("fetch").Print(url)
			track, err := utilcmd.YouTubeMetadata(ctx, url)
			if err != nil {
				tui.AnchorPrintf("metadata failure for %s: %s", url, err)
				continue
			}
			tui.Lot("fetch").Wipe()
			counter++
			routineQueues[routineTypeMatch] <- track
		}
		tui.Lot("fetch").Close(fmt.Sprintf("%d videos", counter))
	}
}

// matcher looks for the lyrics of the fetched videos,
// spreading them over the given number of workers
func routineMatch(repository store.Repository, workers int) func(context.Context, chan error) {
	return func(ctx context.Context, ch chan error) {
		// remember to stop passing data to installer
		defer close(routineQueues[routineTypeInstall])

		matchers := make([]nursery.ConcurrentJob, workers)
		for i := range matchers {
			matchers[i] = routineMatchWorker(ctx, repository, fmt.Sprintf("match %d", i+1))
		}
		if err := nursery.RunConcurrently(matchers...); err != nil {
			ch <- err
		}
		tui.Lot("match").Close()
	}
}

// every worker owns its status line, not to wipe the ones of its siblings
func routineMatchWorker(ctx context.Context, repository store.Repository, lot string) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		status := tui.Lot(lot)
		defer status.Wipe()

		for event := range routineQueues[routineTypeMatch] {
			track := event.(*entity.Track)
			manualID, delay, err := preferences(repository, track.URL)
			if err != nil {
				tui.AnchorPrintf("preferences failure for %s: %s", track.URL, err)
			}

			status.Printf("%s by %s", track.Title, track.Author)
			result, err := engine.Resolve(ctx, lyrics.Generation{}, track.Title, track.Author, track.Duration, manualID)
			status.Wipe()
			if err != nil {
				ch <- err
				return
			}
			if !result.Found {
				tui.Printf("no lyrics for %s", track.Title)
				continue
			}

			track.Lyrics = lyrics.Delay(result, delay)
			tui.Printf("lyrics for %s: %s by %s (id: %d)", track.Title, result.TrackName, result.ArtistName, result.ID)
			routineQueues[routineTypeInstall] <- track
		}
	}
}

// installer writes the lyrics files to their final destination
func routineInstall(output string) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		var (
			counter int
			failure error
		)
		// keep draining on failure, not to block matchers
		for event := range routineQueues[routineTypeInstall] {
			track := event.(*entity.Track)
			if failure != nil {
				continue
			}

			tui.Lot("install").Printf("%s by %s", track.Lyrics.TrackName, track.Lyrics.ArtistName)
			path, err := install(track, output)
			if err != nil {
				tui.AnchorPrintf("installation failed for %s: %s", track.Title, err)
				failure = err
				continue
			}
			tui.Lot("install").Wipe()
			tui.Printf("installed %s", path)
			counter++
		}
		tui.Lot("install").Close(fmt.Sprintf("%d lyrics", counter))
		if failure != nil {
			ch <- failure
		}
	}
}
