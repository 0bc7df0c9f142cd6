package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streambinder/lyricsync/config"
	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/lrclib"
	"github.com/streambinder/lyricsync/lyrics"
	"github.com/streambinder/lyricsync/match"
	"github.com/streambinder/lyricsync/store"
	"github.com/streambinder/lyricsync/util"
	"github.com/streambinder/lyricsync/util/anchor"
)

var (
	cmdRoot = &cobra.Command{
		Use:               "lyricsync",
		Short:             "Find and synchronize lyrics for noisy video metadata",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	tui         = anchor.New(anchor.Red)
	conf        config.Config
	engine      *lyrics.Engine
	generations lyrics.Generations
)

func init() {
	flags := cmdRoot.PersistentFlags()
	flags.StringP("config", "c", config.Path(), "Configuration file path")
	flags.String("search-url", lrclib.DefaultSearchURL, "Lyrics search endpoint")
	flags.String("get-url", lrclib.DefaultGetURL, "Lyrics fetch endpoint")
	flags.Duration("timeout", lrclib.DefaultTimeout, "Lyrics requests timeout")
	flags.Float64("threshold", match.DefaultConfig().Threshold, "Minimum match score when the artist is known")
	flags.Float64("threshold-no-artist", match.DefaultConfig().ThresholdNoArtist, "Minimum match score when the artist is unknown")
	flags.Bool("prefer-synced", match.DefaultConfig().PreferSynced, "Prefer synced lyrics over better scoring plain ones")
	flags.String("store", "", "Preferences database path")
	flags.Bool("demo", false, "Keep preferences in memory only")
	flags.BoolP("verbose", "v", false, "Log every search step")
}

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup loads the configuration, lets flags override it
// and builds the lyrics engine accordingly
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(util.ErrWrap(config.Path())(cmd.Flags().GetString("config")))
	if err != nil {
		return err
	}
	override(cmd.Flags(), &loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	conf = loaded

	options := []lyrics.Option{lyrics.WithScorer(match.New(conf.Config))}
	if util.ErrWrap(false)(cmd.Flags().GetBool("verbose")) {
		options = append(options, lyrics.WithLogger(tui))
	}
	engine = lyrics.New(lrclib.New(
		lrclib.WithSearchURL(conf.SearchURL),
		lrclib.WithGetURL(conf.GetURL),
		lrclib.WithUserAgent(conf.UserAgent),
		lrclib.WithTimeout(conf.Timeout),
	), options...)
	return nil
}

func override(flags *pflag.FlagSet, config *config.Config) {
	if flags.Changed("search-url") {
		config.SearchURL = util.ErrWrap(config.SearchURL)(flags.GetString("search-url"))
	}
	if flags.Changed("get-url") {
		config.GetURL = util.ErrWrap(config.GetURL)(flags.GetString("get-url"))
	}
	if flags.Changed("timeout") {
		config.Timeout = util.ErrWrap(config.Timeout)(flags.GetDuration("timeout"))
	}
	if flags.Changed("threshold") {
		config.Threshold = util.ErrWrap(config.Threshold)(flags.GetFloat64("threshold"))
	}
	if flags.Changed("threshold-no-artist") {
		config.ThresholdNoArtist = util.ErrWrap(config.ThresholdNoArtist)(flags.GetFloat64("threshold-no-artist"))
	}
	if flags.Changed("prefer-synced") {
		config.PreferSynced = util.ErrWrap(config.PreferSynced)(flags.GetBool("prefer-synced"))
	}
	if flags.Changed("store") {
		config.Store = util.ErrWrap(config.Store)(flags.GetString("store"))
	}
	if flags.Changed("demo") {
		config.Demo = util.ErrWrap(config.Demo)(flags.GetBool("demo"))
	}
}

// openRepository opens the preferences store: commands needing it
// are responsible for closing it
func openRepository() (store.Repository, error) {
	if conf.Demo {
		return store.NewMemory(), nil
	}
	return store.OpenSQLite(conf.Store)
}

// preferences returns the manual lyrics id and the delay stored for url,
// zeroed if unset
func preferences(repository store.Repository, url string) (id, delay int, err error) {
	if id, err = repository.LyricID(url); err != nil && !errors.Is(err, store.ErrNotFound) {
		return
	}
	if delay, err = repository.Delay(url); err != nil && !errors.Is(err, store.ErrNotFound) {
		return
	}
	return id, delay, nil
}

func printResult(result entity.Result, candidates bool) {
	if !result.Found {
		tui.AnchorPrintf("no lyrics found")
	} else {
		kind := "plain"
		if result.Synced {
			kind = "synced"
		}
		tui.AnchorPrintf("%s by %s (id: %d, %s)", result.TrackName, result.ArtistName, result.ID, kind)
		tui.Print(strings.TrimSuffix(lyrics.FormatLRC(result), "\n"))
	}
	if candidates {
		printCandidates(result.Candidates)
	}
}

func printCandidates(candidates []entity.Candidate) {
	for index, candidate := range candidates {
		tui.Printf("%2d) %8d  %s by %s [%s] %.0fs synced:%t: %s", index+1,
			candidate.ID, candidate.TrackName, candidate.ArtistName, candidate.AlbumName,
			candidate.Duration, candidate.Synced(), util.Excerpt(candidate.PlainLyrics))
	}
}
