package lyrics

import (
	"context"
	"errors"

	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/lrclib"
	"github.com/streambinder/lyricsync/match"
)

var ErrSuperseded = errors.New("lyrics search superseded by a newer one")

// Searcher is the lyrics index the engine queries
type Searcher interface {
	Search(ctx context.Context, query string, duration int) ([]entity.Candidate, error)
	Get(ctx context.Context, id int) (*entity.Candidate, error)
}

type Logger interface {
	Printf(format string, args ...interface{})
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Engine finds, ranks and parses lyrics for noisy track metadata
type Engine struct {
	searcher Searcher
	scorer   *match.Scorer
	logger   Logger
}

type Option func(*Engine)

func WithScorer(scorer *match.Scorer) Option {
	return func(engine *Engine) {
		engine.scorer = scorer
	}
}

func WithLogger(logger Logger) Option {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

func New(searcher Searcher, opts ...Option) *Engine {
	engine := &Engine{
		searcher: searcher,
		scorer:   match.New(match.DefaultConfig()),
		logger:   discard{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Search runs a single search for the given track and artist, with duration
// in seconds (0 if unknown): any failure results in a not found result
func (engine *Engine) Search(ctx context.Context, track, artist string, duration int) entity.Result {
	query := lrclib.Sanitize(track, artist)
	candidates, err := engine.searcher.Search(ctx, query.String(), duration)
	if err != nil {
		engine.logger.Printf("search for %q failed: %s", query.String(), err)
		return entity.NotFound()
	}
	if len(candidates) == 0 {
		return entity.NotFound()
	}

	target := match.Target{Track: query.Track, Artist: query.Artist, Duration: float64(duration)}
	best, ok := engine.scorer.Best(target, candidates)
	if !ok {
		engine.logger.Printf("no match for %q among %d candidates (threshold %.2f)",
			query.String(), len(candidates), engine.scorer.Threshold(target))
		result := entity.NotFound()
		result.Candidates = candidates
		return result
	}

	engine.logger.Printf("matched %s by %s (id: %d, score: %.3f, text: %.3f, duration: %.3f)",
		best.Candidate.TrackName, best.Candidate.ArtistName, best.Candidate.ID,
		best.Effective, best.Text, best.Duration)
	result := Parse(best.Candidate)
	result.Candidates = candidates
	return result
}

// Candidates returns the raw search results for a free text query,
// to let users pick lyrics by hand
func (engine *Engine) Candidates(ctx context.Context, query string, duration int) []entity.Candidate {
	sanitized := lrclib.Sanitize(query, "")
	candidates, err := engine.searcher.Search(ctx, sanitized.String(), duration)
	if err != nil {
		engine.logger.Printf("candidates search for %q failed: %s", sanitized.String(), err)
		return nil
	}
	return candidates
}

// FetchByID bypasses search and scoring, parsing the record with the given id
func (engine *Engine) FetchByID(ctx context.Context, id int) entity.Result {
	candidate, err := engine.searcher.Get(ctx, id)
	if err != nil {
		engine.logger.Printf("fetch of lyrics %d failed: %s", id, err)
		return entity.NotFound()
	}
	return Parse(*candidate)
}

// Resolve prefers a lyrics record picked by hand, if any,
// falling back to the automatic search strategies
func (engine *Engine) Resolve(ctx context.Context, generation Generation, title, author string, duration, manualID int) (entity.Result, error) {
	if manualID > 0 {
		result := engine.FetchByID(ctx, manualID)
		if !generation.Current() {
			return entity.NotFound(), ErrSuperseded
		}
		if err := ctx.Err(); err != nil {
			return entity.NotFound(), err
		}
		if result.Found {
			return result, nil
		}
		engine.logger.Printf("lyrics %d unavailable, falling back to search", manualID)
	}
	return engine.SearchWithStrategies(ctx, generation, title, author, duration)
}
