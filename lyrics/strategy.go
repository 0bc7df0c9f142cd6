package lyrics

import (
	"context"

	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/title"
)

// run holds the inputs of a single strategies run,
// along with the title parsed once for all of them
type run struct {
	title  string
	author string
	parsed entity.TitleParseResult
}

func (r run) artist() string {
	if len(r.parsed.Artist) > 0 {
		return r.parsed.Artist
	}
	return r.author
}

type strategy struct {
	name  string
	query func(run) (track, artist string)
}

var strategies = []strategy{
	// cheapest, catches "Track (Official Video)" titles with no artist
	{"cleaned title", func(r run) (string, string) {
		return title.RemoveJunkSuffixes(r.title), ""
	}},
	{"parsed title", func(r run) (string, string) {
		return r.parsed.Track, r.artist()
	}},
	// upstream metadata may label artist and track backwards
	{"inverted parameters", func(r run) (string, string) {
		return r.artist(), r.parsed.Track
	}},
}

// SearchWithStrategies looks for lyrics of a video given its raw title, author
// and duration (in seconds), trying each strategy in order until one matches.
// Candidates seen along the way are all collected in the result.
// ErrSuperseded is returned if the generation is not current anymore
// once a search completes: in such case the result must be discarded.
func (engine *Engine) SearchWithStrategies(ctx context.Context, generation Generation, rawTitle, author string, duration int) (entity.Result, error) {
	var (
		r         = run{title: rawTitle, author: author, parsed: title.Parse(rawTitle)}
		collected []entity.Candidate
		seen      = make(map[int]bool)
	)
	for _, strategy := range strategies {
		if err := ctx.Err(); err != nil {
			return entity.NotFound(), err
		}

		track, artist := strategy.query(r)
		engine.logger.Printf("searching by %s: %q by %q", strategy.name, track, artist)
		result := engine.Search(ctx, track, artist, duration)
		if !generation.Current() {
			return entity.NotFound(), ErrSuperseded
		}
		if err := ctx.Err(); err != nil {
			return entity.NotFound(), err
		}

		for _, candidate := range result.Candidates {
			if !seen[candidate.ID] {
				seen[candidate.ID] = true
				collected = append(collected, candidate)
			}
		}
		if result.Found {
			result.Candidates = collected
			return result, nil
		}
	}

	result := entity.NotFound()
	result.Candidates = collected
	return result, nil
}
