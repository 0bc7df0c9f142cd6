package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/streambinder/lyricsync/entity"
)

// Config holds the empirically tuned matching knobs
type Config struct {
	Threshold         float64 `yaml:"threshold"`           // minimum effective score when the artist is known
	ThresholdNoArtist float64 `yaml:"threshold_no_artist"` // minimum effective score otherwise
	PreferSynced      bool    `yaml:"prefer_synced"`
}

func DefaultConfig() Config {
	return Config{
		Threshold:         0.8,
		ThresholdNoArtist: 0.4,
		PreferSynced:      true,
	}
}

// Target describes what is being looked for
type Target struct {
	Track    string
	Artist   string
	Duration float64 // in seconds, 0 if unknown
}

func (target Target) hasArtist() bool {
	return len(strings.TrimSpace(target.Artist)) > 0
}

func (target Target) String() string {
	return strings.ToLower(strings.TrimSpace(target.Artist + " " + target.Track))
}

// Score is the evaluation of a single candidate against a target
type Score struct {
	Candidate entity.Candidate
	Text      float64
	Duration  float64
	Effective float64 // Text * Duration
	Distance  int     // edit distance between the target and the candidate names
}

// better ranks by effective score, then by closeness of names
func (score Score) better(other Score) bool {
	if score.Effective != other.Effective {
		return score.Effective > other.Effective
	}
	return score.Distance < other.Distance
}

type Scorer struct {
	config Config
}

func New(config Config) *Scorer {
	return &Scorer{config}
}

// Threshold returns the minimum effective score for the target to be matched:
// looser when less signal (no artist) is available
func (scorer *Scorer) Threshold(target Target) float64 {
	if target.hasArtist() {
		return scorer.config.Threshold
	}
	return scorer.config.ThresholdNoArtist
}

func (scorer *Scorer) Score(target Target, candidate entity.Candidate) Score {
	var (
		text     = textScore(target, candidate)
		duration = DurationScore(target.Duration, TrueDuration(candidate))
		name     = strings.ToLower(strings.TrimSpace(candidate.ArtistName + " " + candidate.TrackName))
	)
	return Score{
		Candidate: candidate,
		Text:      text,
		Duration:  duration,
		Effective: text * duration,
		Distance:  levenshtein.ComputeDistance(target.String(), name),
	}
}

// Rank scores all the candidates, best first
func (scorer *Scorer) Rank(target Target, candidates []entity.Candidate) []Score {
	scores := make([]Score, 0, len(candidates))
	for _, candidate := range candidates {
		scores = append(scores, scorer.Score(target, candidate))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].better(scores[j])
	})
	return scores
}

// Qualifying returns the usable candidates whose effective score
// reaches the target threshold, best first
func (scorer *Scorer) Qualifying(target Target, candidates []entity.Candidate) []Score {
	var (
		threshold  = scorer.Threshold(target)
		qualifying []Score
	)
	for _, score := range scorer.Rank(target, candidates) {
		if score.Candidate.Usable() && score.Effective >= threshold {
			qualifying = append(qualifying, score)
		}
	}
	return qualifying
}

// Best picks the winning candidate among the qualifying ones:
// a synced one, if any, is preferred even if scoring lower
func (scorer *Scorer) Best(target Target, candidates []entity.Candidate) (Score, bool) {
	qualifying := scorer.Qualifying(target, candidates)
	if len(qualifying) == 0 {
		return Score{}, false
	}
	if scorer.config.PreferSynced {
		for _, score := range qualifying {
			if score.Candidate.Synced() {
				return score, true
			}
		}
	}
	return qualifying[0], true
}
