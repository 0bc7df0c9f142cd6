package match

import (
	"math"
	"strings"

	"github.com/streambinder/lyricsync/entity"
)

const (
	trackWeight    = 0.6
	artistWeight   = 0.4
	invertedFactor = 0.95
	wordFactor     = 0.9
	singleArtist   = 0.8
)

// scoring is the shared, lowercased view of a (target, candidate) pair
type scoring struct {
	track, artist                  string
	candidateTrack, candidateArtist string
	candidateAlbum                  string
}

func newScoring(target Target, candidate entity.Candidate) scoring {
	return scoring{
		track:           strings.ToLower(strings.TrimSpace(target.Track)),
		artist:          strings.ToLower(strings.TrimSpace(target.Artist)),
		candidateTrack:  strings.ToLower(candidate.TrackName),
		candidateArtist: strings.ToLower(candidate.ArtistName),
		candidateAlbum:  strings.ToLower(candidate.AlbumName),
	}
}

// scenario scores a pair under a given hypothesis on how the
// target was built, reporting whether it applies at all
type scenario func(scoring) (float64, bool)

var scenarios = []scenario{
	standard,
	inverted,
	singleField,
	wordBased,
}

// artist and track properly separated
func standard(s scoring) (float64, bool) {
	if len(s.track) == 0 || len(s.artist) == 0 {
		return 0, false
	}
	score := Fuzzy(s.track, s.candidateTrack)*trackWeight + Fuzzy(s.artist, s.candidateArtist)*artistWeight
	// singles are often released as same-named albums
	if score < highSimilarity && Fuzzy(s.track, s.candidateAlbum) > highSimilarity {
		score += bonusSimilarity
	}
	return math.Min(score, fullSimilarity), true
}

// artist and track swapped upstream
func inverted(s scoring) (float64, bool) {
	if len(s.track) == 0 || len(s.artist) == 0 {
		return 0, false
	}
	score := (Fuzzy(s.track, s.candidateArtist)*trackWeight + Fuzzy(s.artist, s.candidateTrack)*artistWeight) * invertedFactor
	return math.Min(score, fullSimilarity), true
}

func containsAnyWord(haystack, needle string) bool {
	for _, word := range words(needle) {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	for _, word := range words(haystack) {
		if strings.Contains(needle, word) {
			return true
		}
	}
	return false
}

// whole search text in a single field, no artist
func singleField(s scoring) (float64, bool) {
	if len(s.artist) > 0 || len(s.track) == 0 {
		return 0, false
	}
	score := math.Max(Fuzzy(s.track, s.candidateTrack), Fuzzy(s.track, s.candidateArtist)*singleArtist)
	if containsAnyWord(s.candidateTrack, s.track) {
		score += bonusSimilarity
	}
	if containsAnyWord(s.candidateArtist, s.track) {
		score += bonusSimilarity
	}
	return math.Min(score, fullSimilarity), true
}

// significant words shared between the search text and the candidate
func wordBased(s scoring) (float64, bool) {
	combined := strings.TrimSpace(s.track + " " + s.artist)
	if len(combined) == 0 {
		return 0, false
	}
	var (
		searchWords     = words(combined)
		candidateTrack  = words(s.candidateTrack)
		candidateArtist = words(s.candidateArtist)
		total           = len(candidateTrack) + len(candidateArtist)
		matched         = 0
	)
	if len(searchWords) > total {
		total = len(searchWords)
	}
	if total == 0 {
		return 0, true
	}
	for _, word := range searchWords {
		if anySimilar(word, candidateTrack) || anySimilar(word, candidateArtist) {
			matched++
		}
	}
	return math.Min(float64(matched)/float64(total)*wordFactor, fullSimilarity), true
}

func anySimilar(word string, candidates []string) bool {
	for _, candidate := range candidates {
		if Fuzzy(word, candidate) > wordSimilarity {
			return true
		}
	}
	return false
}

// textScore is the best score among all the applicable scenarios
func textScore(target Target, candidate entity.Candidate) float64 {
	var (
		s    = newScoring(target, candidate)
		best = 0.0
	)
	for _, fn := range scenarios {
		if score, ok := fn(s); ok && score > best {
			best = score
		}
	}
	return math.Min(best, fullSimilarity)
}
