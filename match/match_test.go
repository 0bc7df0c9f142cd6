package match

import (
	"testing"

	"github.com/streambinder/lyricsync/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
)

var hellfire = entity.Candidate{
	ID:           1,
	TrackName:    "Hellfire",
	ArtistName:   "Visions of Atlantis",
	AlbumName:    "Pirates II - Armada",
	Duration:     245,
	PlainLyrics:  "line",
	SyncedLyrics: "[00:01.00]line",
}

func TestFuzzy(t *testing.T) {
	assert.Equal(t, 1.0, Fuzzy("Hellfire", "hellfire"))
	assert.Equal(t, 1.0, Fuzzy("AC DC", "acdc"))
	assert.Equal(t, 0.0, Fuzzy("abc", "xyz"))
	assert.Equal(t, 0.0, Fuzzy("abc", ""))
	assert.Greater(t, Fuzzy("Hellfire", "Helfire"), 0.9)
	assert.LessOrEqual(t, Fuzzy("Hellfire", "Hellfire (Live)"), 1.0)
}

func TestDurationScore(t *testing.T) {
	assert.Equal(t, 1.0, DurationScore(0, 200))
	assert.Equal(t, 1.0, DurationScore(-1, 200))
	assert.Equal(t, 1.15, DurationScore(184, 185))
	assert.Equal(t, 1.15, DurationScore(200, 196))
	assert.Equal(t, 1.1, DurationScore(200, 170))
	assert.Equal(t, 1.1, DurationScore(230, 170))
	assert.Equal(t, 1.0, DurationScore(300, 170))
	assert.InDelta(t, 0.5, DurationScore(540, 180), 1e-9)
	assert.InDelta(t, 0.2, DurationScore(170, 200), 1e-9)
	assert.Less(t, DurationScore(170, 200), DurationScore(230, 200))
}

func TestTrueDuration(t *testing.T) {
	assert.Equal(t, 245.0, TrueDuration(hellfire))
	assert.Equal(t, 120.5, TrueDuration(entity.Candidate{Duration: 100, SyncedLyrics: "[00:01.00]a\n[02:00.50]b"}))
	assert.Equal(t, 115.0, TrueDuration(entity.Candidate{Duration: 115, SyncedLyrics: "[00:01.00]a\n[02:00.50]b"}))
	assert.Equal(t, 100.0, TrueDuration(entity.Candidate{Duration: 100, SyncedLyrics: "[00:01.00]a\n[Outro]"}))
	assert.Equal(t, 100.0, TrueDuration(entity.Candidate{Duration: 100, PlainLyrics: "a"}))
}

func TestScoreNearExactDuration(t *testing.T) {
	score := New(DefaultConfig()).Score(
		Target{Track: "Hellfire", Artist: "Visions of Atlantis", Duration: 184},
		entity.Candidate{TrackName: "Hellfire", ArtistName: "Visions of Atlantis", Duration: 185, PlainLyrics: "line"})
	assert.Equal(t, 1.15, score.Duration)
	assert.Equal(t, 1.0, score.Text)
	assert.InDelta(t, 1.15, score.Effective, 1e-9)
	assert.Equal(t, 0, score.Distance)
}

func TestTextScoreInverted(t *testing.T) {
	swapped := entity.Candidate{TrackName: "Visions of Atlantis", ArtistName: "Hellfire"}
	assert.InDelta(t, 0.95, textScore(Target{Track: "Hellfire", Artist: "Visions of Atlantis"}, swapped), 1e-9)
}

func TestTextScoreAlbumBonus(t *testing.T) {
	var (
		target    = Target{Track: "Hello", Artist: "Someone"}
		candidate = entity.Candidate{TrackName: "Hello", ArtistName: "Adele"}
		single    = candidate
	)
	single.AlbumName = "Hello"
	assert.InDelta(t, 0.1, textScore(target, single)-textScore(target, candidate), 1e-6)
}

func TestTextScoreSingleField(t *testing.T) {
	assert.Equal(t, 1.0, textScore(Target{Track: "Hellfire"}, hellfire))
	assert.GreaterOrEqual(t, textScore(Target{Track: "Visions of Atlantis Hellfire"}, hellfire), 0.9)
	assert.Equal(t, 0.0, textScore(Target{}, hellfire))
}

func TestTextScoreWordBased(t *testing.T) {
	s := newScoring(Target{Track: "Hellfire Pirates", Artist: "Visions"}, hellfire)
	score, ok := wordBased(s)
	require.True(t, ok)
	// hellfire and visions out of max(3 searched, 3 candidate) words
	assert.InDelta(t, 2.0/3.0*0.9, score, 1e-9)

	_, ok = wordBased(newScoring(Target{}, hellfire))
	assert.False(t, ok)
}

func TestThreshold(t *testing.T) {
	scorer := New(DefaultConfig())
	assert.Equal(t, 0.8, scorer.Threshold(Target{Track: "a", Artist: "b"}))
	assert.Equal(t, 0.4, scorer.Threshold(Target{Track: "a", Artist: "  "}))
}

func TestBest(t *testing.T) {
	scorer := New(DefaultConfig())
	best, ok := scorer.Best(Target{Track: "Hellfire", Artist: "Visions of Atlantis", Duration: 245}, []entity.Candidate{
		{ID: 2, TrackName: "Something Else", ArtistName: "Nobody", Duration: 245, PlainLyrics: "x"},
		hellfire,
	})
	require.True(t, ok)
	assert.Equal(t, 1, best.Candidate.ID)

	_, ok = scorer.Best(Target{Track: "Hellfire", Artist: "Visions of Atlantis"}, nil)
	assert.False(t, ok)
}

func TestBestSkipsUnusable(t *testing.T) {
	var (
		scorer       = New(DefaultConfig())
		instrumental = hellfire
		empty        = hellfire
	)
	instrumental.Instrumental = true
	empty.PlainLyrics, empty.SyncedLyrics = "", ""

	_, ok := scorer.Best(Target{Track: "Hellfire", Artist: "Visions of Atlantis"}, []entity.Candidate{instrumental, empty})
	assert.False(t, ok)
}

func TestBestPrefersSynced(t *testing.T) {
	var (
		target   = Target{Track: "Hellfire", Artist: "Visions of Atlantis", Duration: 245}
		unsynced = entity.Candidate{ID: 1, TrackName: "Hellfire", ArtistName: "Visions of Atlantis", Duration: 245, PlainLyrics: "line"}
		synced   = entity.Candidate{ID: 2, TrackName: "Hellfire", ArtistName: "Visions of Atlantis", Duration: 215, SyncedLyrics: "[00:01.00]line"}
		scorer   = New(DefaultConfig())
	)
	require.Greater(t, scorer.Score(target, unsynced).Effective, scorer.Score(target, synced).Effective)

	best, ok := scorer.Best(target, []entity.Candidate{unsynced, synced})
	require.True(t, ok)
	assert.Equal(t, 2, best.Candidate.ID)

	config := DefaultConfig()
	config.PreferSynced = false
	best, ok = New(config).Best(target, []entity.Candidate{unsynced, synced})
	require.True(t, ok)
	assert.Equal(t, 1, best.Candidate.ID)
}

func TestBestSkipsUnreadableSynced(t *testing.T) {
	var (
		target     = Target{Track: "Hellfire", Artist: "Visions of Atlantis", Duration: 245}
		plain      = entity.Candidate{ID: 1, TrackName: "Hellfire", ArtistName: "Visions of Atlantis", Duration: 245, PlainLyrics: "line"}
		unreadable = entity.Candidate{ID: 2, TrackName: "Hellfire", ArtistName: "Visions of Atlantis", Duration: 245, SyncedLyrics: "[1:02.5]line"}
	)
	best, ok := New(DefaultConfig()).Best(target, []entity.Candidate{unreadable, plain})
	require.True(t, ok)
	assert.Equal(t, 1, best.Candidate.ID)
}

func TestRankTieBreak(t *testing.T) {
	ranked := New(DefaultConfig()).Rank(Target{Track: "Song", Artist: "Band"}, []entity.Candidate{
		{ID: 1, TrackName: "song", ArtistName: "BAND ", PlainLyrics: "x"},
		{ID: 2, TrackName: "Song", ArtistName: "Band", PlainLyrics: "x"},
		{ID: 3, TrackName: "Other", ArtistName: "Nobody", PlainLyrics: "x"},
	})
	require.Len(t, ranked, 3)
	assert.Equal(t, ranked[0].Effective, ranked[1].Effective)
	assert.Equal(t, 2, ranked[0].Candidate.ID)
	assert.Equal(t, 1, ranked[1].Candidate.ID)
	assert.Equal(t, 3, ranked[2].Candidate.ID)
}

func TestThresholdMonotonicity(t *testing.T) {
	candidates := []entity.Candidate{hellfire}
	for i := 0; i < 50; i++ {
		candidates = append(candidates, entity.Candidate{
			ID:          i + 10,
			TrackName:   randstr.String(4 + i%8),
			ArtistName:  randstr.String(3 + i%5),
			Duration:    float64(120 + i*3),
			PlainLyrics: "line",
		})
	}
	for _, target := range []Target{
		{Track: "Hellfire", Artist: "Visions of Atlantis", Duration: 245},
		{Track: "Hellfire", Duration: 200},
		{Track: candidates[7].TrackName, Artist: candidates[7].ArtistName},
	} {
		previous := len(candidates) + 1
		for _, threshold := range []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9, 1, 1.1, 1.2} {
			qualifying := New(Config{Threshold: threshold, ThresholdNoArtist: threshold}).Qualifying(target, candidates)
			assert.LessOrEqual(t, len(qualifying), previous)
			previous = len(qualifying)
		}
	}
}
