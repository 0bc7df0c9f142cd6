package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/streambinder/lyricsync/entity"
	"github.com/streambinder/lyricsync/lrclib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hellfire = entity.Candidate{
		ID:           1,
		TrackName:    "Hellfire",
		ArtistName:   "Visions of Atlantis",
		Duration:     245,
		PlainLyrics:  "first\nsecond",
		SyncedLyrics: "[00:01.00]first\n[00:02.50]second",
	}
	other = entity.Candidate{
		ID:          5,
		TrackName:   "Nothing Alike",
		ArtistName:  "Nobody",
		Duration:    600,
		PlainLyrics: "nothing",
	}
)

type searcher struct {
	responses map[string][]entity.Candidate
	records   map[int]entity.Candidate
	err       error
	queries   []string
	hook      func()
}

func (s *searcher) Search(_ context.Context, query string, _ int) ([]entity.Candidate, error) {
	s.queries = append(s.queries, query)
	if s.hook != nil {
		s.hook()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.responses[query], nil
}

func (s *searcher) Get(_ context.Context, id int) (*entity.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	if candidate, ok := s.records[id]; ok {
		return &candidate, nil
	}
	return nil, lrclib.ErrNotFound
}

func TestSearch(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{
		"Visions of Atlantis Hellfire": {other, hellfire},
	}}
	result := New(s).Search(context.Background(), "Hellfire!", "Visions of Atlantis", 245)

	assert.Equal(t, []string{"Visions of Atlantis Hellfire"}, s.queries)
	assert.True(t, result.Found)
	assert.True(t, result.Synced)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, "Hellfire", result.TrackName)
	assert.Equal(t, "Visions of Atlantis", result.ArtistName)
	assert.Equal(t, []entity.SyncedLine{{StartTimeMs: 1000, Text: "first"}, {StartTimeMs: 2500, Text: "second"}}, result.Lyrics)
	assert.Len(t, result.Candidates, 2)
}

func TestSearchNotFound(t *testing.T) {
	result := New(&searcher{}).Search(context.Background(), "Track", "Artist", 100)
	assert.Equal(t, entity.Result{Lyrics: []entity.SyncedLine{}, Found: false, Synced: false}, result)
}

func TestSearchUpstreamFailure(t *testing.T) {
	result := New(&searcher{err: &lrclib.StatusError{StatusCode: 500}}).Search(context.Background(), "Track", "Artist", 100)
	assert.Equal(t, entity.NotFound(), result)
}

func TestSearchNoMatch(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{"Artist Track": {other}}}
	result := New(s).Search(context.Background(), "Track", "Artist", 245)
	assert.False(t, result.Found)
	assert.Empty(t, result.Lyrics)
	assert.Equal(t, []entity.Candidate{other}, result.Candidates)
}

func TestSearchWithStrategiesCleanedTitle(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{
		"Hellfire Official Video": {hellfire},
	}}
	result, err := New(s).SearchWithStrategies(context.Background(), Generation{}, "Hellfire (Official Video)", "Napalm Records", 245)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, []string{"Hellfire Official Video"}, s.queries)
}

func TestSearchWithStrategiesParsedTitle(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{
		"Visions of Atlantis Hellfire Official Video": {other},
		"Visions of Atlantis Hellfire":                {other, hellfire},
	}}
	result, err := New(s).SearchWithStrategies(context.Background(), Generation{},
		"Visions of Atlantis - Hellfire (Official Video)", "Napalm Records", 245)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, []string{"Visions of Atlantis Hellfire Official Video", "Visions of Atlantis Hellfire"}, s.queries)
	assert.Equal(t, []entity.Candidate{other, hellfire}, result.Candidates)
}

func TestSearchWithStrategiesInverted(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{
		"Hellfire Visions of Atlantis": {hellfire},
	}}
	result, err := New(s).SearchWithStrategies(context.Background(), Generation{},
		"Visions of Atlantis - Hellfire (Official Video)", "", 245)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, []string{
		"Visions of Atlantis Hellfire Official Video",
		"Visions of Atlantis Hellfire",
		"Hellfire Visions of Atlantis",
	}, s.queries)
}

func TestSearchWithStrategiesAuthorFallback(t *testing.T) {
	s := &searcher{}
	result, err := New(s).SearchWithStrategies(context.Background(), Generation{}, "Hellfire", "Visions of Atlantis", 245)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, []string{"Hellfire", "Visions of Atlantis Hellfire", "Hellfire Visions of Atlantis"}, s.queries)
}

func TestSearchWithStrategiesNotFound(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{
		"Visions of Atlantis Hellfire Official Video": {other},
		"Visions of Atlantis Hellfire":                {other},
		"Hellfire Visions of Atlantis":                {other},
	}}
	result, err := New(s).SearchWithStrategies(context.Background(), Generation{},
		"Visions of Atlantis - Hellfire (Official Video)", "", 245)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Lyrics)
	assert.Len(t, s.queries, 3)
	assert.Equal(t, []entity.Candidate{other}, result.Candidates)
}

func TestSearchWithStrategiesSuperseded(t *testing.T) {
	var (
		generations Generations
		generation  = generations.Next()
		s           = &searcher{hook: func() { generations.Next() }}
	)
	result, err := New(s).SearchWithStrategies(context.Background(), generation, "Visions of Atlantis - Hellfire", "", 245)
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.False(t, result.Found)
	assert.Len(t, s.queries, 1)
}

func TestSearchWithStrategiesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &searcher{}
	_, err := New(s).SearchWithStrategies(ctx, Generation{}, "Visions of Atlantis - Hellfire", "", 245)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.queries)
}

func TestGenerations(t *testing.T) {
	var generations Generations
	first := generations.Next()
	assert.True(t, first.Current())
	second := generations.Next()
	assert.False(t, first.Current())
	assert.True(t, second.Current())
	assert.True(t, Generation{}.Current())
}

func TestFetchByID(t *testing.T) {
	engine := New(&searcher{records: map[int]entity.Candidate{1: hellfire}})
	result := engine.FetchByID(context.Background(), 1)
	assert.True(t, result.Found)
	assert.Equal(t, "Hellfire", result.TrackName)

	assert.Equal(t, entity.NotFound(), engine.FetchByID(context.Background(), 2))
}

func TestResolve(t *testing.T) {
	s := &searcher{
		records:   map[int]entity.Candidate{5: other},
		responses: map[string][]entity.Candidate{"Hellfire": {hellfire}},
	}
	engine := New(s)

	result, err := engine.Resolve(context.Background(), Generation{}, "Hellfire", "", 245, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.ID)
	assert.False(t, result.Synced)
	assert.Empty(t, s.queries)

	result, err = engine.Resolve(context.Background(), Generation{}, "Hellfire", "", 245, 99)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, []string{"Hellfire"}, s.queries)
}

func TestCandidates(t *testing.T) {
	s := &searcher{responses: map[string][]entity.Candidate{"Hellfire Live": {hellfire, other}}}
	assert.Len(t, New(s).Candidates(context.Background(), "Hellfire (Live)", 0), 2)

	s.err = errors.New("failure")
	assert.Empty(t, New(s).Candidates(context.Background(), "Hellfire (Live)", 0))
}

func TestParseSynced(t *testing.T) {
	result := Parse(entity.Candidate{ID: 3, SyncedLyrics: "[ar:Artist]\n[01:02.50]Hello\n\n[01:03.123] World \r\n[01:04.00]"})
	assert.True(t, result.Found)
	assert.True(t, result.Synced)
	assert.Equal(t, 3, result.ID)
	assert.Equal(t, []entity.SyncedLine{
		{StartTimeMs: 62500, Text: "Hello"},
		{StartTimeMs: 63123, Text: "World"},
		{StartTimeMs: 64000, Text: ""},
	}, result.Lyrics)
}

func TestParsePlain(t *testing.T) {
	result := Parse(entity.Candidate{PlainLyrics: "first\nsecond\n", TrackName: "Track"})
	assert.True(t, result.Found)
	assert.False(t, result.Synced)
	assert.Equal(t, "first\nsecond\n", result.PlainLyrics)
	assert.Equal(t, []entity.SyncedLine{{Text: "first"}, {Text: "second"}, {Text: ""}}, result.Lyrics)
}

func TestParseMalformed(t *testing.T) {
	assert.Equal(t, entity.NotFound(), Parse(entity.Candidate{ID: 1}))
	assert.Equal(t, entity.NotFound(), Parse(entity.Candidate{ID: 1, Instrumental: true}))
}

func TestParsePreservesOrder(t *testing.T) {
	var (
		lines    []string
		expected []entity.SyncedLine
	)
	for i := 0; i < 200; i++ {
		ms := i * 1370
		lines = append(lines, fmt.Sprintf("[%02d:%02d.%03d]line %d", ms/60000, ms/1000%60, ms%1000, i))
		expected = append(expected, entity.SyncedLine{StartTimeMs: ms, Text: fmt.Sprintf("line %d", i)})
	}
	assert.Equal(t, expected, Parse(entity.Candidate{SyncedLyrics: strings.Join(lines, "\n")}).Lyrics)
}

func TestFormatLRC(t *testing.T) {
	result := Parse(hellfire)
	text := FormatLRC(result)
	assert.Equal(t, "[ar:Visions of Atlantis]\n[ti:Hellfire]\n[00:01.00]first\n[00:02.50]second\n", text)
	assert.Equal(t, result.Lyrics, Parse(entity.Candidate{SyncedLyrics: text}).Lyrics)

	assert.Equal(t, "first\nsecond\n", FormatLRC(Parse(entity.Candidate{PlainLyrics: "first\nsecond"})))
}

func TestDelay(t *testing.T) {
	result := Parse(hellfire)
	assert.Equal(t, []entity.SyncedLine{{StartTimeMs: 1500, Text: "first"}, {StartTimeMs: 3000, Text: "second"}}, Delay(result, 500).Lyrics)
	assert.Equal(t, []entity.SyncedLine{{StartTimeMs: 0, Text: "first"}, {StartTimeMs: 500, Text: "second"}}, Delay(result, -2000).Lyrics)
	assert.Equal(t, []entity.SyncedLine{{StartTimeMs: 1000, Text: "first"}, {StartTimeMs: 2500, Text: "second"}}, result.Lyrics)

	plain := Parse(entity.Candidate{PlainLyrics: "first"})
	assert.Equal(t, plain, Delay(plain, 500))
}

func TestParseUnreadableSynced(t *testing.T) {
	result := Parse(entity.Candidate{ID: 4, PlainLyrics: "one\ntwo", SyncedLyrics: "[1:02.5]one\n[00:03]two"})
	assert.True(t, result.Found)
	assert.False(t, result.Synced)
	assert.Equal(t, 4, result.ID)
	assert.Equal(t, []entity.SyncedLine{{Text: "one"}, {Text: "two"}}, result.Lyrics)

	assert.Equal(t, entity.NotFound(), Parse(entity.Candidate{ID: 4, SyncedLyrics: "[1:02.5]one\n[00:03]two"}))
}
