package entity

// SyncedLine is a single lyrics line with its start time;
// plain (unsynced) lines always start at 0
type SyncedLine struct {
	StartTimeMs int
	Text        string
}

// Result is the terminal output of a lyrics lookup
type Result struct {
	Lyrics      []SyncedLine
	PlainLyrics string
	Found       bool
	Synced      bool
	ID          int
	ArtistName  string
	TrackName   string
	Candidates  []Candidate
}

// TitleParseResult is the best-effort artist and track
// guess extracted from a raw video title
type TitleParseResult struct {
	Artist string
	Track  string
}

// NotFound returns the empty, not-found result
func NotFound() Result {
	return Result{Lyrics: []SyncedLine{}}
}
