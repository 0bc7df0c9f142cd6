package entity

import (
	"regexp"
	"strings"
)

var timestampRegex = regexp.MustCompile(`\[\d{2}:\d{2}\.\d{2,3}\]`)

// Candidate is a single lyrics record as returned by the
// upstream full-text index for a given query
type Candidate struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"` // in seconds, not always accurate
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// Synced tells whether the candidate carries timestamped lyrics,
// that is at least one well-formed "[mm:ss.xx]" line
func (candidate Candidate) Synced() bool {
	return timestampRegex.MatchString(candidate.SyncedLyrics)
}

// Usable tells whether the candidate has any text to be matched against:
// instrumental records and records without lyrics are not
func (candidate Candidate) Usable() bool {
	if candidate.Instrumental {
		return false
	}
	return candidate.Synced() || len(strings.TrimSpace(candidate.PlainLyrics)) > 0
}
