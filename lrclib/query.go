package lrclib

import (
	"regexp"
	"strings"

	"github.com/streambinder/lyricsync/title"
)

var (
	// hiragana, katakana and CJK unified ideographs,
	// which the search backend tokenizes poorly
	cjkRegex         = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]`)
	punctuationRegex = regexp.MustCompile(`\pP`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// Query is a sanitized (track, artist) pair
type Query struct {
	Track  string
	Artist string
}

func sanitize(text string) string {
	text = title.NormalizeHandles(text)
	text = cjkRegex.ReplaceAllString(text, "")
	text = punctuationRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// Sanitize prepares track and artist for querying
func Sanitize(track, artist string) Query {
	return Query{Track: sanitize(track), Artist: sanitize(artist)}
}

// String joins the query terms as "<artist> <track>",
// omitting the artist if empty
func (query Query) String() string {
	if len(query.Artist) == 0 {
		return query.Track
	}
	return strings.TrimSpace(query.Artist + " " + query.Track)
}
