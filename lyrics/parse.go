package lyrics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/streambinder/lyricsync/entity"
)

var syncedLineRegex = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{2,3})\](.*)`)

// parseSyncedLine reads a "[mm:ss.xx]text" line: a two digits
// fraction is in centiseconds, a three digits one in milliseconds
func parseSyncedLine(line string) (entity.SyncedLine, bool) {
	match := syncedLineRegex.FindStringSubmatch(line)
	if match == nil {
		return entity.SyncedLine{}, false
	}
	minutes, _ := strconv.Atoi(match[1])
	seconds, _ := strconv.Atoi(match[2])
	fraction, _ := strconv.Atoi(match[3])
	if len(match[3]) == 2 {
		fraction *= 10
	}
	return entity.SyncedLine{
		StartTimeMs: minutes*60000 + seconds*1000 + fraction,
		Text:        strings.TrimSpace(match[4]),
	}, true
}

// Parse turns a lyrics record into a result, preserving the source line order
func Parse(candidate entity.Candidate) entity.Result {
	if !candidate.Usable() {
		return entity.NotFound()
	}

	result := entity.Result{
		Lyrics:      []entity.SyncedLine{},
		PlainLyrics: candidate.PlainLyrics,
		Found:       true,
		ID:          candidate.ID,
		ArtistName:  candidate.ArtistName,
		TrackName:   candidate.TrackName,
	}
	if candidate.Synced() {
		for _, line := range strings.Split(candidate.SyncedLyrics, "\n") {
			if synced, ok := parseSyncedLine(line); ok {
				result.Lyrics = append(result.Lyrics, synced)
			}
		}
		if len(result.Lyrics) > 0 {
			result.Synced = true
			return result
		}
	}
	// no timestamped line could be read, fall back to plain text
	if len(strings.TrimSpace(candidate.PlainLyrics)) == 0 {
		return entity.NotFound()
	}

	for _, line := range strings.Split(candidate.PlainLyrics, "\n") {
		result.Lyrics = append(result.Lyrics, entity.SyncedLine{Text: strings.TrimRight(line, "\r")})
	}
	return result
}

// FormatLRC renders a result back to LRC text,
// plain results are rendered without timestamps
func FormatLRC(result entity.Result) string {
	var builder strings.Builder
	if len(result.ArtistName) > 0 {
		fmt.Fprintf(&builder, "[ar:%s]\n", result.ArtistName)
	}
	if len(result.TrackName) > 0 {
		fmt.Fprintf(&builder, "[ti:%s]\n", result.TrackName)
	}
	for _, line := range result.Lyrics {
		if result.Synced {
			fmt.Fprintf(&builder, "[%02d:%02d.%02d]",
				line.StartTimeMs/60000, line.StartTimeMs/1000%60, line.StartTimeMs%1000/10)
		}
		builder.WriteString(line.Text)
		builder.WriteString("\n")
	}
	return builder.String()
}
