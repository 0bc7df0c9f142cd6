package lyrics

import "github.com/streambinder/lyricsync/entity"

// Delay shifts every synced line by ms milliseconds (negative values anticipate
// them), never before the start of the track; plain lyrics are left untouched
func Delay(result entity.Result, ms int) entity.Result {
	if !result.Synced || ms == 0 {
		return result
	}
	lines := make([]entity.SyncedLine, len(result.Lyrics))
	for i, line := range result.Lyrics {
		lines[i] = entity.SyncedLine{StartTimeMs: max(line.StartTimeMs+ms, 0), Text: line.Text}
	}
	result.Lyrics = lines
	return result
}
