package title

import (
	"regexp"
	"strings"
)

// promotional markers that are appended to video titles
var junkSuffixes = []string{
	"official music video",
	"official video",
	"lyric video",
	"audio",
	"hd",
	"4k",
	"live",
	"visualizer",
	"visual",
	"clip",
	"teaser",
	"trailer",
	"remix",
	"cover",
	"acoustic",
	"instrumental",
	"karaoke",
	"version",
	"edit",
	"extended",
	"radio edit",
	"album version",
	"full album",
	"ep",
	"single",
	"from the album",
	"from the movie",
	"soundtrack",
	"theme",
	"ost",
	"original soundtrack",
	"original mix",
	"official audio",
	"official lyric video",
	"official visualizer",
	"official visual",
	"official clip",
	"official teaser",
	"official trailer",
	"official remix",
	"official cover",
	"official acoustic",
	"official instrumental",
	"official karaoke",
	"official version",
	"official edit",
	"official extended",
	"official radio edit",
	"official album version",
	"official full album",
	"official ep",
	"official single",
	"official from the album",
	"official from the movie",
	"official soundtrack",
	"official theme",
	"official ost",
	"official original soundtrack",
	"official original mix",
}

// markers of videos which already overlay the lyrics,
// in english and spanish
var lyricVideoMarkers = []string{
	`lyrics?`,
	`lyrics?\s+video`,
	`lyric\s+visuali[sz]er`,
	`letras?`,
	`letras?\s+oficial`,
	`con\s+letra`,
	`video\s+con\s+letra`,
	`video\s+l[ií]rico`,
	`l[ií]rica`,
	`subtitulad[oa]`,
	`sub\s+espa[ñn]ol`,
	`karaoke`,
}

var (
	junkRegex       = regexp.MustCompile(`(?i)\s*[-–—|]?\s*\b(?:` + quoteAll(junkSuffixes) + `)\s*$`)
	lyricVideoRegex = regexp.MustCompile(`(?i)(?:^|[^\pL\pN])(?:` + strings.Join(lyricVideoMarkers, "|") + `)(?:$|[^\pL\pN])`)
)

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = regexp.QuoteMeta(word)
	}
	return strings.Join(quoted, "|")
}

// RemoveJunkSuffixes strips a trailing promotional marker
// (e.g. "- Official Video") from the given title
func RemoveJunkSuffixes(title string) string {
	return strings.TrimSpace(junkRegex.ReplaceAllString(title, ""))
}

// IsLyricVideoTitle tells whether the raw title announces a video
// which already shows its lyrics on screen
func IsLyricVideoTitle(title string) bool {
	return lyricVideoRegex.MatchString(title)
}
