package title

import (
	"regexp"
	"strings"

	"github.com/streambinder/lyricsync/entity"
)

type state struct {
	title    string
	artist   string
	track    string
	featured string
}

type step func(state) state

var (
	handleRegex            = regexp.MustCompile(`@([a-zA-Z0-9_]+)`)
	camelCaseRegex         = regexp.MustCompile(`([a-z])([A-Z])`)
	letterDigitRegex       = regexp.MustCompile(`([a-zA-Z])(\d)`)
	digitLetterRegex       = regexp.MustCompile(`(\d)([a-zA-Z])`)
	featuredBracketRegex   = regexp.MustCompile(`(?i)\s*[(\[](?:\bft\b|\bfeat\b)\.?\s*(.*?)[)\]]`)
	bracketRegex           = regexp.MustCompile(`\s*[(\[].*?[)\]]`)
	featuredTrailingRegex  = regexp.MustCompile(`(?i)\s*(?:\bft\b|\bfeat\b)\.?\s*(.*)$`)
	punctuationRegex       = regexp.MustCompile(`[!"#$%&'()*+,./:;<=>?@\[\\]`)
	whitespaceRegex        = regexp.MustCompile(`\s+`)
	trailingSeparatorRegex = regexp.MustCompile(`-\s*$`)
)

// separators between artist and track, by priority tier:
// within a tier, the leftmost one wins
var separators = [][]string{
	{" - ", " – ", " — "},
	{" | "},
	{" x "},
}

var pipeline = []step{
	normalizeHandles,
	extractFeaturedFromBrackets,
	removeBrackets,
	removeJunkSuffixes,
	splitArtistAndTrack,
	extractFeaturedFromParts,
	mergeFeaturedIntoArtist,
	removePunctuation,
	finalCleanup,
}

// Parse makes a best-effort guess of artist and track out of a raw video title
func Parse(title string) entity.TitleParseResult {
	s := state{title: title}
	for _, fn := range pipeline {
		s = fn(s)
	}
	return entity.TitleParseResult{Artist: s.artist, Track: s.track}
}

// NormalizeHandles drops the "@" of social handles and splits
// camelCase words and letter/digit sequences apart
func NormalizeHandles(text string) string {
	text = handleRegex.ReplaceAllString(text, "${1}")
	text = camelCaseRegex.ReplaceAllString(text, "${1} ${2}")
	text = letterDigitRegex.ReplaceAllString(text, "${1} ${2}")
	return digitLetterRegex.ReplaceAllString(text, "${1} ${2}")
}

func normalizeHandles(s state) state {
	s.title = NormalizeHandles(s.title)
	return s
}

func extractFeaturedFromBrackets(s state) state {
	var featured []string
	if len(s.featured) > 0 {
		featured = append(featured, s.featured)
	}
	s.title = featuredBracketRegex.ReplaceAllStringFunc(s.title, func(match string) string {
		if group := featuredBracketRegex.FindStringSubmatch(match); len(group) > 1 {
			if artists := strings.TrimSpace(group[1]); len(artists) > 0 {
				featured = append(featured, artists)
			}
		}
		return ""
	})
	s.featured = strings.Join(featured, " ")
	return s
}

func removeBrackets(s state) state {
	s.title = bracketRegex.ReplaceAllString(s.title, "")
	return s
}

func removeJunkSuffixes(s state) state {
	s.title = RemoveJunkSuffixes(s.title)
	return s
}

func splitArtistAndTrack(s state) state {
	for _, tier := range separators {
		index, length := -1, 0
		for _, separator := range tier {
			if i := strings.Index(s.title, separator); i != -1 && (index == -1 || i < index) {
				index, length = i, len(separator)
			}
		}
		if index != -1 {
			s.artist = strings.TrimSpace(s.title[:index])
			s.track = strings.TrimSpace(s.title[index+length:])
			return s
		}
	}
	s.track = strings.TrimSpace(s.title)
	return s
}

// extractFeatured splits a trailing "ft"/"feat" clause out of text
func extractFeatured(text string) (clean, featured string) {
	match := featuredTrailingRegex.FindStringSubmatchIndex(text)
	if match == nil || match[3] <= match[2] {
		return text, ""
	}
	return strings.TrimSpace(text[:match[0]]), strings.TrimSpace(text[match[2]:match[3]])
}

func extractFeaturedFromParts(s state) state {
	artist, artistFeatured := extractFeatured(s.artist)
	track, trackFeatured := extractFeatured(s.track)

	var featured []string
	for _, part := range []string{s.featured, artistFeatured, trackFeatured} {
		if len(part) > 0 {
			featured = append(featured, part)
		}
	}
	s.artist, s.track, s.featured = artist, track, strings.Join(featured, " ")
	return s
}

func mergeFeaturedIntoArtist(s state) state {
	if len(s.featured) == 0 {
		return s
	}
	featured := collapse(strings.ReplaceAll(s.featured, "&", ""))
	if len(s.artist) > 0 {
		s.artist = s.artist + " " + featured
	} else {
		s.artist = featured
	}
	return s
}

func stripPunctuation(text string) string {
	text = strings.ReplaceAll(text, "-", " ")
	return strings.TrimSpace(punctuationRegex.ReplaceAllString(text, ""))
}

func removePunctuation(s state) state {
	s.artist = stripPunctuation(s.artist)
	s.track = stripPunctuation(s.track)
	return s
}

func finalCleanup(s state) state {
	s.artist = collapse(s.artist)
	track := trailingSeparatorRegex.ReplaceAllString(collapse(s.track), "")
	s.track = strings.TrimSpace(strings.Split(track, "|")[0])
	return s
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
