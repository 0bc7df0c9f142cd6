package match

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

const (
	fullSimilarity  = 1.0
	wordMinLength   = 3
	wordSimilarity  = 0.85
	highSimilarity  = 0.9
	bonusSimilarity = 0.1
)

func jaroWinkler(a, b string) float64 {
	similarity, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(similarity)
}

func compact(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Fuzzy compares two strings case-insensitively, tolerating
// minor spelling, spacing and ordering differences
func Fuzzy(search, target string) float64 {
	search, target = strings.ToLower(search), strings.ToLower(target)
	searchCompact, targetCompact := compact(search), compact(target)
	if searchCompact == targetCompact {
		return fullSimilarity
	}
	return math.Min(math.Max(
		jaroWinkler(search, target),
		jaroWinkler(searchCompact, targetCompact),
	), fullSimilarity)
}

// words returns the significant (longer than 3 characters) words of text
func words(text string) (significant []string) {
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > wordMinLength {
			significant = append(significant, word)
		}
	}
	return
}
