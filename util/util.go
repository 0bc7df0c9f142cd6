package util

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

const excerptLength = 32

var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// ErrWrap returns a function that unwraps a (value, error) pair
// into the value, falling back to def whenever error is not nil
func ErrWrap[T any](def T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return def
		}
		return value
	}
}

// ErrSuppress explicitly drops an error nobody can act on
func ErrSuppress(err error) {
	_ = err
}

// Excerpt returns a single-line, shortened version of the given text
func Excerpt(text string, length ...int) string {
	limit := excerptLength
	if len(length) > 0 && length[0] > 0 {
		limit = length[0]
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

// LegalizeFilename transliterates the given name to ASCII
// and drops any character which is not allowed in filenames
func LegalizeFilename(name string) string {
	name = unidecode.Unidecode(name)
	name = illegalFilenameChars.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// FileBaseStem returns the base name of path, without extension
func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
