package store

import "errors"

var ErrNotFound = errors.New("preference not found")

// Repository keeps per-video preferences, keyed by video URL:
// the lyrics record picked by hand and the timing offset to apply
type Repository interface {
	LyricID(url string) (int, error)
	SetLyricID(url string, id int) error
	Delay(url string) (int, error)
	SetDelay(url string, ms int) error
	Close() error
}
