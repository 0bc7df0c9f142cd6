package id3

import (
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

const (
	frameLength = "TLEN"
	frameLyrics = "USLT"
	language    = "eng"
)

// Tag wraps an ID3v2 tag, exposing the frames lyrics matching cares about
type Tag struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*Tag, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

// Duration returns the track length in seconds, 0 if unknown
func (tag *Tag) Duration() int {
	ms, err := strconv.Atoi(strings.TrimSpace(tag.GetTextFrame(frameLength).Text))
	if err != nil || ms < 0 {
		return 0
	}
	return ms / 1000
}

// SetDuration stores the track length, given in seconds
func (tag *Tag) SetDuration(seconds int) {
	tag.AddTextFrame(frameLength, id3v2.EncodingUTF8, strconv.Itoa(seconds*1000))
}

func (tag *Tag) Lyrics() string {
	for _, frame := range tag.GetFrames(frameLyrics) {
		if lyrics, ok := frame.(id3v2.UnsynchronisedLyricsFrame); ok {
			return lyrics.Lyrics
		}
	}
	return ""
}

func (tag *Tag) HasLyrics() bool {
	return len(strings.TrimSpace(tag.Lyrics())) > 0
}

// SetLyrics replaces any lyrics frame with the given text
func (tag *Tag) SetLyrics(text string) {
	tag.DeleteFrames(frameLyrics)
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          language,
		ContentDescriptor: "",
		Lyrics:            text,
	})
}
