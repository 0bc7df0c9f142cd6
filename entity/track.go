package entity

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/streambinder/lyricsync/util"
)

// Track is the media whose lyrics need to be synchronized,
// as described by its (usually video) upstream provider
type Track struct {
	ID       string
	Title    string // raw title, as published
	Author   string // channel or uploader name
	Duration int    // in seconds
	URL      string
	Lyrics   Result
}

type TrackPath struct {
	track *Track
}

const LyricsFormat = "lrc"

// certain track titles include the variant description,
// this functions aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

// Lyrics returns the name of the lyrics file for the track,
// preferring the authoritative names of the matched record
// over the noisy upstream title
func (trackPath TrackPath) Lyrics() string {
	name := trackPath.track.Title
	if result := trackPath.track.Lyrics; result.Found && len(result.TrackName) > 0 {
		name = result.TrackName
		if len(result.ArtistName) > 0 {
			name = result.ArtistName + " - " + name
		}
	}
	if len(name) == 0 {
		name = trackPath.track.ID
	}
	return util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(name), LyricsFormat))
}
