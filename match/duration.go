package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/streambinder/lyricsync/entity"
)

const (
	nearDuration        = 5.0
	closeDuration       = 60.0
	safeDuration        = 180.0
	longTolerance       = 180.0
	shortTolerance      = 15.0
	staleDurationMargin = 10.0

	nearDurationScore  = 1.15
	closeDurationScore = 1.1
)

var lastTimestampRegex = regexp.MustCompile(`^\[(\d+):(\d+(?:\.\d+)?)\]`)

// TrueDuration returns the candidate duration, corrected with the
// last synced timestamp whenever the metadata is evidently stale
func TrueDuration(candidate entity.Candidate) float64 {
	index := strings.LastIndex(candidate.SyncedLyrics, "[")
	if index == -1 {
		return candidate.Duration
	}
	match := lastTimestampRegex.FindStringSubmatch(candidate.SyncedLyrics[index:])
	if match == nil {
		return candidate.Duration
	}
	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return candidate.Duration
	}
	seconds, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return candidate.Duration
	}
	if last := float64(minutes)*60 + seconds; last > candidate.Duration+staleDurationMargin {
		return last
	}
	return candidate.Duration
}

// DurationScore rates how plausible it is for a candidate lasting actual seconds
// to be the track played by a video lasting target seconds: videos longer than
// the song (intros, outros) are tolerated, shorter ones are not
func DurationScore(target, actual float64) float64 {
	if target <= 0 {
		return 1
	}

	diff := target - actual
	if math.Abs(diff) < nearDuration {
		return nearDurationScore
	}
	if diff >= 0 {
		switch {
		case diff <= closeDuration:
			return closeDurationScore
		case diff <= safeDuration:
			return 1
		}
		return 1 / (1 + math.Pow((diff-safeDuration)/longTolerance, 2))
	}
	return 1 / (1 + math.Pow(math.Abs(diff)/shortTolerance, 2))
}
