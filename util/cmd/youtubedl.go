package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyricsync/entity"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	// overridable for testing purposes
	ytDlp = "yt-dlp"
)

type ytDlpInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Track      string  `json:"track"`
	Artist     string  `json:"artist"`
	Channel    string  `json:"channel"`
	Uploader   string  `json:"uploader"`
	Duration   float64 `json:"duration"`
	WebpageURL string  `json:"webpage_url"`
}

// YouTubeMetadata resolves title, author and duration of the video at url
// without downloading any of its streams
func YouTubeMetadata(ctx context.Context, url string) (*entity.Track, error) {
	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
		cmd    = exec.CommandContext(ctx, ytDlp,
			"--dump-single-json",
			"--no-playlist",
			"--skip-download",
			"--no-warnings",
			"--retry-sleep", "exp=1::2",
			url,
		)
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if message := strings.TrimSpace(stderr.String()); len(message) > 0 {
			return nil, errors.New(message)
		}
		return nil, err
	}
	track, err := parseMetadata(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	if len(track.URL) == 0 {
		track.URL = url
	}
	return track, nil
}

func parseMetadata(data []byte) (*entity.Track, error) {
	var info ytDlpInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding yt-dlp output: %w", err)
	}
	if len(info.Title) == 0 {
		return nil, errors.New("yt-dlp output misses the video title")
	}

	track := &entity.Track{
		ID:       info.ID,
		Title:    info.Title,
		Author:   info.Channel,
		Duration: int(math.Round(info.Duration)),
		URL:      info.WebpageURL,
	}
	if len(track.Author) == 0 {
		track.Author = info.Uploader
	}
	// music uploads carry the authoritative names
	if len(info.Track) > 0 && len(info.Artist) > 0 {
		track.Title = info.Artist + " - " + info.Track
	}
	return track, nil
}
