package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/streambinder/lyricsync/lrclib"
	"github.com/streambinder/lyricsync/match"
	"gopkg.in/yaml.v3"
)

const name = "lyricsync"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	SearchURL    string        `yaml:"search_url"`
	GetURL       string        `yaml:"get_url"`
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
	match.Config `yaml:",inline"`
	Store        string `yaml:"store"` // sqlite preferences database path
	Demo         bool   `yaml:"demo"`  // keep preferences in memory only
}

func Default() Config {
	return Config{
		SearchURL: lrclib.DefaultSearchURL,
		GetURL:    lrclib.DefaultGetURL,
		UserAgent: lrclib.DefaultUserAgent,
		Timeout:   lrclib.DefaultTimeout,
		Config:    match.DefaultConfig(),
		Store:     filepath.Join(xdg.DataHome, name, "preferences.sqlite3"),
	}
}

// Path returns the default configuration file location
func Path() string {
	return filepath.Join(xdg.ConfigHome, name, "config.yml")
}

// Load reads the configuration at path on top of the defaults:
// a missing file is not an error
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	switch {
	case config.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	case config.Threshold < 0 || config.ThresholdNoArtist < 0:
		return fmt.Errorf("%w: thresholds must not be negative", ErrInvalid)
	case !config.Demo && len(config.Store) == 0:
		return fmt.Errorf("%w: store path required outside demo mode", ErrInvalid)
	}
	return nil
}
