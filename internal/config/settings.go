package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/handiism/audio-cleaner/internal/sanitize"
)

// ErrNotDirectory is returned by Validate when RootPath is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Settings holds all configuration options.
type Settings struct {
	// RootPath is the directory scanned recursively.
	RootPath string

	// MP3Only limits processing to .mp3 files.
	MP3Only bool

	// Rename enables the filename cleaning pass.
	Rename bool

	// UpdateTags enables the metadata pass.
	UpdateTags bool

	// Verbose shows per-file detail messages.
	Verbose bool
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return &Settings{
		RootPath:   root,
		MP3Only:    false,
		Rename:     true,
		UpdateTags: true,
		Verbose:    false,
	}
}

// Extensions returns the audio extension allowlist for these settings.
func (s *Settings) Extensions() []string {
	if s.MP3Only {
		return sanitize.LegacyExtensions
	}
	return sanitize.SupportedExtensions
}

// Validate checks that RootPath is an existing directory.
func (s *Settings) Validate() error {
	info, err := os.Stat(s.RootPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, s.RootPath)
	}
	return nil
}
