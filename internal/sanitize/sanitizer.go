package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/audio-cleaner/internal/model"
)

// SupportedExtensions lists the audio formats the cleaner handles.
var SupportedExtensions = []string{".mp3", ".flac", ".wav", ".m4a", ".aac", ".ogg", ".wma"}

// LegacyExtensions is the mp3-only allowlist.
var LegacyExtensions = []string{".mp3"}

var whitespace = regexp.MustCompile(`\s+`)

// Sanitizer cleans filenames with a fixed rule list.
//
// A Sanitizer is immutable after New and safe for concurrent use.
type Sanitizer struct {
	rules      []Rule
	extensions map[string]bool
}

// New creates a Sanitizer over DefaultRules for the given extensions.
//
// Extensions are matched case-insensitively and must include the leading dot.
func New(extensions []string) *Sanitizer {
	return NewWithRules(DefaultRules, extensions)
}

// NewWithRules creates a Sanitizer with a custom rule list.
func NewWithRules(rules []Rule, extensions []string) *Sanitizer {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Sanitizer{rules: rules, extensions: exts}
}

// Supports reports whether ext (with leading dot, any case) is handled.
func (s *Sanitizer) Supports(ext string) bool {
	return s.extensions[strings.ToLower(ext)]
}

// Clean returns the cleaned form of filename.
//
// Clean never fails. For a supported extension the rules run on the base
// name only and the lowercase extension is appended afterwards, so the
// result always ends with it. Unsupported names are cleaned as a whole.
// If the rules strip the whole base name, the original base name is kept
// with only its whitespace collapsed and its edges trimmed. A base name made
// of nothing but spaces and hyphens is returned unchanged.
//
// Example:
//
//	s.Clean("Artist - Song (Official Video) - Youtube.mp3") // "Artist - Song.mp3"
//	s.Clean("Song.MP3")                                     // "Song.mp3"
func (s *Sanitizer) Clean(filename string) string {
	base := filename
	ext := strings.ToLower(filepath.Ext(filename))
	supported := s.Supports(ext)
	if supported {
		base = filename[:len(filename)-len(ext)]
	}

	name := dropLastSegment(base)
	for _, rule := range s.rules {
		name = rule.Apply(name)
	}
	name = tidy(name)

	if name == "" {
		name = tidy(base)
	}
	if name == "" {
		return filename
	}
	if supported {
		name += ext
	}
	return name
}

// tidy collapses whitespace runs and trims spaces and hyphens from both ends.
func tidy(name string) string {
	return strings.Trim(whitespace.ReplaceAllString(name, " "), " -")
}

// dropLastSegment keeps everything before the last delimiter when the name
// holds at least two of them.
func dropLastSegment(name string) string {
	if strings.Count(name, model.ArtistSeparator) < 2 {
		return name
	}
	return name[:strings.LastIndex(name, model.ArtistSeparator)]
}
