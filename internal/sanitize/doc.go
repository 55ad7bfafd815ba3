// Package sanitize strips web-download artifacts from audio filenames.
//
// A Sanitizer applies an ordered list of case-insensitive substitution
// rules to the base name of a file, tidies whitespace and hyphens, and
// re-attaches the lowercase extension:
//
//	s := sanitize.New(sanitize.SupportedExtensions)
//	s.Clean("Artist - Song (Official Video) - Youtube.mp3") // "Artist - Song.mp3"
//	s.Clean("MySong (HD) (1080p) [SPOTIFY-DOWNLOADER.COM].mp3") // "MySong.mp3"
//
// # Rules
//
// DefaultRules is fixed at build time. Order matters: the word rules run
// before the empty-parenthesis rule so that "(Lyric Video)" collapses to
// "()" and is then removed.
//
// # Segment trimming
//
// When a base name holds two or more " - " delimiters, everything after the
// last one is dropped before the rules run:
//
//	s.Clean("A - B - C - D.mp3") // "A - B - C.mp3"
package sanitize
