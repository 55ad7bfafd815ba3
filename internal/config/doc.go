// Package config provides run settings for audio-cleaner.
//
// Settings are assembled in-process from defaults and command-line flags;
// the rule list and extension allowlist are compiled in and never read from
// a file.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Cleans the current directory
//	// Renames files, then updates title/artist tags
//	// Handles .mp3 .flac .wav .m4a .aac .ogg .wma
//
// # Legacy mode
//
// MP3Only restricts both passes to .mp3 files:
//
//	settings.MP3Only = true
//	settings.Extensions() // [".mp3"]
package config
