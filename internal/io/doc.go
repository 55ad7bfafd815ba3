// Package ioutils provides the file system plumbing for audio-cleaner.
//
// This package contains functions for:
//   - Listing audio files under a root directory
//   - Renaming files without clobbering existing ones
//
// # Listing
//
//	files, err := ioutils.ListAudioFiles("/music", []string{".mp3", ".flac"}, func(path string, err error) {
//	    log.Printf("skipped %s: %v", path, err)
//	})
//	for _, f := range files {
//	    fmt.Println(f.Path())
//	}
//
// # Renaming
//
//	renamed, err := ioutils.RenameFile(f, "Artist - Song.mp3")
//	// renamed is false when the name was already clean
package ioutils
