package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/audio-cleaner/internal/model"
	"github.com/karrick/godirwalk"
)

// ErrTargetExists is returned when a rename would replace another file.
var ErrTargetExists = errors.New("target file already exists")

// ListAudioFiles walks root recursively and returns every regular file
// whose extension is in extensions.
//
// Extensions are compared case-insensitively and must include the leading
// dot. The result is sorted by path so repeated walks visit files in the
// same order. A subdirectory that cannot be read is skipped and reported
// to onSkip, which may be nil; only a failure on root itself is returned.
//
// Example:
//
//	files, err := ListAudioFiles("/music", []string{".mp3"}, nil)
//	// [{Dir: "/music/a", Name: "Song.MP3"} {Dir: "/music/b", Name: "x.mp3"}]
func ListAudioFiles(root string, extensions []string, onSkip func(path string, err error)) ([]model.AudioFile, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var paths []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if !de.IsRegular() {
				return nil
			}
			if allowed[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		},
		ErrorCallback: skipUnreadable(root, onSkip),
		Unsorted:      true,
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	files := make([]model.AudioFile, len(paths))
	for i, path := range paths {
		files[i] = model.NewAudioFile(path)
	}
	return files, nil
}

// skipUnreadable halts the walk on errors at root and skips any other node.
func skipUnreadable(root string, onSkip func(string, error)) func(string, error) godirwalk.ErrorAction {
	root = filepath.Clean(root)
	return func(path string, err error) godirwalk.ErrorAction {
		if filepath.Clean(path) == root {
			return godirwalk.Halt
		}
		if onSkip != nil {
			onSkip(path, err)
		}
		return godirwalk.SkipNode
	}
}

// RenameFile renames f to newName in the same directory.
//
// Returns false without touching the file system when newName equals the
// current name. Refuses with ErrTargetExists if a different file already
// has newName; a case-only rename of the same file is allowed.
//
// Example:
//
//	renamed, err := RenameFile(f, "Artist - Song.mp3")
func RenameFile(f model.AudioFile, newName string) (bool, error) {
	if newName == f.Name {
		return false, nil
	}

	src := f.Path()
	dst := f.WithName(newName).Path()

	if dstInfo, err := os.Lstat(dst); err == nil {
		srcInfo, err := os.Lstat(src)
		if err != nil {
			return false, err
		}
		if !os.SameFile(srcInfo, dstInfo) {
			return false, fmt.Errorf("%w: %s", ErrTargetExists, dst)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := os.Rename(src, dst); err != nil {
		return false, err
	}
	return true, nil
}
