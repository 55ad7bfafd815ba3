package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/handiism/audio-cleaner/internal/model"
)

// Field names a tag field.
type Field string

const (
	// FieldTitle is the track title (TIT2, TITLE).
	FieldTitle Field = "title"

	// FieldArtist is the lead artist (TPE1, ARTIST).
	FieldArtist Field = "artist"
)

var (
	// ErrFileNotFound means the file no longer exists.
	ErrFileNotFound = errors.New("file not found")

	// ErrFormat means the file could not be parsed as its format.
	ErrFormat = errors.New("invalid audio format")

	// ErrUnsupportedType means no tag store handles the extension.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Store is an open set of tags for a single file.
//
// A Store must be closed once the caller is done with it, whether or not
// Save was called.
type Store interface {
	// Get returns the field value and whether it is present.
	Get(field Field) (string, bool)

	// Set replaces the field value.
	Set(field Field, value string)

	// Save writes the tags back to the file.
	Save() error

	// Close releases the underlying file.
	Close() error
}

// Opener opens a Store for a file path.
type Opener interface {
	Open(path string) (Store, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Store, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Store, error) {
	return f(path)
}

// DefaultOpener opens stores with OpenStore.
var DefaultOpener Opener = OpenerFunc(OpenStore)

// OpenStore opens the tag store matching the file's extension.
//
// Returns an error wrapping ErrFileNotFound if the file is missing,
// ErrUnsupportedType for unknown extensions and ErrFormat when the file
// cannot be parsed.
func OpenStore(path string) (Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, classify(path, err)
	}

	switch ext := model.NewAudioFile(path).Ext(); ext {
	case ".mp3":
		return openID3(path)
	case ".flac":
		return openVorbis(path)
	case ".m4a", ".aac", ".ogg", ".wav", ".wma":
		return openTagLib(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

// classify wraps an open error with the matching sentinel.
func classify(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	var pathErr *fs.PathError
	if errors.Is(err, ErrFormat) || errors.As(err, &pathErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFormat, err)
}
