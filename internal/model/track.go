package model

import (
	"path/filepath"
	"strings"
)

// ArtistSeparator separates artist and title in a base name.
const ArtistSeparator = " - "

// AudioFile is an audio file on disk, identified by directory and name.
type AudioFile struct {
	// Dir is the directory holding the file.
	Dir string

	// Name is the file name including its extension.
	Name string
}

// NewAudioFile splits path into an AudioFile.
func NewAudioFile(path string) AudioFile {
	return AudioFile{Dir: filepath.Dir(path), Name: filepath.Base(path)}
}

// Path returns the full file path.
func (f AudioFile) Path() string {
	return filepath.Join(f.Dir, f.Name)
}

// Ext returns the lowercase extension with its leading dot.
func (f AudioFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// BaseName returns the file name without its extension.
func (f AudioFile) BaseName() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// WithName returns a copy of f in the same directory under a new name.
func (f AudioFile) WithName(name string) AudioFile {
	return AudioFile{Dir: f.Dir, Name: name}
}

// TrackInfo holds the artist and title derived from a file's base name.
type TrackInfo struct {
	// Artist is empty when the base name has no separator.
	Artist string

	// Title is the part after the first separator, or the whole base name.
	Title string
}

// ParseTrackInfo splits base on the first ArtistSeparator.
//
// Both parts are trimmed. Without a separator the trimmed base name becomes
// the title and Artist stays empty.
//
// Example:
//
//	ParseTrackInfo("AC - DC - Back in Black") // {Artist: "AC", Title: "DC - Back in Black"}
//	ParseTrackInfo("Interstellar Theme")      // {Title: "Interstellar Theme"}
func ParseTrackInfo(base string) TrackInfo {
	artist, title, found := strings.Cut(base, ArtistSeparator)
	if !found {
		return TrackInfo{Title: strings.TrimSpace(base)}
	}
	return TrackInfo{
		Artist: strings.TrimSpace(artist),
		Title:  strings.TrimSpace(title),
	}
}

// HasArtist reports whether an artist was found.
func (i TrackInfo) HasArtist() bool {
	return i.Artist != ""
}
