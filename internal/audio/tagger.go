package audio

import (
	"strings"

	"github.com/handiism/audio-cleaner/internal/model"
)

// TagResult describes what UpdateTags derived and wrote for one file.
type TagResult struct {
	// Info is the artist/title pair parsed from the base name.
	Info model.TrackInfo

	// TitleWritten is true if the title field was replaced.
	TitleWritten bool

	// ArtistWritten is true if the artist field was replaced.
	ArtistWritten bool
}

// Tagger writes title and artist tags derived from cleaned filenames.
//
// Example:
//
//	tagger := NewTagger(nil)
//	result, err := tagger.UpdateTags("/music/Daft Punk - One More Time.mp3")
//	if err != nil {
//	    log.Printf("Error processing %s: %v", path, err)
//	}
type Tagger struct {
	opener Opener
}

// NewTagger creates a Tagger that opens stores with opener.
//
// If opener is nil, DefaultOpener is used.
func NewTagger(opener Opener) *Tagger {
	if opener == nil {
		opener = DefaultOpener
	}
	return &Tagger{opener: opener}
}

// UpdateTags derives artist and title from the file's base name and writes
// them to its tag store.
//
// This method:
//  1. Splits the base name on the first " - " into artist and title
//  2. Opens the store (creating an empty tag set if the file has none)
//  3. Writes the title unless the stored title already equals the base name
//  4. Writes the artist when one was found, under the same stored-title
//     check, evaluated again after step 3
//  5. Saves and closes the store
//
// The gate in steps 3 and 4 compares the stored title with the whole base
// name, not with the derived title. A title deliberately set to the full
// filename is therefore never overwritten, and neither is the artist.
func (t *Tagger) UpdateTags(path string) (TagResult, error) {
	base := model.NewAudioFile(path).BaseName()
	result := TagResult{Info: model.ParseTrackInfo(base)}

	store, err := t.opener.Open(path)
	if err != nil {
		return result, err
	}
	defer store.Close()

	gate := strings.TrimSpace(base)

	if titleDiffers(store, gate) {
		store.Set(FieldTitle, result.Info.Title)
		result.TitleWritten = true
	}

	if result.Info.HasArtist() && titleDiffers(store, gate) {
		store.Set(FieldArtist, result.Info.Artist)
		result.ArtistWritten = true
	}

	if err := store.Save(); err != nil {
		return result, err
	}
	return result, nil
}

// titleDiffers reports whether the stored title is missing or not equal to
// want.
func titleDiffers(store Store, want string) bool {
	title, ok := store.Get(FieldTitle)
	return !ok || title != want
}
