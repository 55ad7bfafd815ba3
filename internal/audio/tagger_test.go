package audio

import (
	"errors"
	"testing"
)

// memStore is an in-memory Store for driving the Tagger.
type memStore struct {
	fields  map[Field]string
	saveErr error
	saved   bool
	closed  bool
}

func newMemStore(fields map[Field]string) *memStore {
	if fields == nil {
		fields = make(map[Field]string)
	}
	return &memStore{fields: fields}
}

func (s *memStore) Get(field Field) (string, bool) {
	v, ok := s.fields[field]
	return v, ok
}

func (s *memStore) Set(field Field, value string) { s.fields[field] = value }

func (s *memStore) Save() error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = true
	return nil
}

func (s *memStore) Close() error {
	s.closed = true
	return nil
}

func openerFor(store *memStore) Opener {
	return OpenerFunc(func(string) (Store, error) { return store, nil })
}

func TestTagger_UpdateTags(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		existing   map[Field]string
		wantTitle  string
		wantArtist string
		wantTitleW bool
		wantArtW   bool
	}{
		{
			name:       "artist and title from fresh tags",
			path:       "/music/Daft Punk - One More Time.mp3",
			wantTitle:  "One More Time",
			wantArtist: "Daft Punk",
			wantTitleW: true,
			wantArtW:   true,
		},
		{
			name:       "title only",
			path:       "/music/Interstellar Theme.mp3",
			wantTitle:  "Interstellar Theme",
			wantTitleW: true,
		},
		{
			name:       "existing different tags replaced",
			path:       "/music/Daft Punk - One More Time.flac",
			existing:   map[Field]string{FieldTitle: "Track 01", FieldArtist: "Unknown"},
			wantTitle:  "One More Time",
			wantArtist: "Daft Punk",
			wantTitleW: true,
			wantArtW:   true,
		},
		{
			name:       "stored title equals base name",
			path:       "/music/Daft Punk - One More Time.mp3",
			existing:   map[Field]string{FieldTitle: "Daft Punk - One More Time", FieldArtist: "Someone"},
			wantTitle:  "Daft Punk - One More Time",
			wantArtist: "Someone",
		},
		{
			name:       "stored title equals derived title",
			path:       "/music/Daft Punk - One More Time.mp3",
			existing:   map[Field]string{FieldTitle: "One More Time"},
			wantTitle:  "One More Time",
			wantArtist: "Daft Punk",
			wantTitleW: true,
			wantArtW:   true,
		},
		{
			name:       "title already matches whole base name",
			path:       "/music/Interstellar Theme.ogg",
			existing:   map[Field]string{FieldTitle: "Interstellar Theme"},
			wantTitle:  "Interstellar Theme",
		},
		{
			name:       "empty stored title counts as different",
			path:       "/music/Artist - Song.m4a",
			existing:   map[Field]string{FieldTitle: ""},
			wantTitle:  "Song",
			wantArtist: "Artist",
			wantTitleW: true,
			wantArtW:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(tt.existing)
			result, err := NewTagger(openerFor(store)).UpdateTags(tt.path)
			if err != nil {
				t.Fatalf("UpdateTags() error = %v", err)
			}

			if got := store.fields[FieldTitle]; got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
			if got := store.fields[FieldArtist]; got != tt.wantArtist {
				t.Errorf("artist = %q, want %q", got, tt.wantArtist)
			}
			if result.TitleWritten != tt.wantTitleW {
				t.Errorf("TitleWritten = %v, want %v", result.TitleWritten, tt.wantTitleW)
			}
			if result.ArtistWritten != tt.wantArtW {
				t.Errorf("ArtistWritten = %v, want %v", result.ArtistWritten, tt.wantArtW)
			}
			if !store.saved {
				t.Error("store should be saved")
			}
			if !store.closed {
				t.Error("store should be closed")
			}
		})
	}
}

func TestTagger_ArtistUnsetWithoutSeparator(t *testing.T) {
	store := newMemStore(nil)
	if _, err := NewTagger(openerFor(store)).UpdateTags("Interstellar Theme.mp3"); err != nil {
		t.Fatalf("UpdateTags() error = %v", err)
	}
	if _, ok := store.fields[FieldArtist]; ok {
		t.Error("artist should not be set")
	}
}

func TestTagger_OpenError(t *testing.T) {
	opener := OpenerFunc(func(path string) (Store, error) {
		return nil, classify(path, errNotExist)
	})

	_, err := NewTagger(opener).UpdateTags("/gone/Artist - Song.mp3")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("UpdateTags() error = %v, want ErrFileNotFound", err)
	}
}

func TestTagger_SaveError(t *testing.T) {
	saveErr := errors.New("disk full")
	store := newMemStore(nil)
	store.saveErr = saveErr

	_, err := NewTagger(openerFor(store)).UpdateTags("Artist - Song.mp3")
	if !errors.Is(err, saveErr) {
		t.Errorf("UpdateTags() error = %v, want %v", err, saveErr)
	}
	if !store.closed {
		t.Error("store should be closed after a failed save")
	}
}
