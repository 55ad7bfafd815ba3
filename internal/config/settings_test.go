package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.Rename || !s.UpdateTags {
		t.Errorf("DefaultSettings() = %+v, want both passes enabled", s)
	}
	if s.MP3Only || s.Verbose {
		t.Errorf("DefaultSettings() = %+v, want MP3Only and Verbose off", s)
	}
	if s.RootPath == "" {
		t.Error("RootPath should default to the working directory")
	}
}

func TestSettings_Extensions(t *testing.T) {
	s := DefaultSettings()
	if got := len(s.Extensions()); got != 7 {
		t.Errorf("len(Extensions()) = %d, want 7", got)
	}

	s.MP3Only = true
	got := s.Extensions()
	if len(got) != 1 || got[0] != ".mp3" {
		t.Errorf("Extensions() = %v, want [.mp3]", got)
	}
}

func TestSettings_Validate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		root string
		want error
	}{
		{"directory", dir, nil},
		{"file", file, ErrNotDirectory},
		{"missing", filepath.Join(dir, "missing"), fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{RootPath: tt.root}
			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}
