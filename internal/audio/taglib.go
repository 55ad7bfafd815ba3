package audio

import (
	"go.senan.xyz/taglib"
)

// taglibStore covers the formats handled through TagLib: MP4/M4A, AAC,
// Ogg Vorbis, WAV and WMA.
type taglibStore struct {
	path    string
	tags    map[string][]string
	changed map[string][]string
}

func openTagLib(path string) (Store, error) {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if tags == nil {
		tags = make(map[string][]string)
	}
	return &taglibStore{path: path, tags: tags, changed: make(map[string][]string)}, nil
}

func taglibKey(field Field) string {
	switch field {
	case FieldTitle:
		return taglib.Title
	case FieldArtist:
		return taglib.Artist
	}
	return string(field)
}

func (s *taglibStore) Get(field Field) (string, bool) {
	values := s.tags[taglibKey(field)]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (s *taglibStore) Set(field Field, value string) {
	key := taglibKey(field)
	s.tags[key] = []string{value}
	s.changed[key] = []string{value}
}

// Save writes only the changed keys; other tags are left as they are.
func (s *taglibStore) Save() error {
	if len(s.changed) == 0 {
		return nil
	}
	if err := taglib.WriteTags(s.path, s.changed, 0); err != nil {
		return err
	}
	s.changed = make(map[string][]string)
	return nil
}

func (s *taglibStore) Close() error {
	return nil
}
