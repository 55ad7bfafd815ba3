package audio

import (
	"github.com/bogem/id3v2"
)

// id3Store keeps title and artist in an ID3v2 tag.
type id3Store struct {
	tag *id3v2.Tag
}

// openID3 parses the file's ID3v2 tag. Files without a tag get an empty
// one, which Save later prepends to the audio data.
func openID3(path string) (Store, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, classify(path, err)
	}
	return &id3Store{tag: tag}, nil
}

func (s *id3Store) frameID(field Field) string {
	switch field {
	case FieldTitle:
		return s.tag.CommonID("Title")
	case FieldArtist:
		return s.tag.CommonID("Artist")
	}
	return ""
}

func (s *id3Store) Get(field Field) (string, bool) {
	id := s.frameID(field)
	if id == "" || len(s.tag.GetFrames(id)) == 0 {
		return "", false
	}
	return s.tag.GetTextFrame(id).Text, true
}

func (s *id3Store) Set(field Field, value string) {
	switch field {
	case FieldTitle:
		s.tag.SetTitle(value)
	case FieldArtist:
		s.tag.SetArtist(value)
	}
}

func (s *id3Store) Save() error {
	return s.tag.Save()
}

func (s *id3Store) Close() error {
	return s.tag.Close()
}
