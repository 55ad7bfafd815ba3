package audio

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// vorbisStore keeps title and artist in a FLAC Vorbis comment block.
type vorbisStore struct {
	path     string
	file     *flac.File
	comments *flacvorbis.MetaDataBlockVorbisComment

	// index of the comment block in file.Meta, -1 when it must be appended
	index int
}

// openVorbis parses a FLAC file and finds its Vorbis comment block,
// starting a new one if the file has none.
func openVorbis(path string) (Store, error) {
	f, err := parseFLAC(path)
	if err != nil {
		return nil, classify(path, err)
	}

	s := &vorbisStore{path: path, file: f, index: -1}
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, classify(path, err)
		}
		s.comments = cmts
		s.index = idx
		break
	}

	if s.comments == nil {
		s.comments = flacvorbis.New()
	}
	return s, nil
}

// parseFLAC turns a parser panic into ErrFormat. go-flac indexes the first
// frame byte unchecked, so a file cut off right after its metadata panics.
func parseFLAC(path string) (f *flac.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("%w: %s: %v", ErrFormat, path, r)
		}
	}()
	return flac.ParseFile(path)
}

func vorbisKey(field Field) string {
	switch field {
	case FieldTitle:
		return flacvorbis.FIELD_TITLE
	case FieldArtist:
		return flacvorbis.FIELD_ARTIST
	}
	return strings.ToUpper(string(field))
}

// Get returns the first value of the field. Vorbis keys are case-insensitive.
func (s *vorbisStore) Get(field Field) (string, bool) {
	key := vorbisKey(field)
	for _, cmt := range s.comments.Comments {
		k, v, ok := strings.Cut(cmt, "=")
		if ok && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Set drops every existing value of the field before adding the new one.
func (s *vorbisStore) Set(field Field, value string) {
	key := vorbisKey(field)
	kept := s.comments.Comments[:0]
	for _, cmt := range s.comments.Comments {
		k, _, _ := strings.Cut(cmt, "=")
		if !strings.EqualFold(k, key) {
			kept = append(kept, cmt)
		}
	}
	s.comments.Comments = append(kept, key+"="+value)
}

func (s *vorbisStore) Save() error {
	block := s.comments.Marshal()
	if s.index >= 0 {
		s.file.Meta[s.index] = &block
	} else {
		s.file.Meta = append(s.file.Meta, &block)
		s.index = len(s.file.Meta) - 1
	}
	return s.file.Save(s.path)
}

func (s *vorbisStore) Close() error {
	return nil
}
