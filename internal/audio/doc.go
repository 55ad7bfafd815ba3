// Package audio reads and writes title/artist tags on audio files.
//
// # Tag stores
//
// Store is a small get/set/save view over a file's tags. OpenStore picks
// the implementation from the file extension:
//   - .mp3: ID3v2 (a fresh tag is created when the file has none)
//   - .flac: Vorbis comment block (created when absent)
//   - .m4a, .aac, .ogg, .wav, .wma: TagLib
//
// Open failures are classified with sentinel errors:
//
//	store, err := audio.OpenStore(path)
//	if errors.Is(err, audio.ErrFileNotFound) {
//	    // file vanished since the walk
//	}
//
// # Tagger
//
// Tagger derives artist and title from a cleaned filename and writes them:
//
//	tagger := audio.NewTagger(nil) // uses OpenStore
//	result, err := tagger.UpdateTags("/music/Daft Punk - One More Time.mp3")
//	// result.Title = "One More Time", result.Artist = "Daft Punk"
package audio
