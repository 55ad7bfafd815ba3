// Package model defines the core data structures used throughout
// the audio-cleaner application.
//
// # AudioFile
//
// AudioFile is a file found under the scanned root:
//
//	f := model.NewAudioFile("/music/Daft Punk - One More Time.MP3")
//	fmt.Println(f.Ext())      // ".mp3"
//	fmt.Println(f.BaseName()) // "Daft Punk - One More Time"
//
// # TrackInfo
//
// TrackInfo is the (artist, title) pair read from a cleaned base name:
//
//	info := model.ParseTrackInfo("Daft Punk - One More Time")
//	// info.Artist = "Daft Punk", info.Title = "One More Time"
package model
