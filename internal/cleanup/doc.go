// Package cleanup runs the two passes of audio-cleaner over a directory
// tree.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Walk the root and rename every audio file to its cleaned name
//  2. Walk the root again and write title/artist tags from the new names
//
// Files are processed one at a time. A failure on one file is reported and
// the run moves on to the next; only an unusable root directory stops it.
//
// # Basic Usage
//
//	manager := cleanup.NewManager(settings, func(event cleanup.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	stats := manager.Stats()
//	fmt.Printf("%d renamed, %d tagged, %d failed\n", stats.Renamed, stats.Tagged, stats.Failed)
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress can be polled from another goroutine while Run is going.
package cleanup
