package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/handiism/audio-cleaner/internal/audio"
	"github.com/handiism/audio-cleaner/internal/config"
	ioutils "github.com/handiism/audio-cleaner/internal/io"
	"github.com/handiism/audio-cleaner/internal/model"
	"github.com/handiism/audio-cleaner/internal/sanitize"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Phase is the pass a Manager is currently running.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseRename
	PhaseTags
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRename:
		return "Cleaning filenames"
	case PhaseTags:
		return "Updating tags"
	case PhaseDone:
		return "Done"
	default:
		return "Idle"
	}
}

// Stats counts per-file outcomes of a run.
type Stats struct {
	Renamed   int
	Unchanged int
	Tagged    int
	Failed    int
}

// Manager coordinates the rename and tag passes.
type Manager struct {
	settings  *config.Settings
	sanitizer *sanitize.Sanitizer
	tagger    *audio.Tagger

	phase     atomic.Int32
	processed atomic.Int32
	total     atomic.Int32

	renamed   atomic.Int32
	unchanged atomic.Int32
	tagged    atomic.Int32
	failed    atomic.Int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		sanitizer:  sanitize.New(settings.Extensions()),
		tagger:     audio.NewTagger(nil),
		onProgress: onProgress,
	}
}

// Run validates the root and runs the enabled passes in order.
//
// Per-file failures are reported through the progress callback and
// counted; Run itself only fails when the root cannot be walked or ctx is
// cancelled.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.settings.Validate(); err != nil {
		return err
	}

	if m.settings.Rename {
		if err := m.RenameAll(ctx); err != nil {
			return err
		}
	}

	if m.settings.UpdateTags {
		if err := m.TagAll(ctx); err != nil {
			return err
		}
	}

	m.phase.Store(int32(PhaseDone))
	return nil
}

// RenameAll renames every audio file under the root to its cleaned name.
func (m *Manager) RenameAll(ctx context.Context) error {
	files, err := m.startPhase(PhaseRename)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.renameFile(f)
		m.processed.Add(1)
	}
	return nil
}

// TagAll updates tags for every audio file under the root.
func (m *Manager) TagAll(ctx context.Context) error {
	files, err := m.startPhase(PhaseTags)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.tagFile(f)
		m.processed.Add(1)
	}
	return nil
}

// GetProgress returns the current phase and file counters of that phase.
func (m *Manager) GetProgress() (phase Phase, processed, total int32) {
	return Phase(m.phase.Load()), m.processed.Load(), m.total.Load()
}

// Stats returns the outcome counters so far.
func (m *Manager) Stats() Stats {
	return Stats{
		Renamed:   int(m.renamed.Load()),
		Unchanged: int(m.unchanged.Load()),
		Tagged:    int(m.tagged.Load()),
		Failed:    int(m.failed.Load()),
	}
}

func (m *Manager) startPhase(phase Phase) ([]model.AudioFile, error) {
	files, err := ioutils.ListAudioFiles(m.settings.RootPath, m.settings.Extensions(), func(path string, err error) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipped %s: %v", path, err), Level: LevelWarning})
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", m.settings.RootPath, err)
	}

	m.phase.Store(int32(phase))
	m.processed.Store(0)
	m.total.Store(int32(len(files)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %d file(s)", phase, len(files)), Level: LevelInfo})
	return files, nil
}

func (m *Manager) renameFile(f model.AudioFile) {
	cleaned := m.sanitizer.Clean(f.Name)

	renamed, err := ioutils.RenameFile(f, cleaned)
	if err != nil {
		m.failed.Add(1)
		if errors.Is(err, fs.ErrNotExist) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("File not found: %s", f.Path()), Level: LevelError})
			return
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error renaming %s: %v", f.Path(), err), Level: LevelError})
		return
	}

	if !renamed {
		m.unchanged.Add(1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unchanged: %s", f.Path()), Level: LevelVerbose})
		return
	}

	m.renamed.Add(1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Renamed: %q to %q", f.Name, cleaned), Level: LevelSuccess})
}

func (m *Manager) tagFile(f model.AudioFile) {
	path := f.Path()

	result, err := m.tagger.UpdateTags(path)
	if err != nil {
		m.failed.Add(1)
		if errors.Is(err, audio.ErrFileNotFound) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("File not found: %s", path), Level: LevelError})
			return
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", path, err), Level: LevelError})
		return
	}

	m.tagged.Add(1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Updated metadata for %s", path), Level: LevelSuccess})
	if result.TitleWritten || result.ArtistWritten {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("  title=%q artist=%q", result.Info.Title, result.Info.Artist),
			Level:   LevelVerbose,
		})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
