package ioutils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/audio-cleaner/internal/model"
	"github.com/karrick/godirwalk"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(filepath.Base(path)), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListAudioFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp3"))
	touch(t, filepath.Join(root, "a.FLAC"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "deep", "c.mp3"))
	touch(t, filepath.Join(root, "sub", "cover.jpg"))

	files, err := ListAudioFiles(root, []string{".mp3", ".flac"}, nil)
	if err != nil {
		t.Fatalf("ListAudioFiles() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a.FLAC"),
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "sub", "deep", "c.mp3"),
	}
	if len(files) != len(want) {
		t.Fatalf("ListAudioFiles() returned %d files, want %d: %v", len(files), len(want), files)
	}
	for i, f := range files {
		if f.Path() != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, f.Path(), want[i])
		}
	}
}

func TestListAudioFiles_MissingRoot(t *testing.T) {
	_, err := ListAudioFiles(filepath.Join(t.TempDir(), "missing"), []string{".mp3"}, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ListAudioFiles() error = %v, want fs.ErrNotExist", err)
	}
}

func TestListAudioFiles_SkipsUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp3"))
	touch(t, filepath.Join(root, "locked", "b.mp3"))
	touch(t, filepath.Join(root, "open", "c.mp3"))

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	var skipped []string
	files, err := ListAudioFiles(root, []string{".mp3"}, func(path string, err error) {
		skipped = append(skipped, path)
	})
	if err != nil {
		t.Fatalf("ListAudioFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("ListAudioFiles() = %v, want a.mp3 and open/c.mp3", files)
	}
	if len(skipped) != 1 || skipped[0] != locked {
		t.Errorf("skipped = %v, want [%s]", skipped, locked)
	}
}

func TestSkipUnreadable(t *testing.T) {
	root := t.TempDir()
	cause := errors.New("read failed")

	tests := []struct {
		name     string
		path     string
		want     godirwalk.ErrorAction
		reported bool
	}{
		{"root halts", root, godirwalk.Halt, false},
		{"root with trailing slash halts", root + string(filepath.Separator), godirwalk.Halt, false},
		{"subdirectory is skipped", filepath.Join(root, "gone"), godirwalk.SkipNode, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reported string
			action := skipUnreadable(root, func(path string, err error) {
				if !errors.Is(err, cause) {
					t.Errorf("onSkip error = %v, want %v", err, cause)
				}
				reported = path
			})(tt.path, cause)

			if action != tt.want {
				t.Errorf("action = %v, want %v", action, tt.want)
			}
			if (reported != "") != tt.reported {
				t.Errorf("reported = %q, want reported %v", reported, tt.reported)
			}
		})
	}

	if got := skipUnreadable(root, nil)(filepath.Join(root, "x"), cause); got != godirwalk.SkipNode {
		t.Errorf("nil onSkip: action = %v, want SkipNode", got)
	}
}

func TestRenameFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Song (HD).mp3"))
	f := model.AudioFile{Dir: dir, Name: "Song (HD).mp3"}

	renamed, err := RenameFile(f, "Song.mp3")
	if err != nil {
		t.Fatalf("RenameFile() error = %v", err)
	}
	if !renamed {
		t.Error("RenameFile() = false, want true")
	}
	if _, err := os.Stat(filepath.Join(dir, "Song.mp3")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Song (HD).mp3")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("original file still present: %v", err)
	}
}

func TestRenameFile_SameName(t *testing.T) {
	// The file does not exist: an unchanged name must not reach the file system.
	f := model.AudioFile{Dir: t.TempDir(), Name: "Song.mp3"}

	renamed, err := RenameFile(f, "Song.mp3")
	if err != nil || renamed {
		t.Errorf("RenameFile() = %v, %v, want false, nil", renamed, err)
	}
}

func TestRenameFile_TargetExists(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Song (HD).mp3"))
	touch(t, filepath.Join(dir, "Song.mp3"))
	f := model.AudioFile{Dir: dir, Name: "Song (HD).mp3"}

	renamed, err := RenameFile(f, "Song.mp3")
	if !errors.Is(err, ErrTargetExists) {
		t.Errorf("RenameFile() error = %v, want ErrTargetExists", err)
	}
	if renamed {
		t.Error("RenameFile() = true, want false")
	}

	data, err := os.ReadFile(filepath.Join(dir, "Song.mp3"))
	if err != nil || string(data) != "Song.mp3" {
		t.Errorf("existing target was modified: %q, %v", data, err)
	}
}

func TestRenameFile_MissingSource(t *testing.T) {
	f := model.AudioFile{Dir: t.TempDir(), Name: "gone (HD).mp3"}

	_, err := RenameFile(f, "gone.mp3")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("RenameFile() error = %v, want fs.ErrNotExist", err)
	}
}
