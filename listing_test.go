package filebrowser_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-theft-auto/filebrowser"
)

func TestReadEntriesSortsDirectoriesFirst(t *testing.T) {
	dir := fixtureDir(t)

	tests := []struct {
		name       string
		showHidden bool
		want       []string
	}{
		{
			name:       "hidden excluded",
			showHidden: false,
			want:       []string{"A", "b.txt"},
		},
		{
			name:       "hidden sorts among files by path",
			showHidden: true,
			want:       []string{"A", ".hidden", "b.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := filebrowser.ReadEntries(dir, tt.showHidden)
			if err != nil {
				t.Fatalf("ReadEntries: %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries %v, want %v", len(entries), entries, tt.want)
			}
			for i, name := range tt.want {
				if entries[i].Name != name {
					t.Errorf("entry %d = %q, want %q", i, entries[i].Name, name)
				}
				if entries[i].Path != filepath.Join(dir, name) {
					t.Errorf("entry %d path = %q", i, entries[i].Path)
				}
			}
			if !entries[0].IsDir {
				t.Error("first entry should be the directory")
			}
		})
	}
}

func TestReadEntriesDeterministicOrder(t *testing.T) {
	dir := fixtureDir(t)

	first, err := filebrowser.ReadEntries(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := filebrowser.ReadEntries(dir, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("entry count changed between reads")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("order changed between reads: %v vs %v", again, first)
			}
		}
	}
}

func TestReadEntriesMissingDir(t *testing.T) {
	_, err := filebrowser.ReadEntries(filepath.Join(t.TempDir(), "nope"), false)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestReadEntriesSkipsBrokenSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatal(err)
	}

	entries, err := filebrowser.ReadEntries(dir, true)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "ok.txt" {
		t.Errorf("entries = %v, want just ok.txt", entries)
	}
}

func TestReadEntriesFollowsSymlinkedDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "alias")); err != nil {
		t.Fatal(err)
	}

	entries, err := filebrowser.ReadEntries(dir, false)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	var alias *filebrowser.Entry
	for i := range entries {
		if entries[i].Name == "alias" {
			alias = &entries[i]
		}
	}
	if alias == nil {
		t.Fatal("symlinked directory missing from listing")
	}
	if !alias.IsDir {
		t.Error("symlinked directory should list as a directory")
	}
}
