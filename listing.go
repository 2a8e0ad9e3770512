package filebrowser

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is one filesystem item within a listed directory.
type Entry struct {
	Path  string // full path of the entry
	Name  string // base name
	IsDir bool
}

// ReadEntries lists dir and returns its visible entries, sorted for
// display: directories before files, each group ordered by path.
//
// When showHidden is false, entries whose name starts with "." are
// excluded. Raising showHidden from false to true only ever grows the
// visible set.
//
// The listing is read fresh on every call so external filesystem
// changes show up on the next frame. Entries that vanish between the
// directory read and the metadata read are skipped, as are entries
// that are neither directories nor regular files.
func ReadEntries(dir string, showHidden bool) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)

		// Stat (not Lstat) so symlinked directories browse like
		// directories. A failure here is a race with an external
		// delete or a broken link; skip the entry.
		info, err := os.Stat(full)
		if err != nil {
			continue
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, Entry{Path: full, Name: name, IsDir: info.IsDir()})
	}

	sortEntries(entries)
	return entries, nil
}

// sortEntries orders directories before files to make navigation
// easier, then by path within each kind. Paths within one directory
// are unique, so the order is a deterministic total order.
func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// ancestorChain returns dir and every ancestor up to the filesystem
// root, ordered root first. Used for the breadcrumb row.
func ancestorChain(dir string) []string {
	dir = filepath.Clean(dir)
	var chain []string
	for {
		chain = append(chain, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	slices.Reverse(chain)
	return chain
}
