// Package fsys exposes the two filesystem capabilities a crawl needs:
// listing a directory and reading a modification time.
package fsys

import (
	"os"
	"path/filepath"
	"time"

	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/michaelscutari/fcrawl/internal/errs"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name      string
	Path      string
	Kind      entry.Kind // Kind of the entry itself, without following links
	IsDir     bool       // Follows symlinks
	IsFile    bool       // Follows symlinks; regular files only
	IsSymlink bool
}

// FS lists directories and reads modification times.
type FS interface {
	ListEntries(path string) ([]Entry, error)
	ModTime(path string) (time.Time, error)
}

// OS is the FS backed by the host operating system.
type OS struct{}

// ListEntries returns the children of path sorted by name. The directory
// handle is closed before returning.
func (OS) ListEntries(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errs.Classify("list", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		childPath := filepath.Join(path, de.Name())
		e := Entry{
			Name: de.Name(),
			Path: childPath,
			Kind: entry.KindFromMode(de.Type()),
		}

		switch e.Kind {
		case entry.KindDir:
			e.IsDir = true
		case entry.KindFile:
			e.IsFile = true
		case entry.KindSymlink:
			e.IsSymlink = true
			// Broken links are neither file nor directory.
			if info, err := os.Stat(childPath); err == nil {
				e.IsDir = info.IsDir()
				e.IsFile = info.Mode().IsRegular()
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ModTime returns the modification time of path, following symlinks.
func (OS) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errs.Classify("stat", path, err)
	}
	return info.ModTime(), nil
}
