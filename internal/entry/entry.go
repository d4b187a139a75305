package entry

import (
	"os"
	"sort"
	"time"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from an os.FileMode.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// File is a file that passed the active filters.
type File struct {
	Name    string    `json:"name" yaml:"name"` // Base name, not a full path
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// Dir is a directory produced by a crawl, with the files found in it.
type Dir struct {
	Path    string    `json:"path" yaml:"path"` // Always absolute
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
	Files   []File    `json:"files" yaml:"files"`
}

// SortFiles orders Files by modification time.
func (d *Dir) SortFiles(descending bool) {
	sort.SliceStable(d.Files, func(i, j int) bool {
		if descending {
			return d.Files[i].ModTime.After(d.Files[j].ModTime)
		}
		return d.Files[i].ModTime.Before(d.Files[j].ModTime)
	})
}

// Empty reports whether no files were collected.
func (d *Dir) Empty() bool {
	return len(d.Files) == 0
}

// FileCount returns the number of collected files.
func (d *Dir) FileCount() int {
	return len(d.Files)
}

// SortDirs orders a crawl result by each directory's own modification time.
func SortDirs(dirs []Dir, descending bool) {
	sort.SliceStable(dirs, func(i, j int) bool {
		if descending {
			return dirs[i].ModTime.After(dirs[j].ModTime)
		}
		return dirs[i].ModTime.Before(dirs[j].ModTime)
	})
}
