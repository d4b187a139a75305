package crawl

import (
	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/michaelscutari/fcrawl/internal/errs"
	"github.com/michaelscutari/fcrawl/internal/filter"
	"github.com/michaelscutari/fcrawl/internal/fsys"
	"github.com/michaelscutari/fcrawl/internal/logging"
)

// RecursiveCrawler returns every directory in the tree that holds at least
// one matching file.
type RecursiveCrawler struct {
	base
}

// NewRecursiveCrawler creates a recursive-file crawler.
func NewRecursiveCrawler(policy *filter.Policy, opts *Options) *RecursiveCrawler {
	return &RecursiveCrawler{base: newBase(KindRecursive, policy, opts)}
}

// Crawl walks path depth-first, parent before children and children in name
// order. Directories are returned in visit order; each one's files are
// sorted by modification time. Symlinked directories are not descended into.
func (c *RecursiveCrawler) Crawl(path string) ([]entry.Dir, error) {
	root, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	log := c.log.WithRoot(root)

	result := []entry.Dir{}
	visited := 0
	if err := c.walk(log, root, 0, &result, &visited); err != nil {
		return nil, err
	}

	log.Debug("crawl complete", "dirs", len(result), "visited", visited)
	return result, nil
}

func (c *RecursiveCrawler) walk(log *logging.Logger, dirPath string, depth int, result *[]entry.Dir, visited *int) error {
	*visited++

	children, err := c.fs.ListEntries(dirPath)
	if err != nil {
		if depth > 0 {
			// Listed by its parent a moment ago.
			return errs.MarkVanished(err)
		}
		return err
	}

	var files []fsys.Entry
	var subdirs []string
	for _, child := range children {
		switch {
		case child.IsDir:
			if !child.IsSymlink {
				subdirs = append(subdirs, child.Path)
			}
		case child.IsFile:
			files = append(files, child)
		}
	}

	if len(files) > 0 {
		if err := c.collect(log, dirPath, files, result); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		if err := c.walk(log, sub, depth+1, result, visited); err != nil {
			return err
		}
	}
	return nil
}

func (c *RecursiveCrawler) collect(log *logging.Logger, dirPath string, files []fsys.Entry, result *[]entry.Dir) error {
	// dirPath was listed successfully just before, so not-found means it went away.
	modTime, err := c.fs.ModTime(dirPath)
	if err != nil {
		return errs.MarkVanished(err)
	}
	dir := entry.Dir{Path: dirPath, ModTime: modTime}

	for _, f := range files {
		fileModTime, ok, err := c.accept(log, f.Name, f.Path)
		if err != nil {
			return err
		}
		if ok {
			dir.Files = append(dir.Files, entry.File{Name: f.Name, ModTime: fileModTime})
		}
	}

	if dir.Empty() {
		log.Debug("skip dir: no matching files", "dir", dirPath, "files", len(files))
		return nil
	}

	dir.SortFiles(c.policy.Descending())
	*result = append(*result, dir)
	return nil
}
