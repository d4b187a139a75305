package crawl

import (
	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/michaelscutari/fcrawl/internal/filter"
)

// FileCrawler returns the immediate child files of the root as one Dir.
type FileCrawler struct {
	base
}

// NewFileCrawler creates a sibling-file crawler.
func NewFileCrawler(policy *filter.Policy, opts *Options) *FileCrawler {
	return &FileCrawler{base: newBase(KindFiles, policy, opts)}
}

// CrawlDir returns the root with its matching files sorted by modification
// time. It returns nil, nil when no file matched, so callers can tell an
// unmatched directory apart from a populated one.
func (c *FileCrawler) CrawlDir(path string) (*entry.Dir, error) {
	root, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	log := c.log.WithRoot(root)

	rootModTime, err := c.fs.ModTime(root)
	if err != nil {
		return nil, err
	}
	dir := &entry.Dir{Path: root, ModTime: rootModTime}

	children, err := c.fs.ListEntries(root)
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		// Only regular files are candidates, which also drops dot directories
		// while keeping dotfiles such as .env.
		if !child.IsFile {
			continue
		}
		modTime, ok, err := c.accept(log, child.Name, child.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		dir.Files = append(dir.Files, entry.File{Name: child.Name, ModTime: modTime})
	}

	if dir.Empty() {
		log.Debug("crawl complete: no matching files", "listed", len(children))
		return nil, nil
	}

	dir.SortFiles(c.policy.Descending())
	log.Debug("crawl complete", "files", dir.FileCount(), "listed", len(children))
	return dir, nil
}

// Crawl is CrawlDir as a zero or one element slice.
func (c *FileCrawler) Crawl(path string) ([]entry.Dir, error) {
	dir, err := c.CrawlDir(path)
	if err != nil {
		return nil, err
	}
	if dir == nil {
		return []entry.Dir{}, nil
	}
	return []entry.Dir{*dir}, nil
}
