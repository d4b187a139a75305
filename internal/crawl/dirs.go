package crawl

import (
	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/michaelscutari/fcrawl/internal/filter"
)

// DirCrawler returns the immediate child directories of the root. The
// directories are not descended into, so their Files are always empty.
type DirCrawler struct {
	base
}

// NewDirCrawler creates a sibling-directory crawler.
func NewDirCrawler(policy *filter.Policy, opts *Options) *DirCrawler {
	return &DirCrawler{base: newBase(KindDirs, policy, opts)}
}

// Crawl lists path and returns the matching child directories sorted by
// their own modification time.
func (c *DirCrawler) Crawl(path string) ([]entry.Dir, error) {
	root, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	log := c.log.WithRoot(root)

	children, err := c.fs.ListEntries(root)
	if err != nil {
		return nil, err
	}

	result := []entry.Dir{}
	for _, child := range children {
		if !child.IsDir {
			continue
		}
		modTime, ok, err := c.accept(log, child.Name, child.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		result = append(result, entry.Dir{
			Path:    child.Path,
			ModTime: modTime,
			Files:   []entry.File{},
		})
	}

	entry.SortDirs(result, c.policy.Descending())
	log.Debug("crawl complete", "dirs", len(result), "listed", len(children))
	return result, nil
}
