// Package crawl enumerates directories and files beneath a root, filters them
// through a filter.Policy and returns them sorted by modification time.
//
// Three crawlers share the same filtering: DirCrawler (immediate child
// directories), FileCrawler (immediate child files) and RecursiveCrawler
// (files in every directory of the tree). Crawls are synchronous and any
// filesystem error aborts the crawl.
package crawl

import (
	"strings"
	"time"

	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/michaelscutari/fcrawl/internal/errs"
	"github.com/michaelscutari/fcrawl/internal/filter"
	"github.com/michaelscutari/fcrawl/internal/fsys"
	"github.com/michaelscutari/fcrawl/internal/logging"
	"github.com/michaelscutari/fcrawl/internal/pathutil"
)

// Crawler produces the filtered, sorted directories found under a root path.
type Crawler interface {
	Crawl(path string) ([]entry.Dir, error)
}

// Kind selects a crawler variant.
type Kind uint8

const (
	KindDirs Kind = iota
	KindFiles
	KindRecursive
)

func (k Kind) String() string {
	switch k {
	case KindDirs:
		return "dirs"
	case KindFiles:
		return "files"
	case KindRecursive:
		return "recursive"
	default:
		return "invalid"
	}
}

// ParseKind parses a crawler name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dirs", "dir", "directories":
		return KindDirs, nil
	case "files", "file":
		return KindFiles, nil
	case "recursive", "tree":
		return KindRecursive, nil
	}
	return 0, errs.Configf(errs.InvalidKind, "%q (expected dirs|files|recursive)", s)
}

// New builds the crawler for kind. A nil policy accepts everything; nil
// options mean DefaultOptions.
func New(kind Kind, policy *filter.Policy, opts *Options) (Crawler, error) {
	switch kind {
	case KindDirs:
		return NewDirCrawler(policy, opts), nil
	case KindFiles:
		return NewFileCrawler(policy, opts), nil
	case KindRecursive:
		return NewRecursiveCrawler(policy, opts), nil
	}
	return nil, errs.Configf(errs.InvalidKind, "%d is not a crawler kind", kind)
}

// base holds what every crawler variant shares.
type base struct {
	policy   *filter.Policy
	fs       fsys.FS
	resolver *pathutil.Resolver
	log      *logging.Logger
}

func newBase(kind Kind, policy *filter.Policy, opts *Options) base {
	if policy == nil {
		policy = filter.NewPolicy()
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = opts.withDefaults()
	return base{
		policy:   policy,
		fs:       opts.FS,
		resolver: opts.Resolver,
		log:      opts.Logger.WithCrawler(kind.String()),
	}
}

// Policy returns the filter policy the crawler applies.
func (b *base) Policy() *filter.Policy {
	return b.policy
}

func (b *base) resolve(path string) (string, error) {
	return b.resolver.Resolve(path)
}

// accept runs the string filter on name and, only if it passes, fetches the
// timestamp of path and runs the date filter. The timestamp is returned so
// callers do not stat twice.
func (b *base) accept(log *logging.Logger, name, path string) (time.Time, bool, error) {
	if !b.policy.MatchesString(name) {
		log.Debug("skip: name filter", "name", name)
		return time.Time{}, false, nil
	}
	modTime, err := b.fs.ModTime(path)
	if err != nil {
		// Listed a moment ago, so not-found here means it went away mid-crawl.
		return time.Time{}, false, errs.MarkVanished(err)
	}
	if !b.policy.MatchesDate(modTime) {
		log.Debug("skip: date filter", "name", name, "mod_time", modTime)
		return modTime, false, nil
	}
	return modTime, true, nil
}
