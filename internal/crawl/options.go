package crawl

import (
	"github.com/michaelscutari/fcrawl/internal/fsys"
	"github.com/michaelscutari/fcrawl/internal/logging"
	"github.com/michaelscutari/fcrawl/internal/pathutil"
)

// Options configures the collaborators a crawler uses.
type Options struct {
	// FS lists directories and reads modification times.
	FS fsys.FS

	// Resolver turns the crawl root into an absolute path.
	Resolver *pathutil.Resolver

	// Logger receives debug records about skipped candidates.
	Logger *logging.Logger
}

// DefaultOptions returns options backed by the host filesystem, resolving
// relative roots against the program directory and discarding logs.
func DefaultOptions() *Options {
	return &Options{
		FS:       fsys.OS{},
		Resolver: pathutil.NewResolver(""),
		Logger:   logging.Discard(),
	}
}

// WithFS sets the filesystem.
func (o *Options) WithFS(fs fsys.FS) *Options {
	o.FS = fs
	return o
}

// WithResolver sets the path resolver.
func (o *Options) WithResolver(r *pathutil.Resolver) *Options {
	o.Resolver = r
	return o
}

// WithBaseDir resolves relative roots against dir.
func (o *Options) WithBaseDir(dir string) *Options {
	o.Resolver = pathutil.NewResolver(dir)
	return o
}

// WithLogger sets the logger.
func (o *Options) WithLogger(l *logging.Logger) *Options {
	o.Logger = l
	return o
}

func (o *Options) withDefaults() *Options {
	out := *o
	if out.FS == nil {
		out.FS = fsys.OS{}
	}
	if out.Resolver == nil {
		out.Resolver = pathutil.NewResolver("")
	}
	if out.Logger == nil {
		out.Logger = logging.Discard()
	}
	return &out
}
