package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalize returns a canonical filesystem path string.
// It removes trailing slashes, collapses "." and "..", and
// preserves relative paths when provided.
func Normalize(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// ProgramDir returns the absolute directory of the running program as
// invoked (os.Args[0]). Relative crawl roots are resolved against it rather
// than against the working directory. A bare program name found through
// $PATH carries no directory, so the executable's location is used instead.
func ProgramDir() string {
	arg0 := os.Args[0]
	if !strings.ContainsRune(arg0, filepath.Separator) && !strings.ContainsRune(arg0, '/') {
		if exe, err := os.Executable(); err == nil {
			return filepath.Dir(exe)
		}
	}
	dir := filepath.Dir(arg0)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return Normalize(dir)
}

// Resolver turns possibly relative paths into absolute ones.
type Resolver struct {
	Base string
}

// NewResolver creates a resolver rooted at base. An empty base means ProgramDir.
func NewResolver(base string) *Resolver {
	if base == "" {
		base = ProgramDir()
	}
	return &Resolver{Base: base}
}

// Resolve returns path as an absolute, cleaned path. Relative paths are joined
// onto r.Base.
func (r *Resolver) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return Normalize(path), nil
	}
	base := r.Base
	if base == "" {
		base = ProgramDir()
	}
	abs, err := filepath.Abs(filepath.Join(base, path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}
