// Package errs defines the error taxonomy shared by the filter and crawl packages.
//
// Configuration errors are returned by setters before a crawl begins. Access
// errors come from the filesystem and abort the crawl that hit them.
package errs

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinels matched through errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrInvalidMode   = errors.New("invalid match mode")
	ErrInvalidKind   = errors.New("invalid crawler kind")

	ErrAccess     = errors.New("filesystem access error")
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
	ErrVanished   = errors.New("vanished during crawl")
)

// ConfigKind identifies the configuration value that was rejected.
type ConfigKind uint8

const (
	InvalidRange ConfigKind = iota
	InvalidMode
	InvalidKind
)

func (k ConfigKind) String() string {
	switch k {
	case InvalidRange:
		return "invalid range"
	case InvalidMode:
		return "invalid mode"
	default:
		return "invalid kind"
	}
}

// ConfigError is returned when a filter or crawler setting is rejected.
type ConfigError struct {
	Kind ConfigKind
	Msg  string
}

// Configf builds a ConfigError with a formatted message.
func Configf(kind ConfigKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches ErrConfiguration and the sentinel for e.Kind.
func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return true
	case ErrInvalidRange:
		return e.Kind == InvalidRange
	case ErrInvalidMode:
		return e.Kind == InvalidMode
	case ErrInvalidKind:
		return e.Kind == InvalidKind
	}
	return false
}

// AccessKind classifies a filesystem failure.
type AccessKind uint8

const (
	Other AccessKind = iota
	NotFound
	PermissionDenied
	Vanished
)

func (k AccessKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case Vanished:
		return "vanished"
	default:
		return "access failed"
	}
}

// AccessError wraps an OS error raised while listing or stat-ing a path.
type AccessError struct {
	Op   string
	Path string
	Kind AccessKind
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is matches ErrAccess and the sentinel for e.Kind.
func (e *AccessError) Is(target error) bool {
	switch target {
	case ErrAccess:
		return true
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrPermission:
		return e.Kind == PermissionDenied
	case ErrVanished:
		return e.Kind == Vanished
	}
	return false
}

// Classify wraps an OS error in an AccessError. A nil err returns nil.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ae *AccessError
	if errors.As(err, &ae) {
		return err
	}
	kind := Other
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = PermissionDenied
	}
	return &AccessError{Op: op, Path: path, Kind: kind, Err: err}
}

// MarkVanished reclassifies a not-found AccessError as Vanished. Used when an
// entry disappears between being listed and being stat-ed.
func MarkVanished(err error) error {
	var ae *AccessError
	if errors.As(err, &ae) && ae.Kind == NotFound {
		return &AccessError{Op: ae.Op, Path: ae.Path, Kind: Vanished, Err: ae.Err}
	}
	return err
}
