package filter

import (
	"strings"
	"time"

	"github.com/michaelscutari/fcrawl/internal/errs"
)

// MatchMode selects how a pattern is anchored against a candidate name.
type MatchMode uint8

const (
	PrefixMatch MatchMode = iota + 1
	Substring
	SuffixMatch
)

func (m MatchMode) String() string {
	switch m {
	case PrefixMatch:
		return "prefix"
	case Substring:
		return "substring"
	case SuffixMatch:
		return "suffix"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of the defined modes.
func (m MatchMode) Valid() bool {
	return m >= PrefixMatch && m <= SuffixMatch
}

// ParseMatchMode parses a mode name. Matching is case-insensitive.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix", "startswith":
		return PrefixMatch, nil
	case "substring", "contains":
		return Substring, nil
	case "suffix", "endswith":
		return SuffixMatch, nil
	}
	return 0, errs.Configf(errs.InvalidMode, "%q (expected prefix|substring|suffix)", s)
}

// Policy holds the filters applied to crawl candidates.
// It must not be mutated while a crawl is running.
type Policy struct {
	minDate    time.Time
	maxDate    time.Time
	hasRange   bool
	patterns   []string
	mode       MatchMode
	descending bool
}

// NewPolicy returns a policy that accepts everything and sorts newest first.
func NewPolicy() *Policy {
	return &Policy{
		mode:       Substring,
		descending: true,
	}
}

// SetDateRange restricts candidates to modification times strictly between
// min and max. Existing bounds are left untouched on error.
func (p *Policy) SetDateRange(min, max time.Time) error {
	if min.After(max) {
		return errs.Configf(errs.InvalidRange, "min date %s must not be after max date %s",
			min.Format(time.RFC3339), max.Format(time.RFC3339))
	}
	p.minDate = min
	p.maxDate = max
	p.hasRange = true
	return nil
}

// ClearDateRange disables date filtering.
func (p *Policy) ClearDateRange() {
	p.minDate = time.Time{}
	p.maxDate = time.Time{}
	p.hasRange = false
}

// DateRange returns the configured bounds; ok is false when unset.
func (p *Policy) DateRange() (min, max time.Time, ok bool) {
	return p.minDate, p.maxDate, p.hasRange
}

// AddPattern adds a string filter. Adding a pattern twice has no effect.
func (p *Policy) AddPattern(text string) {
	for _, existing := range p.patterns {
		if existing == text {
			return
		}
	}
	p.patterns = append(p.patterns, text)
}

// Patterns returns a copy of the patterns in insertion order.
func (p *Policy) Patterns() []string {
	out := make([]string, len(p.patterns))
	copy(out, p.patterns)
	return out
}

// SetMatchMode sets how patterns are anchored.
func (p *Policy) SetMatchMode(mode MatchMode) error {
	if !mode.Valid() {
		return errs.Configf(errs.InvalidMode, "%d is not a match mode", mode)
	}
	p.mode = mode
	return nil
}

// Mode returns the active match mode.
func (p *Policy) Mode() MatchMode {
	return p.mode
}

// SetSortOrder sets whether results are ordered newest first.
func (p *Policy) SetSortOrder(descending bool) {
	p.descending = descending
}

// Descending reports whether results are ordered newest first.
func (p *Policy) Descending() bool {
	return p.descending
}

// MatchesString reports whether candidate matches at least one pattern.
// With no patterns every candidate matches.
func (p *Policy) MatchesString(candidate string) bool {
	if len(p.patterns) == 0 {
		return true
	}
	for _, pattern := range p.patterns {
		if p.match(pattern, candidate) {
			return true
		}
	}
	return false
}

func (p *Policy) match(pattern, candidate string) bool {
	switch p.mode {
	case PrefixMatch:
		return strings.HasPrefix(candidate, pattern)
	case SuffixMatch:
		return strings.HasSuffix(candidate, pattern)
	default:
		return strings.Contains(candidate, pattern)
	}
}

// MatchesDate reports whether ts lies strictly inside the configured range.
// Both bounds are exclusive. With no range every timestamp matches.
func (p *Policy) MatchesDate(ts time.Time) bool {
	if !p.hasRange {
		return true
	}
	return p.minDate.Before(ts) && ts.Before(p.maxDate)
}
