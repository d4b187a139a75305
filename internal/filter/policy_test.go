package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/michaelscutari/fcrawl/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewPolicyDefaults(t *testing.T) {
	p := NewPolicy()
	assert.Equal(t, Substring, p.Mode())
	assert.True(t, p.Descending())
	assert.Empty(t, p.Patterns())

	_, _, ok := p.DateRange()
	assert.False(t, ok)
	assert.True(t, p.MatchesDate(time.Time{}))
	assert.True(t, p.MatchesDate(t0))
}

func TestMatchesDateBoundsAreExclusive(t *testing.T) {
	p := NewPolicy()
	min, max := t0, t0.Add(time.Hour)
	require.NoError(t, p.SetDateRange(min, max))

	assert.False(t, p.MatchesDate(min), "equal to min")
	assert.False(t, p.MatchesDate(max), "equal to max")
	assert.True(t, p.MatchesDate(min.Add(time.Nanosecond)))
	assert.True(t, p.MatchesDate(min.Add(30*time.Minute)))
	assert.True(t, p.MatchesDate(max.Add(-time.Nanosecond)))
	assert.False(t, p.MatchesDate(min.Add(-time.Second)))
	assert.False(t, p.MatchesDate(max.Add(time.Second)))
}

func TestSetDateRangeRejectsInvertedBounds(t *testing.T) {
	p := NewPolicy()
	require.NoError(t, p.SetDateRange(t0, t0.Add(time.Hour)))

	err := p.SetDateRange(t0.Add(2*time.Hour), t0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidRange))
	assert.True(t, errors.Is(err, errs.ErrConfiguration))

	min, max, ok := p.DateRange()
	assert.True(t, ok)
	assert.Equal(t, t0, min)
	assert.Equal(t, t0.Add(time.Hour), max)
}

func TestSetDateRangeEqualBoundsMatchesNothing(t *testing.T) {
	p := NewPolicy()
	require.NoError(t, p.SetDateRange(t0, t0))
	assert.False(t, p.MatchesDate(t0))
}

func TestClearDateRange(t *testing.T) {
	p := NewPolicy()
	require.NoError(t, p.SetDateRange(t0, t0.Add(time.Minute)))
	p.ClearDateRange()
	assert.True(t, p.MatchesDate(t0.Add(-24*time.Hour)))
}

func TestAddPatternIsIdempotent(t *testing.T) {
	p := NewPolicy()
	p.AddPattern(".txt")
	p.AddPattern(".txt")
	assert.Equal(t, []string{".txt"}, p.Patterns())

	p.AddPattern("log")
	p.AddPattern(".txt")
	assert.Equal(t, []string{".txt", "log"}, p.Patterns())
}

func TestPatternsReturnsCopy(t *testing.T) {
	p := NewPolicy()
	p.AddPattern("a")
	got := p.Patterns()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, p.Patterns())
}

func TestMatchesStringEmptyPatterns(t *testing.T) {
	p := NewPolicy()
	for _, candidate := range []string{"", "x", ".hidden", "a b c"} {
		assert.True(t, p.MatchesString(candidate), candidate)
	}
}

func TestMatchesString(t *testing.T) {
	tests := []struct {
		name      string
		mode      MatchMode
		patterns  []string
		candidate string
		want      bool
	}{
		{"prefix hit", PrefixMatch, []string{"rep"}, "report.txt", true},
		{"prefix miss", PrefixMatch, []string{"port"}, "report.txt", false},
		{"prefix longer than candidate", PrefixMatch, []string{"report.txt.bak"}, "report.txt", false},
		{"prefix whole", PrefixMatch, []string{"report.txt"}, "report.txt", true},
		{"substring hit", Substring, []string{"port"}, "report.txt", true},
		{"substring miss", Substring, []string{"xyz"}, "report.txt", false},
		{"suffix hit", SuffixMatch, []string{".txt"}, "x.txt", true},
		{"suffix miss", SuffixMatch, []string{".txt"}, "y.log", false},
		{"suffix longer than candidate", SuffixMatch, []string{"long.txt"}, ".txt", false},
		{"case sensitive", Substring, []string{"TXT"}, "x.txt", false},
		{"no wildcards", Substring, []string{"*.txt"}, "x.txt", false},
		{"any of several", SuffixMatch, []string{".md", ".log"}, "y.log", true},
		{"empty pattern matches", PrefixMatch, []string{""}, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy()
			require.NoError(t, p.SetMatchMode(tt.mode))
			for _, pattern := range tt.patterns {
				p.AddPattern(pattern)
			}
			assert.Equal(t, tt.want, p.MatchesString(tt.candidate))
		})
	}
}

func TestSetMatchModeRejectsUnknown(t *testing.T) {
	p := NewPolicy()
	for _, mode := range []MatchMode{0, SuffixMatch + 1, 255} {
		err := p.SetMatchMode(mode)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidMode))
	}
	assert.Equal(t, Substring, p.Mode())
}

func TestParseMatchMode(t *testing.T) {
	for _, mode := range []MatchMode{PrefixMatch, Substring, SuffixMatch} {
		got, err := ParseMatchMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	aliases := map[string]MatchMode{
		"StartsWith": PrefixMatch,
		" contains ": Substring,
		"ENDSWITH":   SuffixMatch,
	}
	for in, want := range aliases {
		got, err := ParseMatchMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMatchMode("glob")
	assert.True(t, errors.Is(err, errs.ErrInvalidMode))
}
