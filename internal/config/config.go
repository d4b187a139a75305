package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/filter"

	"gopkg.in/yaml.v3"
)

// DateLayouts are the accepted formats for min_date/max_date and the CLI
// --since/--until flags, tried in order.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Config represents fcrawl configuration options
type Config struct {
	// Kind is the crawler variant: dirs, files or recursive
	Kind string `yaml:"kind"`

	// Root is the directory to crawl when none is given on the command line
	Root string `yaml:"root"`

	// Patterns are the string filters; a candidate must match one of them
	Patterns []string `yaml:"patterns"`

	// MatchMode anchors patterns: prefix, substring or suffix
	MatchMode string `yaml:"match_mode"`

	// MinDate and MaxDate bound modification times (exclusive); both or neither
	MinDate string `yaml:"min_date"`
	MaxDate string `yaml:"max_date"`

	// Order is desc (newest first) or asc
	Order string `yaml:"order"`

	// BaseDir is where relative roots are resolved; empty means the program's directory
	BaseDir string `yaml:"base_dir"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format selects output: text, json or yaml
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Kind:      "files",
		Root:      ".",
		MatchMode: "substring",
		Order:     "desc",
		LogLevel:  "warn",
		Format:    "text",
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&fileCfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge copies the non-zero values of other onto c.
func (c *Config) Merge(other *Config) {
	if other.Kind != "" {
		c.Kind = other.Kind
	}
	if other.Root != "" {
		c.Root = other.Root
	}
	if len(other.Patterns) > 0 {
		c.Patterns = append([]string(nil), other.Patterns...)
	}
	if other.MatchMode != "" {
		c.MatchMode = other.MatchMode
	}
	if other.MinDate != "" {
		c.MinDate = other.MinDate
	}
	if other.MaxDate != "" {
		c.MaxDate = other.MaxDate
	}
	if other.Order != "" {
		c.Order = other.Order
	}
	if other.BaseDir != "" {
		c.BaseDir = other.BaseDir
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Format != "" {
		c.Format = other.Format
	}
}

// Validate checks every field without building anything.
func (c *Config) Validate() error {
	if _, err := crawl.ParseKind(c.Kind); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q (expected text|json|yaml)", c.Format)
	}
	_, err := c.Policy()
	return err
}

// CrawlKind returns the configured crawler variant.
func (c *Config) CrawlKind() (crawl.Kind, error) {
	return crawl.ParseKind(c.Kind)
}

// Descending reports whether Order asks for newest first.
func (c *Config) Descending() (bool, error) {
	switch strings.ToLower(c.Order) {
	case "", "desc", "descending":
		return true, nil
	case "asc", "ascending":
		return false, nil
	}
	return false, fmt.Errorf("invalid order %q (expected asc|desc)", c.Order)
}

// Policy builds a filter policy from the configuration.
func (c *Config) Policy() (*filter.Policy, error) {
	p := filter.NewPolicy()

	mode, err := filter.ParseMatchMode(c.MatchMode)
	if err != nil {
		return nil, err
	}
	if err := p.SetMatchMode(mode); err != nil {
		return nil, err
	}

	for _, pattern := range c.Patterns {
		p.AddPattern(pattern)
	}

	desc, err := c.Descending()
	if err != nil {
		return nil, err
	}
	p.SetSortOrder(desc)

	if c.MinDate == "" && c.MaxDate == "" {
		return p, nil
	}
	if c.MinDate == "" || c.MaxDate == "" {
		return nil, fmt.Errorf("min_date and max_date must be set together")
	}
	min, err := ParseDate(c.MinDate)
	if err != nil {
		return nil, fmt.Errorf("invalid min_date: %w", err)
	}
	max, err := ParseDate(c.MaxDate)
	if err != nil {
		return nil, fmt.Errorf("invalid max_date: %w", err)
	}
	if err := p.SetDateRange(min, max); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseDate parses s using the first matching layout in DateLayouts.
// Layouts without a zone are read in local time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (expected RFC3339 or 2006-01-02[ 15:04:05])", s)
}
