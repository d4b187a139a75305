package main

import (
	"fmt"
	"os"

	"github.com/michaelscutari/fcrawl/internal/config"
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/filter"
	"github.com/michaelscutari/fcrawl/internal/logging"
	"github.com/michaelscutari/fcrawl/internal/pathutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags are shared by every crawling command.
type globalFlags struct {
	configPath string
	patterns   []string
	mode       string
	since      string
	until      string
	asc        bool
	base       string
	format     string
	logLevel   string
	noColor    bool
}

var flags globalFlags

func registerGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to YAML config file")
	pf.StringSliceVarP(&flags.patterns, "match", "m", nil, "Name pattern to match (can be repeated)")
	pf.StringVar(&flags.mode, "mode", "", "Pattern match mode: prefix|substring|suffix")
	pf.StringVar(&flags.since, "since", "", "Only entries modified after this time (exclusive)")
	pf.StringVar(&flags.until, "until", "", "Only entries modified before this time (exclusive)")
	pf.BoolVar(&flags.asc, "asc", false, "Sort oldest first instead of newest first")
	pf.StringVar(&flags.base, "base", "", "Base directory for relative roots (default: directory of the fcrawl binary)")
	pf.StringVarP(&flags.format, "format", "f", "", "Output format: text|json|yaml")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
}

// applyFlags overlays the flags the user actually set onto cfg.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, f globalFlags) {
	if fs.Changed("match") {
		cfg.Patterns = append([]string(nil), f.patterns...)
	}
	if fs.Changed("mode") {
		cfg.MatchMode = f.mode
	}
	if fs.Changed("since") {
		cfg.MinDate = f.since
	}
	if fs.Changed("until") {
		cfg.MaxDate = f.until
	}
	if fs.Changed("asc") {
		if f.asc {
			cfg.Order = "asc"
		} else {
			cfg.Order = "desc"
		}
	}
	if fs.Changed("base") {
		cfg.BaseDir = f.base
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

// session is everything a command needs to run one crawl.
type session struct {
	cfg     *config.Config
	kind    crawl.Kind
	root    string
	policy  *filter.Policy
	crawler crawl.Crawler
	log     *logging.Logger
}

// loadConfig reads the --config file. A path named on the command line must
// exist; with no path the defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newSession loads the config file, applies flag overrides and builds the
// crawler. kindName overrides the config file's kind when non-empty; args
// may carry the root path.
func newSession(cmd *cobra.Command, args []string, kindName string) (*session, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, cmd.Flags(), flags)
	if kindName != "" {
		cfg.Kind = kindName
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	kind, err := cfg.CrawlKind()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("failed to build filter: %w", err)
	}

	log := logging.NewLogger(os.Stderr, cfg.LogLevel)
	resolver := pathutil.NewResolver(cfg.BaseDir)
	root, err := resolver.Resolve(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	opts := crawl.DefaultOptions().
		WithResolver(resolver).
		WithLogger(log)
	crawler, err := crawl.New(kind, policy, opts)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		kind:    kind,
		root:    root,
		policy:  policy,
		crawler: crawler,
		log:     log,
	}, nil
}

// runCrawl is the RunE body shared by dirs, files and recursive.
func runCrawl(kind crawl.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args, kind.String())
		if err != nil {
			return err
		}

		s.log.Debug("crawl starting", "kind", kind.String(), "root", s.root)
		dirs, err := s.crawler.Crawl(s.root)
		if err != nil {
			return fmt.Errorf("%s crawl failed: %w", kind, err)
		}
		s.log.Debug("crawl finished", "dirs", len(dirs))

		out := newPrinter(cmd.OutOrStdout(), s.cfg.Format, useColor(os.Stdout, flags.noColor))
		return out.Print(kind, s.root, dirs)
	}
}
