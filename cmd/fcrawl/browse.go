package main

import (
	"fmt"
	"os"

	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/tui"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse crawl results interactively",
	Long: `Run one crawl and open an interactive browser over the result: the
directory list, then the files of the selected directory. "/" filters by name
and "o" flips the order without crawling again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

var browseKind string

func init() {
	browseCmd.Flags().StringVarP(&browseKind, "kind", "k", "", "Crawler to run: dirs|files|recursive (default: kind from config)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse needs a terminal; use dirs, files or recursive for piped output")
	}

	s, err := newSession(cmd, args, browseKindOverride(cmd))
	if err != nil {
		return err
	}
	// Log records on stderr would tear the alternate screen.
	crawler, err := crawl.New(s.kind, s.policy, crawl.DefaultOptions().WithBaseDir(s.cfg.BaseDir))
	if err != nil {
		return err
	}

	model := tui.NewModel(crawler, s.kind, s.root, s.policy.Descending())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// browseKindOverride returns --kind when given, else "" so the config file's
// kind applies.
func browseKindOverride(cmd *cobra.Command) string {
	if cmd.Flags().Changed("kind") {
		return browseKind
	}
	return ""
}
