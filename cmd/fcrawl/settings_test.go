package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/michaelscutari/fcrawl/internal/config"
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/errs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	var f globalFlags
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	set.StringSliceVarP(&f.patterns, "match", "m", nil, "")
	set.StringVar(&f.mode, "mode", "", "")
	set.StringVar(&f.since, "since", "", "")
	set.StringVar(&f.until, "until", "", "")
	set.BoolVar(&f.asc, "asc", false, "")
	set.StringVar(&f.base, "base", "", "")
	set.StringVarP(&f.format, "format", "f", "", "")
	set.StringVar(&f.logLevel, "log-level", "", "")
	require.NoError(t, set.Parse([]string{"-m", ".go", "--asc"}))

	cfg := config.DefaultConfig()
	cfg.MatchMode = "suffix"
	cfg.Format = "yaml"
	applyFlags(cfg, set, f)

	assert.Equal(t, []string{".go"}, cfg.Patterns)
	assert.Equal(t, "asc", cfg.Order)
	assert.Equal(t, "suffix", cfg.MatchMode, "unset flag keeps config value")
	assert.Equal(t, "yaml", cfg.Format, "unset flag keeps config value")
}

func TestFilesCommandJSON(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "sub")
	require.NoError(t, os.Mkdir(dir, 0755))
	old := time.Now().Add(-time.Hour)
	for name, mtime := range map[string]time.Time{
		"old.txt": old,
		"new.txt": old.Add(30 * time.Minute),
		"skip.md": old,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"files", "sub", "--base", base, "-m", ".txt", "--mode", "suffix", "-f", "json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flags = globalFlags{}
	})

	require.NoError(t, rootCmd.Execute())

	var got result
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, dir, got.Root, "relative root resolves against --base")
	require.Len(t, got.Dirs, 1)
	assert.Equal(t, dir, got.Dirs[0].Path)
	var names []string
	for _, f := range got.Dirs[0].Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"new.txt", "old.txt"}, names)
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fcrawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// browseTestCmd mirrors browse's own flags without the shared command's
// parse state.
func browseTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "browse"}
	cmd.Flags().StringVarP(&browseKind, "kind", "k", "", "")
	return cmd
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		flags = globalFlags{}
		browseKind = ""
	})
}

func TestSessionUsesConfigKind(t *testing.T) {
	resetFlags(t)
	flags.configPath = writeTestConfig(t, "kind: dirs\nroot: /tmp\n")

	cmd := browseTestCmd()
	s, err := newSession(cmd, nil, browseKindOverride(cmd))
	require.NoError(t, err)
	assert.Equal(t, crawl.KindDirs, s.kind)
	assert.IsType(t, &crawl.DirCrawler{}, s.crawler)
}

func TestSessionKindFlagOverridesConfig(t *testing.T) {
	resetFlags(t)
	flags.configPath = writeTestConfig(t, "kind: dirs\nroot: /tmp\n")

	cmd := browseTestCmd()
	require.NoError(t, cmd.Flags().Set("kind", "recursive"))

	s, err := newSession(cmd, nil, browseKindOverride(cmd))
	require.NoError(t, err)
	assert.Equal(t, crawl.KindRecursive, s.kind)
}

func TestSessionRejectsUnknownConfigKind(t *testing.T) {
	resetFlags(t)
	flags.configPath = writeTestConfig(t, "kind: everything\n")

	_, err := newSession(browseTestCmd(), nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidKind), "got %v", err)
}

func TestSessionFailsOnMissingExplicitConfig(t *testing.T) {
	resetFlags(t)
	flags.configPath = filepath.Join(t.TempDir(), "typo.yaml")

	_, err := newSession(&cobra.Command{Use: "files"}, nil, crawl.KindFiles.String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.Contains(t, err.Error(), "failed to open config file")
}
