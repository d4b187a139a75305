package main

import (
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "List the files directly inside a path",
	Long: `List the regular files directly inside path that pass the pattern and
date filters, ordered by modification time. Prints nothing (text mode: a
notice) when no file qualifies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl(crawl.KindFiles),
}
