package main

import (
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs [path]",
	Short: "List the immediate subdirectories of a path",
	Long: `List the directories directly under path whose names pass the pattern
filter and whose modification time falls inside the date window, ordered by
modification time. Files are ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl(crawl.KindDirs),
}
