package main

import (
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/spf13/cobra"
)

var recursiveCmd = &cobra.Command{
	Use:   "recursive [path]",
	Short: "List matching files in every directory of a tree",
	Long: `Walk the tree under path depth-first and, for every directory holding at
least one matching file, print the directory and its files ordered by
modification time. Directories are reported in visit order; symlinked
directories are not followed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl(crawl.KindRecursive),
}
