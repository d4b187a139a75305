package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fcrawl",
	Short: "List directories and files by modification time",
	Long: `fcrawl enumerates the directories or files beneath a root, filters them
by name pattern and modification-time window, and prints them ordered by
modification time. Relative roots are resolved against the directory holding
the fcrawl binary unless --base is given.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version
	registerGlobalFlags(rootCmd)
	rootCmd.AddCommand(dirsCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(recursiveCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}
