package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/synthesis/internal/tui"
)

// Version is set via ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of synthesis",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout, Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
