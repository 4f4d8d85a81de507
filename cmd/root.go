package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "synthesis",
	Short: "Build, preview and play the site for The Synthesis hackathon",
	Long: `Synthesis renders the marketing site for The Synthesis, the first
hackathon for humans and AI, in six visual directions from one content
file. It exports a static site, runs a live preview server, plays the
terminal boot sequence in your shell and exposes the briefing to AI agents
over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".synthesis.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
