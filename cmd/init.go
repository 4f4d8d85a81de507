package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/synthesis/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize synthesis configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the default skin, content file, output directory and preview port, and writes a .synthesis.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
