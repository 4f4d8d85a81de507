package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/synthesis/internal/tui"
)

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Play the terminal boot sequence and briefing",
	Long:  `Plays the terminal skin in your shell: the scripted login types itself out, then the briefing opens with a keyboard driven FAQ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}
		skip, _ := cmd.Flags().GetBool("skip-boot")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return tui.Run(ctx, c, tui.Options{
			Timing:   cfg.Boot.Timing(),
			SkipBoot: skip,
		})
	},
}

func init() {
	bootCmd.Flags().Bool("skip-boot", false, "go straight to the briefing")
	rootCmd.AddCommand(bootCmd)
}
