package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/synthesis/internal/progress"
	"github.com/ziadkadry99/synthesis/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the static site",
	Long:  `Generates a self-contained static site: a skin chooser, one page per skin, the shared stylesheet and script, the recorded boot timeline and any configured assets.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 0, "port for the local server (defaults to server.port)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := &site.Generator{
		Content:       c,
		OutputDir:     outputDir,
		BaseURL:       cfg.BaseURL,
		Timing:        cfg.Boot.Timing(),
		AssetsDir:     cfg.Assets.Dir,
		AssetsInclude: cfg.Assets.Include,
		AssetsExclude: cfg.Assets.Exclude,
		Reporter:      progress.NewReporter(),
		Logger:        log,
	}
	res, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d assets, %d boot frames)\n",
		outputDir, res.Pages, res.Assets, res.BootFrames)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	openBrowser, _ := cmd.Flags().GetBool("open")
	if err := site.Serve(ctx, outputDir, port, openBrowser, log); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
