package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
	"github.com/ziadkadry99/synthesis/internal/logging"
	"github.com/ziadkadry99/synthesis/internal/progress"
	"github.com/ziadkadry99/synthesis/internal/walker"
)

// Generator writes the static export: the chooser, one page per skin, the
// shared stylesheet and script, the recorded boot timeline and any assets.
type Generator struct {
	Content   *content.Content
	OutputDir string
	BaseURL   string
	Timing    boot.Timing

	AssetsDir     string
	AssetsInclude []string
	AssetsExclude []string

	Reporter progress.Reporter
	Logger   *slog.Logger
}

// Result summarises a Generate run.
type Result struct {
	Pages      int
	Assets     int
	BootFrames int
}

// Generate builds the site. Pages render concurrently; the first failure
// cancels the rest.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	var res Result
	if g.Content == nil {
		return res, fmt.Errorf("no content to render")
	}
	if g.OutputDir == "" {
		return res, fmt.Errorf("output directory is required")
	}
	log := g.Logger
	if log == nil {
		log = logging.NewNop()
	}
	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}

	renderer, err := NewRenderer()
	if err != nil {
		return res, err
	}

	var assets []walker.FileInfo
	if g.AssetsDir != "" {
		assets, err = walker.Walk(walker.WalkerConfig{
			RootDir: g.AssetsDir,
			Include: g.AssetsInclude,
			Exclude: g.AssetsExclude,
		})
		if err != nil {
			return res, fmt.Errorf("collecting assets: %w", err)
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	pages := Skins()
	rep.Start(len(pages)+4+len(assets), "Writing site")
	defer rep.Finish()

	timing := g.Timing
	if timing == (boot.Timing{}) {
		timing = boot.DefaultTiming()
	}
	timeline := boot.Record(g.Content.BootScript, boot.WithTiming(timing))
	res.BootFrames = len(timeline.Frames)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(8)

	write := func(rel string, render func(*bytes.Buffer) error) {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render(&buf); err != nil {
				return fmt.Errorf("rendering %s: %w", rel, err)
			}
			if err := writeFile(filepath.Join(g.OutputDir, filepath.FromSlash(rel)), buf.Bytes()); err != nil {
				return err
			}
			log.Debug("wrote page", "path", rel, "bytes", buf.Len())
			rep.Update(rel)
			return nil
		})
	}

	write("index.html", func(b *bytes.Buffer) error {
		opts := PageOptions{Assets: "", Home: "index.html", Canonical: canonical(g.BaseURL, "")}
		return renderer.Index(b, g.Content, opts, func(id string) string { return id + "/index.html" })
	})
	write("style.css", func(b *bytes.Buffer) error { return renderer.Stylesheet(b) })
	write("script.js", func(b *bytes.Buffer) error { return renderer.Script(b) })
	write("boot.json", func(b *bytes.Buffer) error { return timeline.WriteJSON(b) })

	for _, skin := range pages {
		write(skin.ID+"/index.html", func(b *bytes.Buffer) error {
			return renderer.Page(b, skin, g.Content, accordion.State{}, StaticOptions(g.BaseURL, skin.ID))
		})
	}

	for _, a := range assets {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := walker.Copy(a, g.OutputDir); err != nil {
				return fmt.Errorf("copying asset %s: %w", a.RelPath, err)
			}
			rep.Update(a.RelPath)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return res, err
	}

	res.Pages = len(pages) + 1
	res.Assets = len(assets)
	log.Info("site generated", "dir", g.OutputDir, "pages", res.Pages, "assets", res.Assets, "boot_frames", res.BootFrames)
	return res, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
