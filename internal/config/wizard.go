package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// skinLabels is what the wizard shows for each skin id.
var skinLabels = []string{
	"v1: Monochrome Minimal",
	"v2: Ethereal Glow",
	"v3: Split Identity",
	"v4: Terminal",
	"v5: Editorial",
	"v6: Brutalist",
}

// detectContentFile looks for a content override next to the config.
func detectContentFile() string {
	for _, name := range []string{"content.yml", "content.yaml", "synthesis.content.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and saves the result to
// path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to synthesis! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	contentFile := detectContentFile()
	if contentFile != "" {
		fmt.Printf("Found content overrides in %s\n\n", contentFile)
	}

	// 1. Default skin.
	skinPrompt := promptui.Select{
		Label: "Default skin",
		Items: skinLabels,
	}
	skinIdx, _, err := skinPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("skin selection: %w", err)
	}
	cfg.DefaultSkin = Skins[skinIdx]

	// 2. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (leave blank for built-in copy)",
		Default: contentFile,
	}
	cfg.ContentFile, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Preview port.
	portPrompt := promptui.Prompt{
		Label:    "Preview server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Assets.
	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory to copy into the export (leave blank for none)",
		Default: "",
	}
	cfg.Assets.Dir, err = assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if cfg.Assets.Dir != "" {
		excludePrompt := promptui.Prompt{
			Label:   "Extra asset exclude patterns (comma-separated globs)",
			Default: "",
		}
		excludeStr, err := excludePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("exclude patterns: %w", err)
		}
		cfg.Assets.Exclude = append(cfg.Assets.Exclude, splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
