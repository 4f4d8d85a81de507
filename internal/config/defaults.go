package config

import (
	"time"

	"github.com/ziadkadry99/synthesis/internal/boot"
)

// Skins lists the recognised skin ids.
var Skins = []string{"v1", "v2", "v3", "v4", "v5", "v6"}

// DefaultExcludes are asset globs never copied into the export.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/*.swp",
	"**/*~",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	t := boot.DefaultTiming()
	return &Config{
		OutputDir:   "dist",
		DefaultSkin: "v1",
		LogLevel:    "info",
		Server: ServerConfig{
			Port: 8080,
		},
		Boot: BootConfig{
			OutputSettleMS:          int(t.OutputSettle / time.Millisecond),
			CompleteAfterOutputMS:   int(t.CompleteAfterOutput / time.Millisecond),
			CompleteWithoutOutputMS: int(t.CompleteWithoutOutput / time.Millisecond),
			FinalDelayMS:            int(t.FinalDelay / time.Millisecond),
		},
		Assets: AssetsConfig{
			Include: []string{"**/*"},
			Exclude: append([]string(nil), DefaultExcludes...),
		},
	}
}

// Timing converts the configured delays for the boot sequence.
func (b BootConfig) Timing() boot.Timing {
	return boot.Timing{
		OutputSettle:          time.Duration(b.OutputSettleMS) * time.Millisecond,
		CompleteAfterOutput:   time.Duration(b.CompleteAfterOutputMS) * time.Millisecond,
		CompleteWithoutOutput: time.Duration(b.CompleteWithoutOutputMS) * time.Millisecond,
		FinalDelay:            time.Duration(b.FinalDelayMS) * time.Millisecond,
	}
}
