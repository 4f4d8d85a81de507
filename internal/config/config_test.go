package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.DefaultSkin != "v1" {
		t.Errorf("expected default skin v1, got %q", cfg.DefaultSkin)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Boot.OutputSettleMS != 300 || cfg.Boot.CompleteAfterOutputMS != 200 ||
		cfg.Boot.CompleteWithoutOutputMS != 400 || cfg.Boot.FinalDelayMS != 800 {
		t.Errorf("unexpected boot defaults: %+v", cfg.Boot)
	}
	if len(cfg.Assets.Include) != 1 || cfg.Assets.Include[0] != "**/*" {
		t.Errorf("unexpected asset include: %v", cfg.Assets.Include)
	}
}

func TestDefaultExcludesNotShared(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assets.Exclude[0] = "changed"
	if DefaultExcludes[0] == "changed" {
		t.Error("DefaultConfig should copy DefaultExcludes")
	}
}

func TestBootTiming(t *testing.T) {
	got := BootConfig{OutputSettleMS: 1, CompleteAfterOutputMS: 2, CompleteWithoutOutputMS: 3, FinalDelayMS: 4}.Timing()
	if got.OutputSettle != time.Millisecond || got.CompleteAfterOutput != 2*time.Millisecond ||
		got.CompleteWithoutOutput != 3*time.Millisecond || got.FinalDelay != 4*time.Millisecond {
		t.Errorf("Timing() = %+v", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.synthesis.yml")

	original := DefaultConfig()
	original.DefaultSkin = "v4"
	original.OutputDir = "public"
	original.BaseURL = "https://synthesis.example"
	original.Server.Port = 9000
	original.Server.Watch = true
	original.Boot.FinalDelayMS = 1000
	original.Assets.Include = []string{"img/**", "*.ico"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultSkin != original.DefaultSkin {
		t.Errorf("default_skin: got %q, want %q", loaded.DefaultSkin, original.DefaultSkin)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Server != original.Server {
		t.Errorf("server: got %+v, want %+v", loaded.Server, original.Server)
	}
	if loaded.Boot != original.Boot {
		t.Errorf("boot: got %+v, want %+v", loaded.Boot, original.Boot)
	}
	if len(loaded.Assets.Include) != len(original.Assets.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Assets.Include), len(original.Assets.Include))
	}
	for i, v := range loaded.Assets.Include {
		if v != original.Assets.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Assets.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DefaultSkin != "v1" {
		t.Errorf("expected default skin, got %q", cfg.DefaultSkin)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("server:\n  watch: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Server.Watch {
		t.Error("server.watch not loaded")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port lost its default: %d", cfg.Server.Port)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("output_dir lost its default: %q", cfg.OutputDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	os.WriteFile(path, []byte("server: [port"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SYNTHESIS_DEFAULT_SKIN", "v6")
	t.Setenv("SYNTHESIS_SERVER__PORT", "9090")
	t.Setenv("SYNTHESIS_BOOT__FINAL_DELAY_MS", "50")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultSkin != "v6" {
		t.Errorf("env override failed: got %q, want %q", loaded.DefaultSkin, "v6")
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Boot.FinalDelayMS != 50 {
		t.Errorf("nested env override failed: got %d, want 50", loaded.Boot.FinalDelayMS)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SYNTHESIS_OUTPUT_DIR":                "output_dir",
		"SYNTHESIS_SERVER__PORT":              "server.port",
		"SYNTHESIS_SERVER__ALLOW_ALL_ORIGINS": "server.allow_all_origins",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"unknown skin", func(c *Config) { c.DefaultSkin = "v7" }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative delay", func(c *Config) { c.Boot.OutputSettleMS = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"missing content file", func(c *Config) { c.ContentFile = filepath.Join(t.TempDir(), "nope.yml") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "abc", "70000"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSkinLabelsMatchSkins(t *testing.T) {
	if len(skinLabels) != len(Skins) {
		t.Fatalf("%d labels for %d skins", len(skinLabels), len(Skins))
	}
	for i, id := range Skins {
		if skinLabels[i][:len(id)] != id {
			t.Errorf("label %q does not start with %q", skinLabels[i], id)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.png", []string{"**/*.png"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
