package config

// Config is the top-level synthesis configuration, corresponding to .synthesis.yml.
type Config struct {
	ContentFile string       `yaml:"content_file" koanf:"content_file"`
	OutputDir   string       `yaml:"output_dir" koanf:"output_dir"`
	DefaultSkin string       `yaml:"default_skin" koanf:"default_skin"`
	BaseURL     string       `yaml:"base_url" koanf:"base_url"`
	LogLevel    string       `yaml:"log_level" koanf:"log_level"`
	Server      ServerConfig `yaml:"server" koanf:"server"`
	Boot        BootConfig   `yaml:"boot" koanf:"boot"`
	Assets      AssetsConfig `yaml:"assets" koanf:"assets"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool `yaml:"watch" koanf:"watch"`
}

// BootConfig holds the boot sequence phase delays in milliseconds.
type BootConfig struct {
	OutputSettleMS          int `yaml:"output_settle_ms" koanf:"output_settle_ms"`
	CompleteAfterOutputMS   int `yaml:"complete_after_output_ms" koanf:"complete_after_output_ms"`
	CompleteWithoutOutputMS int `yaml:"complete_without_output_ms" koanf:"complete_without_output_ms"`
	FinalDelayMS            int `yaml:"final_delay_ms" koanf:"final_delay_ms"`
}

// AssetsConfig selects extra files copied into the static export.
type AssetsConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
