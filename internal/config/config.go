package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-derived defaults for the CLI. Every value can
// still be overridden per invocation with flags.
type Config struct {
	// Output file encoding (utf-8, utf-16le, windows-1256, ...)
	OutputEncoding string `env:"SUBMIX_OUTPUT_ENCODING" envDefault:"utf-8"`

	// Preferred codec tried first when decoding input tracks
	InputCodec string `env:"SUBMIX_INPUT_CODEC" envDefault:"utf-8"`

	// Font used when generating or re-wrapping vector overlay entries
	OverlayFontFace string `env:"SUBMIX_OVERLAY_FONT" envDefault:"Brady Bunch Remastered"`
	OverlayFontSize int    `env:"SUBMIX_OVERLAY_FONT_SIZE" envDefault:"48"`
}

// Load parses SUBMIX_* environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in defaults, ignoring the environment.
func Default() *Config {
	return &Config{
		OutputEncoding:  "utf-8",
		InputCodec:      "utf-8",
		OverlayFontFace: "Brady Bunch Remastered",
		OverlayFontSize: 48,
	}
}
