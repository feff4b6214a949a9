// Package config loads the output format selection for check
// plugins.
package config

import (
	"fmt"
	"os"

	"github.com/mklimuk/metricline"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// Config selects the active output format.
type Config struct {
	Format string `koanf:"format"`
}

// Parsed returns the format as the emitter's selector type.
func (c Config) Parsed() metricline.Format {
	f, ok := metricline.ParseFormat(c.Format)
	if !ok {
		return metricline.DefaultFormat
	}
	return f
}

// Load reads a YAML config file, silently skipping missing files so
// plugins run with defaults when nothing was configured. Unknown
// format names are rejected here rather than dropped at emission
// time.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Config{Format: string(metricline.DefaultFormat)}
	raw, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	k := koanf.New(".")
	if err = k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("could not parse config file: %w", err)
	}
	if err = k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not unmarshal config: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = string(metricline.DefaultFormat)
	}
	if _, ok := metricline.ParseFormat(cfg.Format); !ok {
		return Config{}, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return cfg, nil
}
