package goACL

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadConfigFile reads a TOML configuration file over the defaults. Unset
// keys keep their default values; unknown keys are rejected so typos fail
// loudly at startup instead of silently running with defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
