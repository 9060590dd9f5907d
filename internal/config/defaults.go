package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable that overrides the defaults
// file location.
const EnvConfigPath = "PEEK_CONFIG"

// Defaults holds the values read from a peek.toml defaults file.
type Defaults struct {
	// Lines overrides the built-in default line count when positive.
	Lines int
	// Color is the preferred color mode (auto|on|off); empty when unset.
	Color string
}

type defaultsFile struct {
	Defaults struct {
		Lines int    `toml:"lines"`
		Color string `toml:"color"`
	} `toml:"defaults"`
}

// ResolveDefaultsPath picks the defaults file location: the explicit path if
// given, else $PEEK_CONFIG, else <UserConfigDir>/peek/peek.toml. The second
// return value is false when no candidate location could be determined.
func ResolveDefaultsPath(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "peek", "peek.toml"), true
}

// LoadDefaults reads a defaults file. A missing file is not an error: the
// second return value reports whether the file existed.
func LoadDefaults(path string) (Defaults, bool, error) {
	var cfg defaultsFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults{}, false, nil
		}
		return Defaults{}, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("defaults") {
		return Defaults{}, true, nil
	}
	if meta.IsDefined("defaults", "lines") && cfg.Defaults.Lines <= 0 {
		return Defaults{}, true, fmt.Errorf("%s: [defaults].lines must be a positive integer", path)
	}
	switch cfg.Defaults.Color {
	case "", "auto", "on", "off":
	default:
		return Defaults{}, true, fmt.Errorf("%s: [defaults].color must be auto, on or off", path)
	}
	return Defaults{Lines: cfg.Defaults.Lines, Color: cfg.Defaults.Color}, true, nil
}
