// Package config loads linkzip's configuration: embedded TOML defaults
// overlaid with an optional user file from the XDG config directory.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/Hrothnar/linkzip/pkg/errors"
)

//go:embed embedded/linkzip.toml
var defaultConfig []byte

// Shortcuts configures shortcut discovery and display-name derivation.
type Shortcuts struct {
	Extensions    []string `toml:"extensions"`
	StripSuffixes []string `toml:"strip_suffixes"`
}

// Exclude configures the exclusion rules applied while walking and again
// at archive-write time.
type Exclude struct {
	Hidden   bool     `toml:"hidden"`
	System   bool     `toml:"system"`
	Names    []string `toml:"names"`
	Patterns []string `toml:"patterns"`
}

// Archive configures the archive backend.
type Archive struct {
	Compression string `toml:"compression"`
}

// Run configures run-mode behavior.
type Run struct {
	Jobs int `toml:"jobs"`
}

// Config is the main configuration structure
type Config struct {
	Shortcuts Shortcuts `toml:"shortcuts"`
	Exclude   Exclude   `toml:"exclude"`
	Archive   Archive   `toml:"archive"`
	Run       Run       `toml:"run"`
}

// Default returns the configuration baked into the binary.
func Default() *Config {
	cfg := &Config{}
	// The embedded file is part of the build; a parse failure here is a
	// programming error, not a runtime condition.
	if err := toml.Unmarshal(defaultConfig, cfg); err != nil {
		panic(err)
	}
	return cfg
}

// DefaultTOML returns the embedded default configuration verbatim, for
// the genconfig command.
func DefaultTOML() string {
	return string(defaultConfig)
}

// UserConfigPath returns the location of the user configuration file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "linkzip", "linkzip.toml")
}

// Load returns the defaults overlaid with the user config file. An
// explicit path must exist; the implicit XDG location is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config from %s", path)
	}

	// Unmarshal over the defaults: keys absent from the user file keep
	// their default values.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path)
	}

	return cfg, nil
}
