// Package mcconfig loads the TOML configuration file that supplies default
// values for the command-line flags.
package mcconfig

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/mucheck/internal/mcerrors"
)

// Config holds the defaults a config file can supply for the CLI flags.
type Config struct {
	Verbose bool `toml:"verbose"`
	Dot     bool `toml:"dot"`

	// StrictArity exists so the config file's shape is self-describing and
	// forward-compatible; the implementation's arity rules are mandatory
	// and this field does not relax them. It must be true if present.
	StrictArity bool `toml:"strict_arity"`
}

// Default returns the configuration used when no config file is supplied.
func Default() Config {
	return Config{StrictArity: true}
}

// Load reads and parses the TOML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, mcerrors.WrapIOf(err, "reading config %s", path)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, mcerrors.Syntaxf("config %s: %v", path, err)
	}

	if !cfg.StrictArity {
		return Config{}, mcerrors.Semanticf("config: strict_arity is always required to be true")
	}

	return cfg, nil
}
