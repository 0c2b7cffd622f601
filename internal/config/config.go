// Package config loads the optional tekton configuration file.
//
// The file is TOML and holds defaults for the command line flags:
//
//	[sort]
//	recursive = true
//	interactive = false
//	fail-fast = false
//
//	[convert]
//	interactive = false
//
// A flag passed on the command line always wins over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file looked for in the working directory when
// no other is given.
const DefaultFile = ".tekton.toml"

// Config is the tekton configuration.
type Config struct {
	Sort    Sort    `toml:"sort"`
	Convert Convert `toml:"convert"`
}

// Sort holds the defaults for the sort command.
type Sort struct {
	Recursive   bool `toml:"recursive"`
	Interactive bool `toml:"interactive"`
	FailFast    bool `toml:"fail-fast"`
}

// Convert holds the defaults for the convert command.
type Convert struct {
	Interactive bool `toml:"interactive"`
}

// Load reads the config file at path.
//
// A missing file is not an error, the zero [Config] is returned. Keys tekton
// does not recognise are an error, they are almost always typos.
func Load(path string) (Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("could not load config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		slices.Sort(keys)

		return Config{}, fmt.Errorf("unrecognised keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
