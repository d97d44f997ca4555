package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	errs "github.com/matzehuels/mekko/pkg/errors"
)

// Load reads a TOML file on top of [Default]. Keys the Config does not know
// are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.MergeFile(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFile overlays the TOML file at path onto c.
func (c *Config) MergeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s", path)
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays MEKKO_* environment variables onto c. Unset variables
// leave the current value untouched.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "environment")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
