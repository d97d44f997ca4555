// Package cli implements the mekko command-line interface.
//
// # Commands
//
//   - render: aggregate a dataset and write the chart as SVG, JSON, PNG or PDF
//   - table: print the frequency table behind a chart
//   - config: print the effective configuration as TOML
//   - cache: clear or locate the artifact cache
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Chart settings are layered: built-in defaults, then the --config TOML
// file, then MEKKO_* environment variables, then explicit flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mekko/pkg/buildinfo"
	"github.com/matzehuels/mekko/pkg/cache"
	"github.com/matzehuels/mekko/pkg/config"
	"github.com/matzehuels/mekko/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "mekko"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mekko draws Marimekko charts from tabular data",
		Long:         `Mekko turns two categorical columns of a CSV file into a Marimekko (variable-width stacked bar) chart: column widths follow the share of each outer category, segment heights the share of each inner category within it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner backed by the cache cfg selects.
func (c *CLI) newRunner(ctx context.Context, cfg config.Cache, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, c.Logger)
	runner.TTL = cfg.TTL.Std()
	return runner, nil
}

// newCache picks the cache backend: none when disabled, Redis when a URL
// is configured, otherwise the file cache. An unusable file cache location
// degrades to no caching.
func (c *CLI) newCache(ctx context.Context, cfg config.Cache, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisURL != "" {
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the XDG default
// (~/.cache/mekko/).
func cacheDir(cfg config.Cache) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
