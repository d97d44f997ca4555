package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mekko/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheSettings reads the cache section from an optional config file and
// the environment.
func cacheSettings(path string) (config.Cache, error) {
	cfg := config.Default()
	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return config.Cache{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Cache{}, err
	}
	return cfg.Cache, nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cacheSettings(configPath)
			if err != nil {
				return err
			}
			store, err := c.newCache(cmd.Context(), settings, false)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Cache cleared")
			if settings.RedisURL != "" {
				printDetail(out, "Redis: %s", settings.RedisURL)
			} else if dir, err := cacheDir(settings); err == nil {
				printDetail(out, "Directory: %s", dir)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cacheSettings(configPath)
			if err != nil {
				return err
			}
			if settings.RedisURL != "" {
				printInfo(cmd.OutOrStdout(), "Using Redis at %s", settings.RedisURL)
				return nil
			}
			dir, err := cacheDir(settings)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}
