// Package cli implements the command-line interface for the aoc CLI.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/colthorp/aocdata/internal/api"
	"github.com/colthorp/aocdata/internal/cache"
	"github.com/colthorp/aocdata/internal/config"
	"github.com/colthorp/aocdata/internal/core"
	"github.com/colthorp/aocdata/internal/logging"
	"github.com/colthorp/aocdata/internal/solution"
)

// Global flags
type globalFlags struct {
	configPath string
	cacheDir   string
	year       string
	verbose    bool
	quiet      bool
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	flags    globalFlags
	cfg      *config.Config
	logger   zerolog.Logger
	environ  func() []string
	registry *solution.Registry
}

// NewRootCmd builds the command tree. environ supplies session credentials
// (os.Environ in production).
func NewRootCmd(environ func() []string, registry *solution.Registry) *cobra.Command {
	a := &app{environ: environ, registry: registry, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:               "aoc",
		Short:             "aoc – fetch and cache puzzle inputs",
		Long:              `A command-line utility that downloads puzzle inputs once, caches them locally, and runs the solver for a day.`,
		Version:           core.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.flags.cacheDir, "cache-dir", "", fmt.Sprintf("Directory for cached inputs (default: %s)", core.DefaultCacheDir))
	rootCmd.PersistentFlags().StringVar(&a.flags.year, "year", "", "Session year to use when several AOC_<YYYY>_SESSION_ID are set")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&a.flags.quiet, "quiet", false, "Suppress progress messages")

	addCommands(rootCmd, a)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		cfg.CacheDir = a.flags.cacheDir
	}
	if flags.Changed("year") {
		cfg.Year = a.flags.year
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), logging.LevelFor(cfg.LogLevel, a.flags.verbose, a.flags.quiet))
	a.logger.Debug().
		Str("cache_dir", cfg.CacheDir).
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Msg("Configuration loaded")
	return nil
}

// manager wires the loader from the loaded configuration.
func (a *app) manager() *cache.Manager {
	client := api.NewClient(api.ClientConfig{
		BaseURL:     a.cfg.BaseURL,
		UserAgent:   a.cfg.UserAgent,
		Timeout:     a.cfg.Timeout,
		MinInterval: a.cfg.MinInterval,
	}, a.logger)

	return cache.NewManager(
		client,
		cache.NewFilesystemBackend(a.cfg.CacheDir),
		a.logger,
		cache.WithYear(a.cfg.Year),
		cache.WithEnviron(a.environ),
	)
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(os.Environ, solution.Default)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
