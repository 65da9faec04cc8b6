package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colthorp/aocdata/internal/config"
	"github.com/colthorp/aocdata/internal/core"
	"github.com/colthorp/aocdata/internal/output"
	"github.com/colthorp/aocdata/internal/session"
	"github.com/colthorp/aocdata/internal/solution"
)

func addCommands(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run [day]",
			Short: "Load a day's input and print both answers",
			Args:  cobra.ExactArgs(1),
			RunE:  a.handleRun,
		},
		&cobra.Command{
			Use:   "input [day]",
			Short: "Print a day's input, downloading it if needed",
			Args:  cobra.ExactArgs(1),
			RunE:  a.handleInput,
		},
		&cobra.Command{
			Use:   "path [day]",
			Short: "Print where a day's input is cached",
			Args:  cobra.ExactArgs(1),
			RunE:  a.handlePath,
		},
		&cobra.Command{
			Use:   "clear [day]",
			Short: "Delete a day's cached input",
			Args:  cobra.ExactArgs(1),
			RunE:  a.handleClear,
		},
		&cobra.Command{
			Use:   "prefetch [from] [to]",
			Short: "Download and cache a range of days, one request at a time",
			Args:  cobra.ExactArgs(2),
			RunE:  a.handlePrefetch,
		},
		&cobra.Command{
			Use:   "session",
			Short: "Show which session credential would be used",
			Args:  cobra.NoArgs,
			RunE:  a.handleSession,
		},
		newConfigCmd(),
	)
}

// newConfigCmd groups config file helpers. It skips config loading so a
// broken file can still be replaced.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:               "config",
		Short:             "Manage the configuration file",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "aocdata.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Init(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})
	return configCmd
}

func (a *app) handleRun(cmd *cobra.Command, args []string) error {
	day, err := core.ParseDay(args[0])
	if err != nil {
		return err
	}

	input, err := a.manager().Load(cmd.Context(), day)
	if err != nil {
		return err
	}

	answers, err := solution.Run(a.registry.For(day), day, input)
	if err != nil {
		return err
	}

	output.PrintAnswers(cmd.OutOrStdout(), answers)
	return nil
}

func (a *app) handleInput(cmd *cobra.Command, args []string) error {
	day, err := core.ParseDay(args[0])
	if err != nil {
		return err
	}

	input, err := a.manager().Load(cmd.Context(), day)
	if err != nil {
		return err
	}

	output.PrintInput(cmd.OutOrStdout(), input)
	return nil
}

func (a *app) handlePath(cmd *cobra.Command, args []string) error {
	day, err := core.ParseDay(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.manager().Path(day))
	return nil
}

func (a *app) handleClear(cmd *cobra.Command, args []string) error {
	day, err := core.ParseDay(args[0])
	if err != nil {
		return err
	}

	return a.manager().Invalidate(day)
}

func (a *app) handlePrefetch(cmd *cobra.Command, args []string) error {
	from, to, err := core.ParseDayRange(args[0], args[1])
	if err != nil {
		return err
	}

	a.logger.Info().Int("from", from).Int("to", to).Msg("Prefetching inputs")
	done, err := a.manager().Prefetch(cmd.Context(), from, to)
	if len(done) > 0 {
		output.PrintDays(cmd.OutOrStdout(), "cached days", done)
	}
	return err
}

func (a *app) handleSession(cmd *cobra.Command, args []string) error {
	cred, err := session.Resolve(a.environ(), a.cfg.Year)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", core.SessionEnvName(cred.Year), cred)
	return nil
}
