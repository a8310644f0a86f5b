// Package cli defines the loglens command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/five82/loglens/internal/analyzer"
	"github.com/five82/loglens/internal/app"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	configPath string
	verbose    bool
	logFile    string
	level      string
	color      string
	pager      bool
	noPager    bool
}

// NewRootCmd builds the loglens command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "loglens --logfile <path> [--level LEVEL]",
		Short: "Summarize and colorize a log file",
		Long: `loglens reads a log file of "YYYY-MM-DD HH:MM:SS,ms LEVEL message" lines,
counts entries per level and prints them with the level colorized.

Lines that do not match are reported as "Unparsed: <line>" while reading.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: $LOGLENS_CONFIG or ~/.config/loglens/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug diagnostics to stderr")

	flags := cmd.Flags()
	flags.StringVar(&opts.logFile, "logfile", "", "Path to the log file")
	flags.StringVar(&opts.level, "level", "", "Filter by log level (e.g., INFO, ERROR)")
	flags.StringVar(&opts.color, "color", "", "Colorize levels: auto, always or never")
	flags.BoolVar(&opts.pager, "pager", false, "Show the report in an interactive pager")
	flags.BoolVar(&opts.noPager, "no-pager", false, "Print the report even if the config enables the pager")
	_ = cmd.MarkFlagRequired("logfile")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions) error {
	err := app.Run(cmd.Context(), app.Options{
		ConfigPath: opts.configPath,
		LogFile:    opts.logFile,
		Level:      opts.level,
		LevelSet:   cmd.Flags().Changed("level"),
		Color:      opts.color,
		Pager:      opts.pager,
		NoPager:    opts.noPager,
		Verbose:    opts.verbose,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, analyzer.ErrFileNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "Error: File %s not found.\n", opts.logFile)
		return reportedError{err: err}
	case errors.Is(err, analyzer.ErrFileUnreadable):
		reason := error(err)
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			reason = pathErr.Err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Error: cannot open %s: %v\n", opts.logFile, reason)
		return reportedError{err: err}
	}
	return err
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if isUsageError(err) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		}
	}
	return ExitCode(err)
}
