// vfsemu runs batch command scripts against an in-memory emulated
// filesystem and prints the resulting tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is returned by RunE functions to signal a non-zero exit. The
// command has already written its own error to stderr.
var errExit = errors.New("exit")

var (
	// configFlag holds --config; empty means the default location
	configFlag string

	// logLevelFlag holds --log-level; empty means the configured level
	logLevelFlag string
)

// run executes the CLI with the given args, writing output to stdout and
// errors to stderr. Returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "vfsemu: %v\n", err) //nolint:errcheck // best-effort stderr
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "vfsemu",
		Short:         "In-memory filesystem emulator driven by command scripts",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "vfsemu: unknown command %q\n", args[0]) //nolint:errcheck // best-effort stderr
			return errExit
		},
	}
	root.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to the config file (default: $XDG_CONFIG_HOME/vfsemu/config.yaml)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: DEBUG, INFO, WARN, ERROR (overrides config)")
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(
		newRunCmd(stdout, stderr),
		newNormalizeCmd(stdout),
		newInitCmd(stdout, stderr),
		newVersionCmd(stdout),
	)
	return root
}

// loadConfig loads the configuration, applies flag overrides, validates the
// result and configures the logger. The returned closer releases the log
// file, if any.
func loadConfig(stdout, stderr io.Writer, override func(*config.Config)) (*config.Config, io.Closer, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}

	if logLevelFlag != "" {
		cfg.Logging.Level = strings.ToUpper(logLevelFlag)
	}
	if override != nil {
		override(cfg)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}

	closer, err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		return nil, nil, err
	}

	// Keep log lines on the writers the command was given
	switch strings.ToLower(cfg.Logging.Output) {
	case "stderr":
		logger.SetOutput(stderr)
	case "stdout":
		logger.SetOutput(stdout)
	}

	return cfg, closer, nil
}
