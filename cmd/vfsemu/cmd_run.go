package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/config"
	"github.com/marmos91/vfsemu/pkg/engine"
	"github.com/spf13/cobra"
)

// runOptions holds the flag overrides of the run command.
type runOptions struct {
	format          string
	drive           string
	metricsTextfile string
}

func (o runOptions) apply(cfg *config.Config) {
	if o.format != "" {
		cfg.Output.Format = strings.ToLower(o.format)
	}
	if o.drive != "" {
		cfg.Filesystem.Drive = strings.ToUpper(o.drive)
	}
	if o.metricsTextfile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = o.metricsTextfile
	}
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a command script and print the resulting tree",
		Long: `Run executes the commands of script one per line (stdin when script is
absent or "-"). Execution stops at the first failing command: the error and
its line number are printed to stderr and nothing is rendered. On success the
final tree is printed to stdout.

Commands: md, cd, rd, mf, del, mhl, mdl, move, copy, deltree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := "-"
			if len(args) == 1 {
				script = args[0]
			}
			if doRun(cmd.Context(), cmd.InOrStdin(), script, opts, stdout, stderr) != 0 {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text, yaml (default from config)")
	cmd.Flags().StringVar(&opts.drive, "drive", "", `name of the root drive, e.g. "D:" (default from config)`)
	cmd.Flags().StringVar(&opts.metricsTextfile, "metrics-textfile", "",
		"enable metrics and write them to this file when the run finishes")
	return cmd
}

// doRun executes the script and renders the tree. Returns the exit code.
func doRun(ctx context.Context, stdin io.Reader, script string, opts runOptions, stdout, stderr io.Writer) int {
	cfg, closer, err := loadConfig(stdout, stderr, opts.apply)
	if err != nil {
		fmt.Fprintf(stderr, "vfsemu: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	defer closer.Close() //nolint:errcheck // log file close

	renderer, err := config.CreateRenderer(&cfg.Output)
	if err != nil {
		fmt.Fprintf(stderr, "vfsemu: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	in := stdin
	if script != "-" {
		f, err := os.Open(script)
		if err != nil {
			fmt.Fprintf(stderr, "vfsemu: failed to open script: %v\n", err) //nolint:errcheck // best-effort stderr
			return 1
		}
		defer f.Close() //nolint:errcheck // read-only file
		in = f
	}

	m := config.InitializeMetrics(cfg)
	eng, err := engine.New(cfg.Filesystem.VFS(), m.EngineMetrics)
	if err != nil {
		fmt.Fprintf(stderr, "vfsemu: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	logger.Debug("running %s on drive %s", scriptName(script), cfg.Filesystem.Drive)
	runErr := eng.Run(ctx, in)

	if err := m.Flush(); err != nil {
		logger.Warn("%v", err)
	}

	if runErr != nil {
		fmt.Fprintln(stderr, runErr) //nolint:errcheck // best-effort stderr
		return 1
	}

	if err := renderer.Render(stdout, eng.State().Root()); err != nil {
		fmt.Fprintf(stderr, "vfsemu: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	return 0
}

func scriptName(script string) string {
	if script == "-" {
		return "stdin"
	}
	return script
}
