package main

import (
	"fmt"
	"io"

	"github.com/marmos91/vfsemu/pkg/config"
	"github.com/spf13/cobra"
)

func newInitCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		force bool
		path  string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			target := path
			var err error
			if target == "" {
				target, err = config.InitConfig(force)
			} else {
				err = config.InitConfigToPath(target, force)
			}
			if err != nil {
				fmt.Fprintf(stderr, "vfsemu init: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			fmt.Fprintf(stdout, "Configuration file created at: %s\n", target) //nolint:errcheck // best-effort stdout
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "write to this file instead of the default location")
	return cmd
}
