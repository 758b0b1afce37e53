package main

import (
	"fmt"
	"io"

	"github.com/marmos91/vfsemu/pkg/pathnorm"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <path>...",
		Short: `Resolve "." and ".." segments of '/'-delimited paths`,
		Long: `Normalize prints each path with "." and ".." segments resolved, one per
line. Consecutive '/' collapse, a trailing '/' is kept, and ".." never climbs
above the root. A path not starting with '/' treats its first segment as a
domain that ".." cannot remove.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			for _, p := range args {
				fmt.Fprintln(stdout, pathnorm.Normalize(p)) //nolint:errcheck // best-effort stdout
			}
		},
	}
}
