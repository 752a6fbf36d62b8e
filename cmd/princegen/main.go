// Command princegen enumerates PRINCE password candidates from a dictionary
// of base elements.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "princegen",
		Short: "PRINCE password candidate generator",
		Long: `princegen builds PRINCE-style chains out of a dictionary of base elements
and enumerates the password candidates they produce, in the original tool's
deterministic, resumable visitation order.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("wordlist", "", "path to the dictionary of base elements")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newKeyspaceCmd())
	root.AddCommand(newStatsCmd())
	return root
}
