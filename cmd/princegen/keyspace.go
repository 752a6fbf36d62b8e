package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/diag"
)

func newKeyspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyspace",
		Short: "Print the total keyspace size for the given elements and bounds",
		RunE:  runKeyspace,
	}
	addConfigFlags(cmd)
	return cmd
}

func runKeyspace(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStoreAndConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := prince.NewEngine(cfg, store)
	if err != nil {
		return fmt.Errorf("princegen: %w", err)
	}

	total := engine.TotalKeyspace()
	fmt.Printf("%s candidates (%.2f bits)\n", total, diag.KeyspaceBits(total))
	return nil
}
