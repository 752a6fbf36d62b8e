package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elementchain/prince/utils/diag"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report dictionary bag-size statistics and host CPU info",
		RunE:  runStats,
	}
	addConfigFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, err := loadStoreAndConfig(cmd)
	if err != nil {
		return err
	}

	bagStats, err := diag.BagSizeStats(store)
	if err != nil {
		return fmt.Errorf("princegen: %w", err)
	}

	fmt.Printf("elements: %d\n", store.TotalElems())
	fmt.Printf("bag sizes: mean=%.1f stddev=%.1f median=%.1f min=%.0f max=%.0f\n",
		bagStats.Mean, bagStats.StdDev, bagStats.Median, bagStats.Min, bagStats.Max)
	fmt.Println(diag.CPUBanner())

	if wordlistPath, _ := cmd.Flags().GetString("wordlist"); wordlistPath != "" {
		data, err := os.ReadFile(wordlistPath)
		if err != nil {
			return fmt.Errorf("princegen: fingerprinting %s: %w", wordlistPath, err)
		}
		fmt.Printf("dictionary fingerprint: %x\n", diag.Fingerprint(data))
	}
	return nil
}
