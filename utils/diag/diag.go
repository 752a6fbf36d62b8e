// Package diag reports on a configured engine and its inputs: keyspace size
// in bits, per-length bag size statistics, host CPU identification, and a
// content fingerprint of the loaded dictionary. None of it is on the
// enumeration hot path; it exists for the CLI's keyspace/stats commands.
package diag

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/klauspost/cpuid/v2"
	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/u128"
)

var ln2 = new(big.Float).SetPrec(256).SetFloat64(0.6931471805599453)

// KeyspaceBits returns log2(n) at big.Float precision, for reporting
// keyspaces too large for a float64 mantissa to hold exactly.
func KeyspaceBits(n u128.Uint128) float64 {
	if n.IsZero() {
		return 0
	}
	x := new(big.Float).SetPrec(256).SetInt(n.Big())
	log2 := new(big.Float).SetPrec(256).Quo(bigfloat.Log(x), ln2)
	bits, _ := log2.Float64()
	return bits
}

// BagStats summarizes the bag sizes of a store across [1, prince.LMax].
type BagStats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// BagSizeStats computes BagStats over the non-empty bags of store.
func BagSizeStats(store *prince.Store) (BagStats, error) {
	var sizes stats.Float64Data
	for l := 1; l <= prince.LMax; l++ {
		if n := store.Len(l); n > 0 {
			sizes = append(sizes, float64(n))
		}
	}
	if len(sizes) == 0 {
		return BagStats{}, nil
	}

	mean, err := sizes.Mean()
	if err != nil {
		return BagStats{}, fmt.Errorf("diag: bag size mean: %w", err)
	}
	stddev, err := sizes.StandardDeviation()
	if err != nil {
		return BagStats{}, fmt.Errorf("diag: bag size stddev: %w", err)
	}
	median, err := sizes.Median()
	if err != nil {
		return BagStats{}, fmt.Errorf("diag: bag size median: %w", err)
	}
	min, err := sizes.Min()
	if err != nil {
		return BagStats{}, fmt.Errorf("diag: bag size min: %w", err)
	}
	max, err := sizes.Max()
	if err != nil {
		return BagStats{}, fmt.Errorf("diag: bag size max: %w", err)
	}
	return BagStats{Mean: mean, StdDev: stddev, Median: median, Min: min, Max: max}, nil
}

// CPUBanner renders a one-line identification of the host CPU, the way a
// long-running numeric job logs what it's about to run on.
func CPUBanner() string {
	return fmt.Sprintf("%s, %d physical / %d logical cores", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
}

// Fingerprint returns the BLAKE3-256 digest of a dictionary's raw bytes, so
// two runs can confirm they loaded the same wordlist without diffing it.
func Fingerprint(data []byte) [32]byte {
	return blake3.Sum256(data)
}
