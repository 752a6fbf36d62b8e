package prince

import (
	"fmt"

	"github.com/elementchain/prince/utils/u128"
)

// Config holds the options recognized by the engine. It mirrors the
// original tool's --pw-min/--pw-max/--elem-cnt-min/--elem-cnt-max/
// --wl-dist-len/--skip/--limit flags, but carries no notion of how those
// values reached the caller.
type Config struct {
	// PwMin and PwMax bound the target password lengths chains are built
	// for, inclusive, both within [1, LMax].
	PwMin, PwMax int

	// ElemCntMin and ElemCntMax bound how many elements a chain may
	// concatenate.
	ElemCntMin, ElemCntMax int

	// WlDistLen selects the length distribution: when true, W[L] is
	// derived from the input store (|Bag(L)|); otherwise the baked-in
	// default table is used.
	WlDistLen bool

	// Skip suppresses emission for global positions below this value.
	Skip u128.Uint128

	// Limit caps the number of emitted candidates; zero means unlimited.
	Limit u128.Uint128
}

// DefaultConfig returns the original tool's defaults: pw-min=1, pw-max=16,
// elem-cnt-min=1, elem-cnt-max=8, wl-dist-len=false, skip=0, limit=0.
func DefaultConfig() Config {
	return Config{
		PwMin:      1,
		PwMax:      LMax,
		ElemCntMin: 1,
		ElemCntMax: 8,
	}
}

// Validate checks the bounds that do not require a populated store or a
// computed keyspace. NewEngine performs the remaining skip/limit-vs-keyspace
// check once the total keyspace is known.
func (c Config) Validate() error {
	if c.PwMin < 1 || c.PwMin > LMax {
		return fmt.Errorf("prince: pw-min (%d) must be in [1, %d]", c.PwMin, LMax)
	}
	if c.PwMax < 1 || c.PwMax > LMax {
		return fmt.Errorf("prince: pw-max (%d) must be in [1, %d]", c.PwMax, LMax)
	}
	if c.PwMin > c.PwMax {
		return fmt.Errorf("prince: pw-min (%d) must be <= pw-max (%d)", c.PwMin, c.PwMax)
	}
	if c.ElemCntMin < 1 {
		return fmt.Errorf("prince: elem-cnt-min (%d) must be >= 1", c.ElemCntMin)
	}
	if c.ElemCntMax < c.ElemCntMin {
		return fmt.Errorf("prince: elem-cnt-min (%d) must be <= elem-cnt-max (%d)", c.ElemCntMin, c.ElemCntMax)
	}
	if c.ElemCntMax > c.PwMax {
		return fmt.Errorf("prince: elem-cnt-max (%d) must be <= pw-max (%d)", c.ElemCntMax, c.PwMax)
	}
	return nil
}
