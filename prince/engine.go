package prince

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/elementchain/prince/utils/u128"
)

// Engine holds the setup computed once from a Store and a Config: the
// per-length chain buckets (sorted ascending by keyspace), the length
// visitation order (sorted descending by bag size), the per-length output
// quotas, and the total keyspace. Engine.Run then walks this fixed setup
// with the single mutable cursor the scheduler owns.
type Engine struct {
	store *Store
	cfg   Config

	buckets   map[int][]*Chain
	chainsPos map[int]int
	lengthOrder []int
	quotas    map[int]uint64

	totalKsCnt u128.Uint128
	totalKsPos u128.Uint128

	// windowEnd is the effective keyspace bound enforced by cfg.Limit:
	// skip+limit when limit is set, else the true total keyspace.
	windowEnd u128.Uint128
}

// NewEngine validates cfg, generates and sizes every chain for
// [cfg.PwMin, cfg.PwMax], and sorts buckets and the length order. Per-length
// chain generation and keyspace computation are independent and run
// concurrently; the scheduler itself remains single-threaded.
func NewEngine(cfg Config, store *Store) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lengths := make([]int, 0, cfg.PwMax-cfg.PwMin+1)
	for l := cfg.PwMin; l <= cfg.PwMax; l++ {
		lengths = append(lengths, l)
	}

	bucketsByIdx := make([][]*Chain, len(lengths))

	var g errgroup.Group
	for i, l := range lengths {
		i, l := i, l
		g.Go(func() error {
			chains := generateChains(l, store, cfg.ElemCntMin, cfg.ElemCntMax)
			for _, c := range chains {
				c.computeKeyspace(store)
			}
			bucketsByIdx[i] = chains
			return nil
		})
	}
	// generateChains/computeKeyspace never fail; the error return exists so
	// a future per-length step (e.g. a cancellable loader) can propagate one.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("prince: setup: %w", err)
	}

	e := &Engine{
		store:     store,
		cfg:       cfg,
		buckets:   make(map[int][]*Chain, len(lengths)),
		chainsPos: make(map[int]int, len(lengths)),
		quotas:    make(map[int]uint64, len(lengths)),
	}

	var total u128.Uint128
	for i, l := range lengths {
		chains := bucketsByIdx[i]
		sort.SliceStable(chains, func(a, b int) bool {
			return chains[a].KsCnt.Cmp(chains[b].KsCnt) < 0
		})
		e.buckets[l] = chains
		e.chainsPos[l] = 0
		for _, c := range chains {
			total = total.Add(c.KsCnt)
		}
		e.quotas[l] = lengthQuota(l, store, cfg.WlDistLen)
	}
	e.totalKsCnt = total

	if cfg.Skip.Cmp(total) > 0 {
		return nil, fmt.Errorf("prince: skip (%s) exceeds total keyspace (%s)", cfg.Skip, total)
	}
	e.windowEnd = total
	if !cfg.Limit.IsZero() {
		end := cfg.Skip.Add(cfg.Limit)
		if end.Cmp(total) > 0 {
			return nil, fmt.Errorf("prince: skip+limit (%s) exceeds total keyspace (%s)", end, total)
		}
		e.windowEnd = end
	}

	order := make([]int, len(lengths))
	copy(order, lengths)
	sort.SliceStable(order, func(a, b int) bool {
		return store.Len(order[a]) > store.Len(order[b])
	})
	e.lengthOrder = order

	return e, nil
}

// TotalKeyspace returns the sum of every chain's keyspace across every
// length in [cfg.PwMin, cfg.PwMax]. It is fixed after NewEngine returns.
func (e *Engine) TotalKeyspace() u128.Uint128 {
	return e.totalKsCnt
}

// Position returns the scheduler's current global position, total_ks_pos.
// It is safe to read after Run returns (whether it completed, was canceled,
// or the sink requested a stop) and is what a caller should persist for a
// later resume via Config.Skip.
func (e *Engine) Position() u128.Uint128 {
	return e.totalKsPos
}

// Run walks the keyspace exactly once, in the order fixed by NewEngine,
// handing every candidate in [cfg.Skip, cfg.Skip+cfg.Limit) (or
// [cfg.Skip, TotalKeyspace()) when cfg.Limit is zero) to sink, in strictly
// ascending global position. It returns the first error Emit returns, or
// ctx.Err() if ctx is found canceled at the start of a pass (ctx is not
// checked between the batches of one pass). A sink-requested stop
// (cont=false, err=nil) is not an error: Run returns nil and Position()
// reports the exact position to resume from.
func (e *Engine) Run(ctx context.Context, sink Sink) error {
	one := u128.FromUint64(1)

	for e.totalKsPos.Cmp(e.windowEnd) < 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, l := range e.lengthOrder {
			// A length whose own bag is empty still gets a quota of 0 from
			// the wordlist-derived distribution even though chains built
			// from other part lengths may target it (e.g. L=2 composed as
			// (1,1) with no two-byte elements at all). A quota of 0 would
			// starve that bucket forever and the scheduler would never
			// terminate, which the "soft quota, never discards a
			// candidate" semantics (§9 Design Notes) rules out. Flooring
			// the effective per-pass quota at 1 keeps the quota soft for
			// every length that does have its own elements while still
			// guaranteeing forward progress for the rest.
			outsCnt := e.quotas[l]
			if outsCnt == 0 {
				outsCnt = 1
			}
			outsPos := uint64(0)
			bucket := e.buckets[l]

			for outsPos < outsCnt {
				cp := e.chainsPos[l]
				if cp == len(bucket) {
					break
				}
				c := bucket[cp]

				remChain := c.KsCnt.Sub(c.KsPos)
				remWindow := e.windowEnd.Sub(e.totalKsPos)
				remQuota := u128.FromUint64(outsCnt - outsPos)
				iter := u128.Min(u128.Min(remChain, remWindow), remQuota)

				if iter.IsZero() {
					break
				}

				end := e.totalKsPos.Add(iter)

				if end.Cmp(e.cfg.Skip) > 0 {
					startOffset := u128.Zero
					if e.cfg.Skip.Cmp(e.totalKsPos) > 0 {
						startOffset = e.cfg.Skip.Sub(e.totalKsPos)
					}
					t := c.KsPos.Add(startOffset)
					stop := c.KsPos.Add(iter)

					for t.Cmp(stop) < 0 {
						candidate := c.Candidate(t, e.store)
						cont, err := sink.Emit(candidate)
						if err != nil {
							return err
						}

						emitted := t.Sub(c.KsPos).Add(one)
						if !cont {
							c.KsPos = c.KsPos.Add(emitted)
							if c.KsPos.Cmp(c.KsCnt) == 0 {
								e.chainsPos[l]++
							}
							e.totalKsPos = e.totalKsPos.Add(emitted)
							return nil
						}

						t = t.Add(one)
					}
				}

				c.KsPos = c.KsPos.Add(iter)
				if c.KsPos.Cmp(c.KsCnt) == 0 {
					e.chainsPos[l]++
				}

				iterLo := iter.Lo // iter <= remQuota <= outsCnt fits in a uint64
				outsPos += iterLo
				e.totalKsPos = e.totalKsPos.Add(iter)

				if e.totalKsPos.Cmp(e.windowEnd) == 0 {
					return nil
				}
			}
		}
	}

	return nil
}
