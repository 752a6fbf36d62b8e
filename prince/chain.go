package prince

import "github.com/elementchain/prince/utils/u128"

// Chain is an ordered composition of element lengths ("parts") summing to a
// target password length. It references Bag(pi) for each part pi and
// carries the chain's keyspace count and current position.
type Chain struct {
	// Parts are the element lengths concatenated to form a candidate, in
	// order; sum(Parts) is the chain's target password length.
	Parts []int

	// KsCnt is the chain's keyspace: the product of |Bag(pi)| over Parts.
	KsCnt u128.Uint128

	// KsPos is the next index within this chain to emit. KsPos == KsCnt
	// means the chain is fully drained.
	KsPos u128.Uint128
}

func newChain(parts []int) *Chain {
	cp := make([]int, len(parts))
	copy(cp, parts)
	return &Chain{Parts: cp}
}

// length returns the chain's target password length.
func (c *Chain) length() int {
	total := 0
	for _, p := range c.Parts {
		total += p
	}
	return total
}

// validWithStore reports whether every part of the chain has a non-empty
// bag in store.
func (c *Chain) validWithStore(store *Store) bool {
	for _, p := range c.Parts {
		if store.Len(p) == 0 {
			return false
		}
	}
	return true
}

// computeKeyspace sets KsCnt from the bag sizes in store.
func (c *Chain) computeKeyspace(store *Store) {
	ks := u128.FromUint64(1)
	for _, p := range c.Parts {
		ks = ks.MulUint64(uint64(store.Len(p)))
	}
	c.KsCnt = ks
}

// Candidate materializes the password at index t within this chain's
// keyspace, via the mixed-radix decomposition of §4.3: for each part, emit
// Bag(pi)[t mod n_i] then advance t to t / n_i.
func (c *Chain) Candidate(t u128.Uint128, store *Store) []byte {
	out := make([]byte, 0, c.length())
	for _, p := range c.Parts {
		bag := store.Bag(p)
		n := uint64(len(bag))
		q, r := t.DivUint64(n)
		out = append(out, bag[r]...)
		t = q
	}
	return out
}
