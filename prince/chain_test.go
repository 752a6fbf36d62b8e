package prince

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elementchain/prince/utils/u128"
)

func TestChainKeyspace(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))
	store.Insert([]byte("b"))
	store.Insert([]byte("ab"))

	c := newChain([]int{1, 1})
	c.computeKeyspace(store)
	require.Equal(t, u128.FromUint64(4), c.KsCnt)
}

func TestChainCandidateBijection(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))
	store.Insert([]byte("b"))

	c := newChain([]int{1, 1})
	c.computeKeyspace(store)

	seen := make(map[string]bool)
	for i := uint64(0); i < 4; i++ {
		cand := c.Candidate(u128.FromUint64(i), store)
		seen[string(cand)] = true
	}
	require.Len(t, seen, 4)
	for _, want := range []string{"aa", "ab", "ba", "bb"} {
		require.True(t, seen[want], "missing candidate %q", want)
	}
}

func TestChainCandidateMixedLengths(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("x"))
	store.Insert([]byte("y"))
	store.Insert([]byte("ab"))
	store.Insert([]byte("cd"))

	c := newChain([]int{1, 2})
	c.computeKeyspace(store)
	require.Equal(t, u128.FromUint64(4), c.KsCnt)

	seen := make(map[string]bool)
	for i := uint64(0); i < 4; i++ {
		seen[string(c.Candidate(u128.FromUint64(i), store))] = true
	}
	for _, want := range []string{"xab", "xcd", "yab", "ycd"} {
		require.True(t, seen[want], "missing candidate %q", want)
	}
}
