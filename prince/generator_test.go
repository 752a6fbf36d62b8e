package prince

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompositionForIndexCount(t *testing.T) {
	for l := 1; l <= 8; l++ {
		l1 := l - 1
		seen := make(map[string]bool)
		for idx := 0; idx < 1<<l1; idx++ {
			parts := compositionForIndex(l1, idx)
			sum := 0
			for _, p := range parts {
				sum += p
			}
			require.Equal(t, l, sum, "composition must sum to L")
			seen[partsKey(parts)] = true
		}
		// property 8: exactly 2^(L-1) compositions are generated before filtering.
		require.Equal(t, 1<<l1, len(seen))
	}
}

func partsKey(parts []int) string {
	key := ""
	for _, p := range parts {
		key += string(rune('0' + p))
		key += ","
	}
	return key
}

func TestGenerateChainsFiltersEmptyBagsAndCounts(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("ab"))
	store.Insert([]byte("cd"))
	store.Insert([]byte("x"))
	store.Insert([]byte("y"))

	// L=2: compositions are (2) and (1,1); both valid with this store.
	chains := generateChains(2, store, 1, 3)
	require.Len(t, chains, 2)

	// L=3: compositions (1,2),(2,1),(1,1,1) valid.
	chains3 := generateChains(3, store, 1, 3)
	require.Len(t, chains3, 3)
}

func TestGenerateChainsRespectsElemCntBounds(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))
	store.Insert([]byte("b"))

	// L=2 with elem_cnt_max=1 excludes the (1,1) composition (k=2) and the
	// (2) composition has an empty bag, leaving nothing.
	chains := generateChains(2, store, 1, 1)
	require.Len(t, chains, 0)

	chains2 := generateChains(2, store, 2, 2)
	require.Len(t, chains2, 1)
	require.Equal(t, []int{1, 1}, chains2[0].Parts)
}
