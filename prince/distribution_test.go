package prince

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthQuotaDefaultTable(t *testing.T) {
	store := NewStore()
	require.Equal(t, uint64(15), lengthQuota(1, store, false))
	require.Equal(t, uint64(13), lengthQuota(24, store, false))
	require.Equal(t, uint64(1), lengthQuota(25, store, false))
	require.Equal(t, uint64(1), lengthQuota(100, store, false))
}

func TestLengthQuotaFromStore(t *testing.T) {
	store := NewStore()
	for i := 0; i < 5; i++ {
		store.Insert([]byte{'a' + byte(i)})
	}
	require.Equal(t, uint64(5), lengthQuota(1, store, true))
	require.Equal(t, uint64(0), lengthQuota(2, store, true))
}
