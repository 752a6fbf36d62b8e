package resume

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/u128"
)

func TestStateRoundTrip(t *testing.T) {
	state := State{Position: u128.Uint128{Hi: 0x1122, Lo: 0x33445566}}
	copy(state.Fingerprint[:], []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd"))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, state))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, state, got)
}

func TestLoadRejectsWrongSize(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestFingerprintStableAndSensitive(t *testing.T) {
	store := prince.NewStore()
	store.Insert([]byte("ab"))
	store.Insert([]byte("cd"))
	cfg := prince.DefaultConfig()

	fp1 := Fingerprint(store, cfg)
	fp2 := Fingerprint(store, cfg)
	require.Equal(t, fp1, fp2)

	other := prince.NewStore()
	other.Insert([]byte("ab"))
	other.Insert([]byte("ce"))
	fp3 := Fingerprint(other, cfg)
	require.NotEqual(t, fp1, fp3)

	cfgChanged := cfg
	cfgChanged.PwMax = cfg.PwMax - 1
	fp4 := Fingerprint(store, cfgChanged)
	require.NotEqual(t, fp1, fp4)
}

func TestVerifyDetectsMismatch(t *testing.T) {
	store := prince.NewStore()
	store.Insert([]byte("ab"))
	cfg := prince.DefaultConfig()

	state := State{Position: u128.FromUint64(5), Fingerprint: Fingerprint(store, cfg)}
	require.NoError(t, Verify(state, store, cfg))

	other := prince.NewStore()
	other.Insert([]byte("cd"))
	require.Error(t, Verify(state, other, cfg))
}
