package prince

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/elementchain/prince/utils/u128"
)

type collectSink struct {
	out [][]byte
}

func (c *collectSink) Emit(password []byte) (bool, error) {
	cp := make([]byte, len(password))
	copy(cp, password)
	c.out = append(c.out, cp)
	return true, nil
}

func runAll(t *testing.T, cfg Config, store *Store) [][]byte {
	t.Helper()
	e, err := NewEngine(cfg, store)
	require.NoError(t, err)
	sink := &collectSink{}
	require.NoError(t, e.Run(context.Background(), sink))
	require.Equal(t, 0, e.totalKsPos.Cmp(e.windowEnd))
	return sink.out
}

func toStrings(candidates [][]byte) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = string(c)
	}
	return out
}

// S1 — trivial single-element.
func TestScenarioS1(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))

	cfg := Config{PwMin: 1, PwMax: 1, ElemCntMin: 1, ElemCntMax: 1}
	out := runAll(t, cfg, store)
	require.Equal(t, []string{"a"}, toStrings(out))
}

// S2 — two elements, length 2.
func TestScenarioS2(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))
	store.Insert([]byte("b"))

	cfg := Config{PwMin: 2, PwMax: 2, ElemCntMin: 1, ElemCntMax: 2, WlDistLen: true}
	out := toStrings(runAll(t, cfg, store))
	require.Len(t, out, 4)
	want := map[string]bool{"aa": true, "ab": true, "ba": true, "bb": true}
	got := map[string]bool{}
	for _, c := range out {
		got[c] = true
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidate set mismatch (-want +got):\n%s", diff)
	}
}

func s3Config() Config {
	return Config{PwMin: 2, PwMax: 3, ElemCntMin: 1, ElemCntMax: 3, WlDistLen: true}
}

func s3Store() *Store {
	store := NewStore()
	for _, w := range []string{"ab", "cd", "x", "y"} {
		store.Insert([]byte(w))
	}
	return store
}

// S3 — mixed lengths: 6 candidates of length 2, 16 of length 3, 22 total.
func TestScenarioS3(t *testing.T) {
	store := s3Store()
	out := runAll(t, s3Config(), store)
	require.Len(t, out, 22)

	byLen := map[int]int{}
	for _, c := range out {
		byLen[len(c)]++
	}
	require.Equal(t, 6, byLen[2])
	require.Equal(t, 16, byLen[3])
}

// S4 — skip/limit slice equals the corresponding window of the full run.
func TestScenarioS4(t *testing.T) {
	store := s3Store()
	full := toStrings(runAll(t, s3Config(), store))
	require.Len(t, full, 22)

	cfg := s3Config()
	cfg.Skip = u128.FromUint64(10)
	cfg.Limit = u128.FromUint64(5)
	slice := toStrings(runAll(t, cfg, store))

	require.Equal(t, full[10:15], slice)
}

// S5 — default vs wordlist distribution produce the same total count and
// the same candidate multiset. Emission order is not compared: for this
// input the length order alone fixes it, so both runs emit the same sequence.
func TestScenarioS5(t *testing.T) {
	store := NewStore()
	for i := 0; i < 100; i++ {
		store.Insert([]byte{'a', byte('a' + i%26), byte('0' + i%10), byte('A' + i%5), byte('0' + i%3)})
	}
	store.Insert([]byte("xyz"))

	base := Config{PwMin: 3, PwMax: 8, ElemCntMin: 1, ElemCntMax: 2}

	defaultCfg := base
	defaultCfg.WlDistLen = false
	defaultOut := toStrings(runAll(t, defaultCfg, store))

	wlCfg := base
	wlCfg.WlDistLen = true
	wlOut := toStrings(runAll(t, wlCfg, store))

	require.Equal(t, len(defaultOut), len(wlOut))

	sortedDefault := append([]string(nil), defaultOut...)
	sortedWl := append([]string(nil), wlOut...)
	require.ElementsMatch(t, sortedDefault, sortedWl)
}

// S6 — resume: concatenating a first-half slice and the remainder
// reproduces the full enumeration.
func TestScenarioS6(t *testing.T) {
	store := s3Store()
	cfg := s3Config()

	e, err := NewEngine(cfg, store)
	require.NoError(t, err)
	total := e.TotalKeyspace()
	half, _ := total.DivUint64(2)

	cfgA := cfg
	cfgA.Limit = half
	sliceA := runAllWithEngine(t, cfgA, store)

	savedPos := half // Position() after running (skip=0, limit=half) is exactly half

	cfgB := cfg
	cfgB.Skip = savedPos
	sliceB := runAllWithEngine(t, cfgB, store)

	full := runAllWithEngine(t, cfg, store)

	combined := append(append([][]byte{}, sliceA...), sliceB...)
	require.Equal(t, toStrings(full), toStrings(combined))
}

func runAllWithEngine(t *testing.T, cfg Config, store *Store) [][]byte {
	t.Helper()
	e, err := NewEngine(cfg, store)
	require.NoError(t, err)
	sink := &collectSink{}
	require.NoError(t, e.Run(context.Background(), sink))
	return sink.out
}

// Invariant checks (spec.md §8, properties 1-3).
func TestInvariantsHoldAfterRun(t *testing.T) {
	store := s3Store()
	e, err := NewEngine(s3Config(), store)
	require.NoError(t, err)

	var sumKs u128.Uint128
	for _, chains := range e.buckets {
		for _, c := range chains {
			sumKs = sumKs.Add(c.KsCnt)
		}
	}
	require.Equal(t, 0, sumKs.Cmp(e.TotalKeyspace()), "property 3")

	sink := &collectSink{}
	require.NoError(t, e.Run(context.Background(), sink))

	require.Equal(t, 0, e.Position().Cmp(e.TotalKeyspace()), "property 2 equality on completion")
	for _, chains := range e.buckets {
		for _, c := range chains {
			require.True(t, c.KsPos.Cmp(u128.Zero) >= 0)
			require.True(t, c.KsPos.Cmp(c.KsCnt) <= 0, "property 1")
		}
	}
}

func TestConfigValidationErrors(t *testing.T) {
	store := NewStore()
	store.Insert([]byte("a"))

	_, err := NewEngine(Config{PwMin: 5, PwMax: 2, ElemCntMin: 1, ElemCntMax: 1}, store)
	require.Error(t, err)

	_, err = NewEngine(Config{PwMin: 1, PwMax: 2, ElemCntMin: 3, ElemCntMax: 2}, store)
	require.Error(t, err)

	_, err = NewEngine(Config{PwMin: 1, PwMax: 2, ElemCntMin: 1, ElemCntMax: 3}, store)
	require.Error(t, err)

	cfg := Config{PwMin: 1, PwMax: 1, ElemCntMin: 1, ElemCntMax: 1, Skip: u128.FromUint64(1000)}
	_, err = NewEngine(cfg, store)
	require.Error(t, err)
}

func TestSinkStopPreservesPosition(t *testing.T) {
	store := s3Store()
	e, err := NewEngine(s3Config(), store)
	require.NoError(t, err)

	stopAfter := 5
	count := 0
	sink := SinkFunc(func(password []byte) (bool, error) {
		count++
		return count < stopAfter, nil
	})

	require.NoError(t, e.Run(context.Background(), sink))
	require.Equal(t, stopAfter, count)
	require.Equal(t, uint64(stopAfter), e.Position().Lo)
}
