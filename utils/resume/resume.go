// Package resume persists engine progress across restarts, and guards a
// restored position against being replayed with a different element set or
// configuration. The on-disk format is the 128-bit checkpoint the original
// tool's save_state/restore_state pair wrote, widened with a blake2b-512
// fingerprint of the inputs that produced that position.
package resume

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/u128"
)

const stateSize = 16 + blake2b.Size // 8+8 bytes of position, 64 bytes of fingerprint

// State is a checkpoint: a global keyspace position plus the fingerprint of
// the element store and config that position was computed under.
type State struct {
	Position    u128.Uint128
	Fingerprint [blake2b.Size]byte
}

// MarshalBinary encodes s as Position.Lo, Position.Hi (little-endian
// uint64s, matching the original's 64-bit-halves-of-a-u128 layout) followed
// by the raw fingerprint.
func (s State) MarshalBinary() ([]byte, error) {
	data := make([]byte, stateSize)
	binary.LittleEndian.PutUint64(data[0:8], s.Position.Lo)
	binary.LittleEndian.PutUint64(data[8:16], s.Position.Hi)
	copy(data[16:], s.Fingerprint[:])
	return data, nil
}

// UnmarshalBinary decodes the layout MarshalBinary produces.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != stateSize {
		return fmt.Errorf("resume: state is %d bytes, want %d", len(data), stateSize)
	}
	s.Position.Lo = binary.LittleEndian.Uint64(data[0:8])
	s.Position.Hi = binary.LittleEndian.Uint64(data[8:16])
	copy(s.Fingerprint[:], data[16:])
	return nil
}

// Save writes state to w.
func Save(w io.Writer, state State) error {
	data, _ := state.MarshalBinary()
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("resume: write: %w", err)
	}
	return nil
}

// Load reads a State previously written by Save.
func Load(r io.Reader) (State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("resume: read: %w", err)
	}
	var s State
	if err := s.UnmarshalBinary(data); err != nil {
		return State{}, err
	}
	return s, nil
}

// Fingerprint hashes the element store and the config fields that affect
// keyspace layout (everything except Skip/Limit, which a resumed run is
// expected to override). Two runs that would build an identical set of
// chains hash to the same value.
func Fingerprint(store *prince.Store, cfg prince.Config) [blake2b.Size]byte {
	h, _ := blake2b.New512(nil)
	for l := 1; l <= prince.LMax; l++ {
		for _, w := range store.Bag(l) {
			h.Write(w)
			h.Write([]byte{0})
		}
		h.Write([]byte{0xff})
	}
	var cfgBuf [8 * 4]byte
	binary.LittleEndian.PutUint64(cfgBuf[0:8], uint64(cfg.PwMin))
	binary.LittleEndian.PutUint64(cfgBuf[8:16], uint64(cfg.PwMax))
	binary.LittleEndian.PutUint64(cfgBuf[16:24], uint64(cfg.ElemCntMin))
	binary.LittleEndian.PutUint64(cfgBuf[24:32], uint64(cfg.ElemCntMax))
	h.Write(cfgBuf[:])
	if cfg.WlDistLen {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}

	var out [blake2b.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Verify reports an error if state was checkpointed under a different store
// or config than the one about to resume with it.
func Verify(state State, store *prince.Store, cfg prince.Config) error {
	want := Fingerprint(store, cfg)
	if state.Fingerprint != want {
		return fmt.Errorf("resume: fingerprint mismatch: checkpoint was taken with a different element set or configuration")
	}
	return nil
}
