package prince

// defaultLengthDist is the baked-in, rockyou-derived per-length output
// quota, indices 1..24. Lengths beyond this table default to 1.
var defaultLengthDist = [...]uint64{
	0, // index 0 is unused; lengths start at 1
	15, 56, 350, 3315, 43721, 276252, 201748, 226412, 119885, 75075,
	26323, 13373, 6353, 3540, 1877, 972, 311, 151, 81, 66, 21, 16, 13, 13,
}

// lengthQuota returns W[L], the soft per-pass output quota for length l,
// either from the baked default table or, when wlDistLen is true, from the
// store's own bag sizes.
func lengthQuota(l int, store *Store, wlDistLen bool) uint64 {
	if wlDistLen {
		return uint64(store.Len(l))
	}
	if l < len(defaultLengthDist) {
		return defaultLengthDist[l]
	}
	return 1
}
