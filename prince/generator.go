package prince

// compositionForIndex decodes idx, a bitmap over the l1 = L-1 cut-point
// positions of a length-L composition, into its part lengths. Scanning bits
// from the LSB, a set bit closes the current part and starts a new one; a
// clear bit extends the current part by one. A final implicit close emits
// the last part. This is the same bitmap encoding the original tool's
// chain_gen_with_idx uses, and it yields exactly 2^l1 compositions of L,
// enumerated in ascending idx order.
func compositionForIndex(l1, idx int) []int {
	parts := make([]int, 0, l1+1)
	dbKey := 1
	for shr := 0; shr < l1; shr++ {
		if (idx>>shr)&1 == 1 {
			parts = append(parts, dbKey)
			dbKey = 1
		} else {
			dbKey++
		}
	}
	parts = append(parts, dbKey)
	return parts
}

// generateChains enumerates every composition of pwLen, keeping those whose
// every part has a non-empty bag in store and whose part count lies in
// [elemCntMin, elemCntMax]. The result preserves ascending-idx generation
// order, the stable tie-break baseline for the later keyspace sort.
func generateChains(pwLen int, store *Store, elemCntMin, elemCntMax int) []*Chain {
	l1 := pwLen - 1
	chainsCnt := 1 << l1

	chains := make([]*Chain, 0, chainsCnt)
	for idx := 0; idx < chainsCnt; idx++ {
		parts := compositionForIndex(l1, idx)

		k := len(parts)
		if k < elemCntMin || k > elemCntMax {
			continue
		}

		chain := newChain(parts)
		if !chain.validWithStore(store) {
			continue
		}

		chains = append(chains, chain)
	}
	return chains
}
