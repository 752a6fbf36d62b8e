// Package prince implements the candidate-generation engine of the PRINCE
// (PRobability INfinite Chained Elements) algorithm: given a dictionary of
// short elements, it deterministically enumerates every password formed by
// concatenating a bounded sequence of elements, favoring shorter total
// lengths built from more common component lengths.
//
// The package is deliberately narrow: reading wordlists, parsing flags,
// reporting progress and persisting resume state live in sibling
// collaborator packages (utils/wordlist, utils/resume, utils/diag,
// utils/config, cmd/princegen). prince itself only holds the element store,
// the chain model, the 128-bit keyspace arithmetic and the scheduler.
package prince
