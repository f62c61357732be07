// Package testutil provides testing utilities for searchlru.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe RNG plus generators for key sets
// and skewed access patterns.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	words := rng.UniqueWords(1000, 3, 8) // distinct lowercase words
//	ids := rng.Perm(1000)                // shuffled ints in [0, 1000)
//
// # Access Patterns
//
//	i := rng.Zipf(len(words), 1.2) // hot keys are drawn more often
package testutil
