// SPDX-License-Identifier: MIT
// Package: gpmap/seqspace
//
// hamming.go — Hamming distance between genotypes.

package seqspace

import "fmt"

// Hamming counts the sites at which a and b differ. Both genotypes must have
// the same rune length, otherwise ErrLengthMismatch is returned.
// Complexity: O(L) time, O(L) space for the rune conversion.
func Hamming(a, b string) (int, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, fmt.Errorf("%s: %q (%d) vs %q (%d): %w",
			methodHamming, a, len(ra), b, len(rb), ErrLengthMismatch)
	}

	return hammingRunes(ra, rb), nil
}

// Distances returns Hamming(reference, genotypes[i]) for every i, index-aligned
// with genotypes. The first mismatching genotype aborts with ErrLengthMismatch.
func Distances(reference string, genotypes []string) ([]int, error) {
	ref := []rune(reference)
	out := make([]int, len(genotypes))
	for i, g := range genotypes {
		rg := []rune(g)
		if len(rg) != len(ref) {
			return nil, fmt.Errorf("%s: genotype[%d]=%q has length %d, reference %d: %w",
				methodDistances, i, g, len(rg), len(ref), ErrLengthMismatch)
		}
		out[i] = hammingRunes(ref, rg)
	}

	return out, nil
}

func hammingRunes(a, b []rune) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
