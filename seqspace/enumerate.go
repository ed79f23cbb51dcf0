// SPDX-License-Identifier: MIT
// Package: gpmap/seqspace
//
// enumerate.go — expansion of per-site alphabets into the full genotype list.
//
// Determinism:
//   - Odometer order: the last site advances fastest, site 0 slowest.
//   - Symbols are taken in alphabet order, so equal inputs yield equal lists.
//
// Complexity:
//   - Time O(N·L), Space O(N·L) for N = Π|alphabet_i| genotypes of length L.
//   - No memory guard; callers size their spaces. Only a count that does not
//     fit in an int is rejected (ErrSpaceTooLarge).

package seqspace

import (
	"fmt"
	"math"
)

// Enumerate returns every genotype reachable from wildtype by independently
// varying each site over its alphabet. The wildtype itself is always included.
// For L = 0 the result is the single empty genotype.
func Enumerate(wildtype string, alphabets Alphabets) ([]string, error) {
	sites, err := resolve(wildtype, alphabets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}

	n, err := spaceSize(sites)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}

	out := make([]string, 0, n)
	digits := make([]int, len(sites)) // odometer position per site
	buf := make([]rune, len(sites))   // genotype under construction
	for i, syms := range sites {
		buf[i] = syms[0]
	}

	for {
		out = append(out, string(buf))

		// Advance the odometer from the last site; carry leftwards.
		i := len(sites) - 1
		for ; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(sites[i]) {
				buf[i] = sites[i][digits[i]]
				break
			}
			digits[i] = 0
			buf[i] = sites[i][0]
		}
		if i < 0 {
			break
		}
	}

	return out, nil
}

// Size reports how many genotypes Enumerate would return, without building them.
func Size(wildtype string, alphabets Alphabets) (int, error) {
	sites, err := resolve(wildtype, alphabets)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnumerate, err)
	}
	n, err := spaceSize(sites)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnumerate, err)
	}

	return n, nil
}

// spaceSize multiplies alphabet sizes, refusing products above math.MaxInt.
func spaceSize(sites [][]rune) (int, error) {
	n := 1
	for i, syms := range sites {
		// Every resolved site holds at least one symbol, so the division is safe.
		if n > math.MaxInt/len(syms) {
			return 0, fmt.Errorf("site %d: %w", i, ErrSpaceTooLarge)
		}
		n *= len(syms)
	}

	return n, nil
}
