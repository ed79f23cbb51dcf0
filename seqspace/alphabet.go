// SPDX-License-Identifier: MIT
// Package: gpmap/seqspace
//
// alphabet.go — per-site mutation alphabets and their validation.
//
// Contract:
//   - Sites are indexed 0..L-1 where L is the rune length of the wildtype.
//   - Every site must have an entry; entries outside 0..L-1 are rejected.
//   - A nil or empty entry pins the site to its wildtype symbol.
//   - Non-empty entries must contain the wildtype symbol, hold single-rune
//     symbols only, and list each symbol once.

package seqspace

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Binary symbols used by BinaryAlphabets; the first one builds the wildtype.
const (
	binaryZero = "0"
	binaryOne  = "1"
)

// Alphabets maps a site index to the ordered symbols allowed at that site.
type Alphabets map[int][]string

// Clone returns a deep copy so callers cannot alias the symbol slices.
func (a Alphabets) Clone() Alphabets {
	if a == nil {
		return nil
	}
	out := make(Alphabets, len(a))
	for site, syms := range a {
		out[site] = slices.Clone(syms)
	}

	return out
}

// BinaryAlphabets returns {"0","1"} at every site of a genotype of the given length.
// Complexity: O(length).
func BinaryAlphabets(length int) (Alphabets, error) {
	if length < 0 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodBinary, length, ErrNegativeLength)
	}
	out := make(Alphabets, length)
	for i := 0; i < length; i++ {
		out[i] = []string{binaryZero, binaryOne}
	}

	return out, nil
}

// WildtypeOf derives a reference genotype by taking the first symbol at
// every site. Sites must be contiguous from 0 and every alphabet non-empty.
func WildtypeOf(alphabets Alphabets) (string, error) {
	buf := make([]rune, len(alphabets))
	for i := range buf {
		syms, ok := alphabets[i]
		if !ok {
			return "", fmt.Errorf("%s: site %d: %w", methodWildtypeOf, i, ErrMissingSite)
		}
		if len(syms) == 0 {
			return "", fmt.Errorf("%s: site %d has no symbols: %w", methodWildtypeOf, i, ErrMissingSite)
		}
		r, err := symbolRune(syms[0])
		if err != nil {
			return "", fmt.Errorf("%s: site %d: %w", methodWildtypeOf, i, err)
		}
		buf[i] = r
	}

	return string(buf), nil
}

// Validate checks alphabets against the wildtype without expanding them.
func Validate(wildtype string, alphabets Alphabets) error {
	if _, err := resolve(wildtype, alphabets); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}

	return nil
}

// resolve turns alphabets into per-site rune slices in site order.
// Pinned sites resolve to the single wildtype rune.
func resolve(wildtype string, alphabets Alphabets) ([][]rune, error) {
	wt := []rune(wildtype)

	// Reject foreign sites first, smallest index first for stable messages.
	sites := make([]int, 0, len(alphabets))
	for site := range alphabets {
		sites = append(sites, site)
	}
	slices.Sort(sites)
	for _, site := range sites {
		if site < 0 || site >= len(wt) {
			return nil, fmt.Errorf("site %d outside [0,%d): %w", site, len(wt), ErrUnknownSite)
		}
	}

	out := make([][]rune, len(wt))
	for i, want := range wt {
		syms, ok := alphabets[i]
		if !ok {
			return nil, fmt.Errorf("site %d: %w", i, ErrMissingSite)
		}
		if len(syms) == 0 {
			out[i] = []rune{want}
			continue
		}

		runes := make([]rune, 0, len(syms))
		hasWildtype := false
		for _, s := range syms {
			r, err := symbolRune(s)
			if err != nil {
				return nil, fmt.Errorf("site %d: %w", i, err)
			}
			if slices.Contains(runes, r) {
				return nil, fmt.Errorf("site %d: symbol %q: %w", i, s, ErrDuplicateSymbol)
			}
			if r == want {
				hasWildtype = true
			}
			runes = append(runes, r)
		}
		if !hasWildtype {
			return nil, fmt.Errorf("site %d: %q not in %v: %w", i, string(want), syms, ErrWildtypeNotInAlphabet)
		}
		out[i] = runes
	}

	return out, nil
}

// symbolRune returns the only rune of s.
func symbolRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("symbol %q: %w", s, ErrBadSymbol)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("symbol %q: %w", s, ErrBadSymbol)
	}

	return r, nil
}
