// SPDX-License-Identifier: MIT
// Package: gpmap/gpm
//
// types.go — GenotypePhenotypeMap, sentinel errors and the New constructor.

package gpm

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

// Sentinel errors for map construction and lookups.
var (
	// ErrLengthMismatch indicates misaligned vectors or genotypes whose length
	// differs from the wildtype.
	ErrLengthMismatch = errors.New("gpm: length mismatch")

	// ErrDuplicateGenotype indicates the same genotype appears twice.
	ErrDuplicateGenotype = errors.New("gpm: duplicate genotype")

	// ErrWildtypeMissing indicates the wildtype is absent from the genotype list.
	ErrWildtypeMissing = errors.New("gpm: wildtype not in genotypes")

	// ErrGenotypeNotFound indicates a lookup of a genotype outside the map.
	ErrGenotypeNotFound = errors.New("gpm: genotype not found")
)

// GenotypePhenotypeMap assigns one phenotype value to every genotype of a
// fixed, ordered genotype list.
//
// wildtype, genotypes and index are written once in New and read-only after.
// mu guards phenotypes.
type GenotypePhenotypeMap struct {
	mu sync.RWMutex // guards phenotypes

	wildtype  string
	genotypes []string       // fixed order, defines the index space
	index     map[string]int // genotype → position in genotypes

	phenotypes []float64 // index-aligned with genotypes
}

// New builds a map from a wildtype, an ordered genotype list and an
// index-aligned phenotype vector. A nil phenotype vector allocates zeros.
// Inputs are copied; the caller keeps ownership of its slices.
//
// Errors:
//   - ErrLengthMismatch: len(phenotypes) != len(genotypes), or a genotype
//     whose rune length differs from the wildtype.
//   - ErrDuplicateGenotype: a genotype listed twice.
//   - ErrWildtypeMissing: wildtype not among genotypes.
//
// Complexity: O(N·L) time, O(N) space.
func New(wildtype string, genotypes []string, phenotypes []float64) (*GenotypePhenotypeMap, error) {
	if phenotypes == nil {
		phenotypes = make([]float64, len(genotypes))
	}
	if len(phenotypes) != len(genotypes) {
		return nil, fmt.Errorf("New: %d phenotypes for %d genotypes: %w",
			len(phenotypes), len(genotypes), ErrLengthMismatch)
	}

	wantLen := utf8.RuneCountInString(wildtype)
	index := make(map[string]int, len(genotypes))
	for i, g := range genotypes {
		if n := utf8.RuneCountInString(g); n != wantLen {
			return nil, fmt.Errorf("New: genotype[%d]=%q has length %d, wildtype %d: %w",
				i, g, n, wantLen, ErrLengthMismatch)
		}
		if j, dup := index[g]; dup {
			return nil, fmt.Errorf("New: %q at %d and %d: %w", g, j, i, ErrDuplicateGenotype)
		}
		index[g] = i
	}
	if _, ok := index[wildtype]; !ok {
		return nil, fmt.Errorf("New: %q: %w", wildtype, ErrWildtypeMissing)
	}

	return &GenotypePhenotypeMap{
		wildtype:   wildtype,
		genotypes:  append([]string(nil), genotypes...),
		index:      index,
		phenotypes: append([]float64(nil), phenotypes...),
	}, nil
}
