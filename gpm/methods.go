// SPDX-License-Identifier: MIT
// Package: gpmap/gpm
//
// methods.go — queries and the phenotype swap.
//
// Determinism:
//   - Genotypes() and Phenotypes() follow construction order.
//
// Concurrency:
//   - Immutable fields are read without locking; phenotypes under mu.

package gpm

import "fmt"

// Wildtype returns the reference genotype.
func (m *GenotypePhenotypeMap) Wildtype() string { return m.wildtype }

// Len returns the number of genotypes.
func (m *GenotypePhenotypeMap) Len() int { return len(m.genotypes) }

// Genotypes returns a copy of the ordered genotype list.
func (m *GenotypePhenotypeMap) Genotypes() []string {
	return append([]string(nil), m.genotypes...)
}

// Index returns the position of genotype g, or ErrGenotypeNotFound.
// Complexity: O(1).
func (m *GenotypePhenotypeMap) Index(g string) (int, error) {
	i, ok := m.index[g]
	if !ok {
		return 0, fmt.Errorf("Index: %q: %w", g, ErrGenotypeNotFound)
	}

	return i, nil
}

// Phenotypes returns a copy of the phenotype vector.
//
// Complexity: O(N) time and space.
func (m *GenotypePhenotypeMap) Phenotypes() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]float64(nil), m.phenotypes...)
}

// Phenotype returns the phenotype of genotype g, or ErrGenotypeNotFound.
func (m *GenotypePhenotypeMap) Phenotype(g string) (float64, error) {
	i, ok := m.index[g]
	if !ok {
		return 0, fmt.Errorf("Phenotype: %q: %w", g, ErrGenotypeNotFound)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.phenotypes[i], nil
}

// SetPhenotypes replaces the whole phenotype vector. The new vector must be
// index-aligned with Genotypes(); on ErrLengthMismatch nothing changes.
//
// Implementation:
//   - Stage 1: Validate length outside the lock.
//   - Stage 2: Copy the input and swap it in under the write lock.
//
// Complexity: O(N) time and space.
func (m *GenotypePhenotypeMap) SetPhenotypes(phenotypes []float64) error {
	if len(phenotypes) != len(m.genotypes) {
		return fmt.Errorf("SetPhenotypes: %d values for %d genotypes: %w",
			len(phenotypes), len(m.genotypes), ErrLengthMismatch)
	}
	next := append([]float64(nil), phenotypes...)

	m.mu.Lock()
	m.phenotypes = next
	m.mu.Unlock()

	return nil
}
