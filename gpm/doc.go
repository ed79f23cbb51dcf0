// SPDX-License-Identifier: MIT

// Package gpm provides the GenotypePhenotypeMap container: a reference
// (wildtype) genotype, an ordered genotype list and an index-aligned
// phenotype vector.
//
// The genotype order is fixed at construction and defines the index space
// shared by every derived array built on top of the map. Genotypes and the
// wildtype are immutable; only the phenotype vector can be replaced, and
// only as a whole (SetPhenotypes), so readers never see a half-written vector.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Getters return copies.
//
// Errors:
//
//	ErrLengthMismatch    - phenotype/genotype counts or genotype lengths differ.
//	ErrDuplicateGenotype - a genotype is listed twice.
//	ErrWildtypeMissing   - the wildtype is not among the genotypes.
//	ErrGenotypeNotFound  - lookup of an unknown genotype.
package gpm
