// SPDX-License-Identifier: MIT
// Package: gpmap/seqspace
//
// errors.go — sentinel errors for sequence-space validation and distances.
//
// Callers MUST branch with errors.Is; every returned error wraps exactly one
// of these sentinels with method context via %w.

package seqspace

import "errors"

var (
	// ErrLengthMismatch indicates two genotypes of different length were compared.
	// It signals a broken data-model invariant when raised from inside a landscape.
	ErrLengthMismatch = errors.New("seqspace: genotype length mismatch")

	// ErrNegativeLength indicates a negative genotype length.
	ErrNegativeLength = errors.New("seqspace: negative genotype length")

	// ErrMissingSite indicates a site of the wildtype has no alphabet entry.
	ErrMissingSite = errors.New("seqspace: missing site alphabet")

	// ErrUnknownSite indicates an alphabet entry for a site outside the wildtype.
	ErrUnknownSite = errors.New("seqspace: unknown site")

	// ErrBadSymbol indicates a symbol that is not exactly one rune.
	ErrBadSymbol = errors.New("seqspace: symbol must be a single rune")

	// ErrDuplicateSymbol indicates the same symbol listed twice at one site.
	ErrDuplicateSymbol = errors.New("seqspace: duplicate symbol")

	// ErrWildtypeNotInAlphabet indicates a site alphabet that does not contain
	// the wildtype symbol, so the reference would be unreachable.
	ErrWildtypeNotInAlphabet = errors.New("seqspace: wildtype symbol not in alphabet")

	// ErrSpaceTooLarge indicates the genotype count does not fit in an int.
	ErrSpaceTooLarge = errors.New("seqspace: genotype space exceeds int range")
)

// Method tags used as error prefixes.
const (
	methodValidate   = "Validate"
	methodEnumerate  = "Enumerate"
	methodHamming    = "Hamming"
	methodDistances  = "Distances"
	methodBinary     = "BinaryAlphabets"
	methodWildtypeOf = "WildtypeOf"
)
