// SPDX-License-Identifier: MIT

// Package seqspace enumerates combinatorial sequence spaces and measures
// distances inside them.
//
// A sequence space is described by a wildtype (reference) genotype of length L
// and an Alphabets table mapping every site 0..L-1 to the ordered symbols
// allowed at that site. Enumerate expands the table into every reachable
// genotype in a fixed, repeatable order; Hamming counts differing sites
// between two genotypes of equal length.
//
// Ordering:
//
//	Genotypes are produced as a Cartesian product with site 0 varying slowest
//	and site L-1 varying fastest; symbols follow alphabet order. For the
//	binary length-2 space the order is 00, 01, 10, 11.
//
// Symbols are single runes, so "AAG" and "αβγ" both have length 3.
//
// Errors:
//
//	ErrLengthMismatch        - Hamming on genotypes of different length.
//	ErrNegativeLength        - BinaryAlphabets with length < 0.
//	ErrMissingSite           - a site 0..L-1 has no alphabet entry.
//	ErrUnknownSite           - an alphabet entry names a site outside 0..L-1.
//	ErrBadSymbol             - a symbol is not exactly one rune.
//	ErrDuplicateSymbol       - a symbol is listed twice at one site.
//	ErrWildtypeNotInAlphabet - a site's alphabet omits the wildtype symbol.
//	ErrSpaceTooLarge         - the genotype count overflows int.
package seqspace
