// SPDX-License-Identifier: MIT

// Package gpmap builds synthetic genotype-phenotype maps for testing
// fitness-landscape analysis pipelines.
//
// Under the hood, everything is organized under three subpackages:
//
//	seqspace/ — genotype-space enumeration from per-site alphabets, Hamming distance
//	gpm/      — GenotypePhenotypeMap: ordered genotypes + index-aligned phenotypes
//	simulate/ — Rough Mount Fuji landscapes (linear field + uniform roughness), YAML specs
//
// and one command:
//
//	cmd/fujisim — build a landscape from flags or YAML and print it as a table or JSON
//
// Quick example (binary length 3, field strength 1, no roughness):
//
//	000 →  0     011 → -2
//	001 → -1     101 → -2
//	010 → -1     110 → -2
//	100 → -1     111 → -3
//
//	go get github.com/katalvlaran/gpmap
package gpmap
