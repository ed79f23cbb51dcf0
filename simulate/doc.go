// SPDX-License-Identifier: MIT

// Package simulate builds synthetic genotype-phenotype maps from the Rough
// Mount Fuji (RMF) fitness-landscape model.
//
// A Mount Fuji landscape puts a single fitness peak on the wildtype and lets
// fitness fall linearly with Hamming distance from it (the "fitness field").
// Roughness adds an independent random term to every genotype:
//
//	f(g) = ν(g) - c · d(g₀, g)
//
// where ν is the roughness, c the field strength and d the Hamming distance
// between g and the wildtype g₀ (Szendro et al., J. Stat. Mech. 2013, P01005).
//
// Lifecycle:
//
//	NewMountFuji / NewMountFujiFromLength enumerate the genotype space,
//	cache Hamming distances, and build phenotypes once with zero roughness
//	(unless WithRoughness is given). SetFieldStrength and SetRoughness rebuild
//	the phenotype vector before they return, so a reader never observes
//	phenotypes that disagree with the current parameters.
//
// Determinism:
//
//	Build is a pure function of (field strength, roughness, hamming).
//	Roughness draws come from the configured *rand.Rand; use WithSeed for
//	reproducible landscapes.
//
// Concurrency:
//
//	A MountFuji is safe for concurrent use. Field strength, Hamming distances,
//	roughness and phenotypes change together under one lock; Snapshot reads
//	them together.
//
// Files:
//
//	Spec/LoadSpec describe a landscape in YAML (gopkg.in/yaml.v3) layered over
//	embedded defaults.
package simulate
