// SPDX-License-Identifier: MIT
// Package: gpmap/simulate
//
// fuji.go — the Rough Mount Fuji landscape.
//
// Invariant (after every exported call returns):
//   phenotype[i] == roughness[i] - fieldStrength*hamming[i]   for all i.
//
// Concurrency:
//   - mu guards fieldStrength, rng, hamming, roughness and the phenotype write.
//   - Mutators hold the write lock across validation-free mutation and Build,
//     so the unbuilt state is never observable.

package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/gpmap/gpm"
	"github.com/katalvlaran/gpmap/seqspace"
)

// MountFuji is a genotype-phenotype map whose phenotypes follow the Rough
// Mount Fuji model. Create it with NewMountFuji or NewMountFujiFromLength.
type MountFuji struct {
	mu sync.RWMutex

	gpm *gpm.GenotypePhenotypeMap // genotypes fixed; phenotypes written by build

	fieldStrength float64
	rng           *rand.Rand

	hamming   []int     // nil until computed; immutable afterwards
	roughness []float64 // nil means "unset" and reads as zeros
}

// Landscape is a consistent copy of every array of a MountFuji, taken under
// one read lock. All slices are index-aligned with Genotypes.
type Landscape struct {
	Wildtype      string    `json:"wildtype"`
	FieldStrength float64   `json:"field_strength"`
	Genotypes     []string  `json:"genotypes"`
	Hamming       []int     `json:"hamming"`
	Roughness     []float64 `json:"roughness"`
	Phenotypes    []float64 `json:"phenotypes"`
}

// NewMountFuji enumerates every genotype reachable from wildtype under the
// per-site alphabets, computes Hamming distances to the wildtype, and builds
// the phenotype vector. Field strength defaults to 1 and roughness to zero.
//
// Implementation:
//   - Stage 1: Resolve options; reject a non-finite field strength.
//   - Stage 2: Enumerate genotypes (seqspace) and allocate the map (gpm).
//   - Stage 3: Cache Hamming distances, draw roughness if requested, Build.
//
// Errors:
//   - ErrInvalidFieldStrength, ErrInvalidRange.
//   - seqspace validation errors (ErrMissingSite, ErrBadSymbol, ...).
//
// Complexity: O(N·L) time and space for N genotypes of length L.
func NewMountFuji(wildtype string, alphabets seqspace.Alphabets, opts ...Option) (*MountFuji, error) {
	cfg := newFujiConfig(opts...)
	if !finite(cfg.fieldStrength) {
		return nil, fmt.Errorf("%s: c=%v: %w", methodNew, cfg.fieldStrength, ErrInvalidFieldStrength)
	}
	var (
		low, high float64
		rough     bool
		err       error
	)
	if cfg.roughness != nil {
		if low, high, rough, err = parseRange(cfg.roughness); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}

	genotypes, err := seqspace.Enumerate(wildtype, alphabets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	m, err := gpm.New(wildtype, genotypes, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	f := &MountFuji{
		gpm:           m,
		fieldStrength: cfg.fieldStrength,
		rng:           cfg.rng,
	}
	// Distances are fixed for the lifetime of the landscape; compute them once.
	if err = f.ensureHamming(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	// Roughness stays unset (zero field) unless WithRoughness asked for a draw.
	if rough {
		f.roughness = f.drawUniform(low, high)
	}
	f.buildLocked() // first build: phenotypes never start unbuilt

	return f, nil
}

// NewMountFujiFromLength builds a landscape over the binary alphabet {"0","1"}
// at every site of the given length, with the all-"0" string as wildtype.
func NewMountFujiFromLength(length int, opts ...Option) (*MountFuji, error) {
	alphabets, err := seqspace.BinaryAlphabets(length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromLength, err)
	}
	wildtype, err := seqspace.WildtypeOf(alphabets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromLength, err)
	}

	return NewMountFuji(wildtype, alphabets, opts...)
}

// FieldStrength returns the current slope of the fitness field.
func (f *MountFuji) FieldStrength() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.fieldStrength
}

// SetFieldStrength updates c and rebuilds phenotypes before returning.
// Hamming distances and roughness are untouched. A NaN or infinite c is
// rejected with ErrInvalidFieldStrength and nothing changes.
func (f *MountFuji) SetFieldStrength(c float64) error {
	if !finite(c) {
		return fmt.Errorf("%s: c=%v: %w", methodSetField, c, ErrInvalidFieldStrength)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fieldStrength = c
	f.buildLocked() // hamming and roughness are reused as-is

	return nil
}

// Hamming returns a copy of the Hamming distance of every genotype to the
// wildtype, index-aligned with Genotypes.
func (f *MountFuji) Hamming() []int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]int(nil), f.hamming...)
}

// Roughness returns a copy of the roughness vector. Before any non-empty
// SetRoughness call it is all zeros.
func (f *MountFuji) Roughness() []float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.roughnessLocked()
}

// HasRoughness reports whether a random roughness vector is set.
func (f *MountFuji) HasRoughness() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.roughness != nil
}

// SetRoughness regenerates the roughness vector and rebuilds phenotypes.
//
//	SetRoughness()          → all zeros (smooth Fuji), discarding any draw.
//	SetRoughness(low, high) → N independent draws from [low, high).
//
// Any other arity, a NaN/infinite bound, or low > high returns
// ErrInvalidRange; roughness and phenotypes keep their previous values.
// low == high yields a constant vector.
func (f *MountFuji) SetRoughness(bounds ...float64) error {
	low, high, rough, err := parseRange(bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSetRoughness, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if rough {
		// Fresh independent draw, even if the bounds did not change.
		f.roughness = f.drawUniform(low, high)
	} else {
		// Back to the unset state, which reads as zeros.
		f.roughness = nil
	}
	f.buildLocked()

	return nil
}

// Build recomputes phenotype[i] = roughness[i] - c*hamming[i] for every
// genotype. It is idempotent: repeated calls without a parameter change
// write bitwise-identical vectors. Mutators call it for you.
//
// Complexity: O(N).
func (f *MountFuji) Build() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buildLocked()
}

// Wildtype returns the reference genotype.
func (f *MountFuji) Wildtype() string { return f.gpm.Wildtype() }

// Len returns the number of genotypes.
func (f *MountFuji) Len() int { return f.gpm.Len() }

// Genotypes returns the genotype list in enumeration order.
func (f *MountFuji) Genotypes() []string { return f.gpm.Genotypes() }

// Index returns the position of genotype g.
func (f *MountFuji) Index(g string) (int, error) { return f.gpm.Index(g) }

// Phenotypes returns a copy of the phenotype vector.
func (f *MountFuji) Phenotypes() []float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.gpm.Phenotypes()
}

// Phenotype returns the phenotype of genotype g.
func (f *MountFuji) Phenotype(g string) (float64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.gpm.Phenotype(g)
}

// Snapshot copies every array under a single read lock.
func (f *MountFuji) Snapshot() Landscape {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return Landscape{
		Wildtype:      f.gpm.Wildtype(),
		FieldStrength: f.fieldStrength,
		Genotypes:     f.gpm.Genotypes(),
		Hamming:       append([]int(nil), f.hamming...),
		Roughness:     f.roughnessLocked(),
		Phenotypes:    f.gpm.Phenotypes(),
	}
}

// Peak returns the genotype with the highest phenotype; ties go to the
// earliest genotype in enumeration order.
func (f *MountFuji) Peak() (string, float64) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	genotypes := f.gpm.Genotypes()
	phenotypes := f.gpm.Phenotypes()
	best := 0
	for i := 1; i < len(phenotypes); i++ {
		if phenotypes[i] > phenotypes[best] {
			best = i
		}
	}

	return genotypes[best], phenotypes[best]
}

// Export returns an independent GenotypePhenotypeMap holding the current
// genotypes and phenotypes, for downstream tools that own their copy.
func (f *MountFuji) Export() (*gpm.GenotypePhenotypeMap, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	m, err := gpm.New(f.gpm.Wildtype(), f.gpm.Genotypes(), f.gpm.Phenotypes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExport, err)
	}

	return m, nil
}

// ensureHamming computes and caches distances on first use.
// Caller holds mu for writing (or has exclusive access during construction).
func (f *MountFuji) ensureHamming() error {
	// Cached: the wildtype and genotype list never change after New.
	if f.hamming != nil {
		return nil
	}
	hd, err := seqspace.Distances(f.gpm.Wildtype(), f.gpm.Genotypes())
	if err != nil {
		// Only reachable if enumeration produced ragged genotypes.
		return err
	}
	f.hamming = hd

	return nil
}

// roughnessLocked materializes the zero vector for the unset state.
func (f *MountFuji) roughnessLocked() []float64 {
	if f.roughness == nil {
		return make([]float64, f.gpm.Len())
	}

	return append([]float64(nil), f.roughness...)
}

// drawUniform samples Len() values from [low, high). Caller holds mu.
func (f *MountFuji) drawUniform(low, high float64) []float64 {
	out := make([]float64, f.gpm.Len())
	span := high - low // finite: parseRange rejects overflowing ranges
	for i := range out {
		out[i] = low + span*f.rng.Float64()
	}

	return out
}

// buildLocked writes the phenotype vector. Caller holds mu.
func (f *MountFuji) buildLocked() {
	phenotypes := make([]float64, len(f.hamming))
	for i, d := range f.hamming {
		var nu float64 // unset roughness contributes zero
		if f.roughness != nil {
			nu = f.roughness[i]
		}
		phenotypes[i] = nu - f.fieldStrength*float64(d)
	}
	// Length matches the genotype list by construction; a mismatch means the
	// index alignment of the derived arrays is broken.
	if err := f.gpm.SetPhenotypes(phenotypes); err != nil {
		panic(fmt.Sprintf("simulate: phenotype vector misaligned: %v", err))
	}
}

// parseRange validates roughness bounds. An empty slice means "no roughness".
func parseRange(bounds []float64) (low, high float64, present bool, err error) {
	switch len(bounds) {
	case 0:
		// No range: the smooth Fuji field.
		return 0, 0, false, nil
	case rangeArity:
		low, high = bounds[0], bounds[1]
	default:
		return 0, 0, false, fmt.Errorf("want 0 or %d bounds, got %d: %w", rangeArity, len(bounds), ErrInvalidRange)
	}
	if !finite(low) || !finite(high) {
		return 0, 0, false, fmt.Errorf("bounds (%v, %v) must be finite: %w", low, high, ErrInvalidRange)
	}
	if low > high {
		return 0, 0, false, fmt.Errorf("low %v > high %v: %w", low, high, ErrInvalidRange)
	}
	// The width must be representable too, or every draw degenerates to ±Inf/NaN.
	if !finite(high - low) {
		return 0, 0, false, fmt.Errorf("width of (%v, %v) overflows: %w", low, high, ErrInvalidRange)
	}

	return low, high, true, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
