// SPDX-License-Identifier: MIT
// Package: gpmap/simulate
//
// spec.go — YAML landscape descriptions.
//
// Resolution order:
//   - Embedded defaults.yaml first, then the user document on top; only
//     fields present in the user document override.
//   - mutations (or wildtype) given → NewMountFuji; the wildtype is derived
//     from the first symbol per site when omitted. Setting length as well is
//     ambiguous and rejected with ErrInvalidSpec.
//   - otherwise → NewMountFujiFromLength(length), length defaulting to 4.
//   - roughness, when present, is applied with SetRoughness after
//     construction so every arity/order error maps to ErrInvalidRange.

package simulate

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gpmap/seqspace"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// defaultLength is the binary genotype length used when a spec names
// neither mutations, wildtype nor length.
const defaultLength = 4

// Spec is a serializable description of a Rough Mount Fuji landscape.
//
// The genotype space comes from exactly one source: Mutations/Wildtype for an
// explicit alphabet, or Length for a binary space. Length together with
// Mutations or Wildtype is rejected by Build.
type Spec struct {
	Wildtype      string           `yaml:"wildtype,omitempty"`
	Mutations     map[int][]string `yaml:"mutations,omitempty"` // site → symbols
	Length        *int             `yaml:"length,omitempty"`    // nil → defaultLength
	FieldStrength float64          `yaml:"field_strength"`
	Roughness     []float64        `yaml:"roughness,omitempty"` // [low, high]
	Seed          *int64           `yaml:"seed,omitempty"`
}

// DefaultSpec returns the embedded defaults.
func DefaultSpec() (*Spec, error) {
	s := &Spec{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	return s, nil
}

// ParseSpec decodes a YAML document over the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func ParseSpec(data []byte) (*Spec, error) {
	s, err := DefaultSpec()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParseSpec, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %w", methodParseSpec, ErrInvalidSpec, err)
	}

	return s, nil
}

// LoadSpec reads a YAML file and decodes it with ParseSpec. An empty path
// returns the defaults.
func LoadSpec(path string) (*Spec, error) {
	if path == "" {
		return DefaultSpec()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: reading %s: %w", methodLoadSpec, path, err)
	}

	return ParseSpec(data)
}

// Options converts the scalar parameters into construction options.
func (s *Spec) Options() []Option {
	opts := []Option{WithFieldStrength(s.FieldStrength)}
	if s.Seed != nil {
		opts = append(opts, WithSeed(*s.Seed))
	}

	return opts
}

// Build constructs the described landscape.
func (s *Spec) Build() (*MountFuji, error) {
	var (
		f   *MountFuji
		err error
	)
	explicit := len(s.Mutations) > 0 || s.Wildtype != ""
	switch {
	case explicit && s.Length != nil:
		// Two sources for the same space; refuse to guess which one wins.
		return nil, fmt.Errorf("%s: length=%d with mutations/wildtype: %w",
			methodSpecBuild, *s.Length, ErrInvalidSpec)
	case explicit:
		alphabets := seqspace.Alphabets(s.Mutations)
		wildtype := s.Wildtype
		if wildtype == "" {
			if wildtype, err = seqspace.WildtypeOf(alphabets); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", methodSpecBuild, ErrInvalidSpec, err)
			}
		}
		f, err = NewMountFuji(wildtype, alphabets, s.Options()...)
	default:
		length := defaultLength
		if s.Length != nil {
			length = *s.Length
		}
		f, err = NewMountFujiFromLength(length, s.Options()...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpecBuild, err)
	}

	if len(s.Roughness) > 0 {
		if err = f.SetRoughness(s.Roughness...); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSpecBuild, err)
		}
	}

	return f, nil
}
