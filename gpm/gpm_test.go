package gpm_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/gpmap/gpm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies constructor validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		wildtype   string
		genotypes  []string
		phenotypes []float64
		want       error
	}{
		{"short phenotypes", "0", []string{"0", "1"}, []float64{0}, gpm.ErrLengthMismatch},
		{"ragged genotype", "00", []string{"00", "1"}, nil, gpm.ErrLengthMismatch},
		{"duplicate", "0", []string{"0", "1", "0"}, nil, gpm.ErrDuplicateGenotype},
		{"no wildtype", "0", []string{"1"}, nil, gpm.ErrWildtypeMissing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gpm.New(tc.wildtype, tc.genotypes, tc.phenotypes)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_CopiesInputs ensures the map owns its slices.
func TestNew_CopiesInputs(t *testing.T) {
	genotypes := []string{"00", "01", "10", "11"}
	phenotypes := []float64{1, 2, 3, 4}
	m, err := gpm.New("00", genotypes, phenotypes)
	require.NoError(t, err)

	genotypes[0] = "zz"
	phenotypes[0] = 99
	assert.Equal(t, []string{"00", "01", "10", "11"}, m.Genotypes())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Phenotypes())

	out := m.Phenotypes()
	out[1] = -1
	p, err := m.Phenotype("01")
	require.NoError(t, err)
	assert.Equal(t, 2.0, p, "Phenotypes must return a copy")
}

// TestLookups covers Index, Phenotype, Len and Wildtype.
func TestLookups(t *testing.T) {
	m, err := gpm.New("AC", []string{"AC", "AG", "TC", "TG"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "AC", m.Wildtype())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []float64{0, 0, 0, 0}, m.Phenotypes())

	i, err := m.Index("TC")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = m.Index("GG")
	assert.ErrorIs(t, err, gpm.ErrGenotypeNotFound)
	_, err = m.Phenotype("GG")
	assert.ErrorIs(t, err, gpm.ErrGenotypeNotFound)
}

// TestSetPhenotypes verifies whole-vector replacement and rejection.
func TestSetPhenotypes(t *testing.T) {
	m, err := gpm.New("0", []string{"0", "1"}, nil)
	require.NoError(t, err)

	require.NoError(t, m.SetPhenotypes([]float64{0, -1}))
	p, err := m.Phenotype("1")
	require.NoError(t, err)
	assert.Equal(t, -1.0, p)

	err = m.SetPhenotypes([]float64{5})
	assert.ErrorIs(t, err, gpm.ErrLengthMismatch)
	assert.Equal(t, []float64{0, -1}, m.Phenotypes(), "failed swap must not change state")
}

// TestConcurrentSetAndRead swaps vectors while readers observe them whole.
func TestConcurrentSetAndRead(t *testing.T) {
	genotypes := make([]string, 64)
	for i := range genotypes {
		genotypes[i] = fmt.Sprintf("%02d", i)
	}
	m, err := gpm.New("00", genotypes, nil)
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for r := 0; r < rounds; r++ {
			v := make([]float64, len(genotypes))
			for i := range v {
				v[i] = float64(r)
			}
			_ = m.SetPhenotypes(v)
		}
	}()
	go func() {
		defer wg.Done()
		for r := 0; r < rounds; r++ {
			v := m.Phenotypes()
			for i := range v {
				assert.Equal(t, v[0], v[i], "observed a partially written vector")
			}
		}
	}()
	wg.Wait()
}
