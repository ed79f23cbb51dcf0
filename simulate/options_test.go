package simulate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFujiConfig_Defaults checks deterministic defaults and RNG resolution.
func TestNewFujiConfig_Defaults(t *testing.T) {
	cfg := newFujiConfig()
	assert.Equal(t, defaultFieldStrength, cfg.fieldStrength)
	assert.Nil(t, cfg.roughness)
	require.NotNil(t, cfg.rng, "a clock-seeded RNG is always resolved")
}

// TestNewFujiConfig_LastWins verifies later options override earlier ones.
func TestNewFujiConfig_LastWins(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cfg := newFujiConfig(
		WithFieldStrength(3),
		WithSeed(5),
		WithRand(r),
		WithFieldStrength(-2),
		WithRoughness(0, 1),
	)
	assert.Equal(t, -2.0, cfg.fieldStrength)
	assert.Same(t, r, cfg.rng)
	assert.Equal(t, []float64{0, 1}, cfg.roughness)

	a := newFujiConfig(WithSeed(5)).rng.Int63()
	b := newFujiConfig(WithSeed(5)).rng.Int63()
	assert.Equal(t, a, b, "WithSeed must be reproducible")
}

// TestParseRange covers the validation table directly.
func TestParseRange(t *testing.T) {
	_, _, present, err := parseRange(nil)
	require.NoError(t, err)
	assert.False(t, present)

	low, high, present, err := parseRange([]float64{-1, 2})
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, -1.0, low)
	assert.Equal(t, 2.0, high)

	_, _, _, err = parseRange([]float64{3, 2})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Both bounds finite, width not.
	_, _, _, err = parseRange([]float64{-math.MaxFloat64, math.MaxFloat64})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
