package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gpmap/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRun_Table prints one row per genotype plus a header.
func TestRun_Table(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-length", "2", "-c", "2"}, &out, discardLogger())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"genotype", "hamming", "roughness", "phenotype"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"11", "2", "0", "-4"}, strings.Fields(lines[4]))
}

// TestRun_JSONWithConfig reads YAML, applies flag overrides and emits JSON.
func TestRun_JSONWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	doc := "mutations:\n  0: [\"A\", \"G\"]\n  1: [\"C\", \"T\"]\nfield_strength: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	args := []string{"-config", path, "-c", "0.5", "-roughness", "0.1,0.1", "-seed", "3", "-format", "json"}
	require.NoError(t, run(context.Background(), args, &out, discardLogger()))

	var got struct {
		RunID string `json:"run_id"`
		simulate.Landscape
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, "AC", got.Wildtype)
	assert.Equal(t, []string{"AC", "AT", "GC", "GT"}, got.Genotypes)
	assert.Equal(t, []int{0, 1, 1, 2}, got.Hamming)
	assert.Equal(t, 0.5, got.FieldStrength)
	assert.InDeltaSlice(t, []float64{0.1, -0.4, -0.4, -0.9}, got.Phenotypes, 1e-12)
}

// TestRun_Errors covers bad flags and bad ranges.
func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-format", "xml"}, &out, discardLogger())
	assert.Error(t, err)

	err = run(context.Background(), []string{"-roughness", "1,0"}, &out, discardLogger())
	assert.ErrorIs(t, err, simulate.ErrInvalidRange)

	err = run(context.Background(), []string{"-roughness", "0,1,2"}, &out, discardLogger())
	assert.ErrorIs(t, err, simulate.ErrInvalidRange)

	err = run(context.Background(), []string{"-roughness", "a,b"}, &out, discardLogger())
	assert.Error(t, err)

	err = run(context.Background(), []string{"extra"}, &out, discardLogger())
	assert.Error(t, err)
}

// TestParseBounds covers the reset spellings.
func TestParseBounds(t *testing.T) {
	b, err := parseBounds("none")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = parseBounds(" -1, 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2.5}, b)
}
