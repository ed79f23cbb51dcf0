// SPDX-License-Identifier: MIT

// Command fujisim builds a Rough Mount Fuji genotype-phenotype map and prints
// one row per genotype: genotype, Hamming distance, roughness, phenotype.
//
//	fujisim -length 4 -c 2 -roughness 0,0.5 -seed 1
//	fujisim -config landscape.yaml -format json
//
// Flags override the values read from -config.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/gpmap/simulate"
	"github.com/lmittmann/tint"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
	if err := run(context.Background(), os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("fujisim failed", "err", err)
		os.Exit(1)
	}
}

// options collects the parsed command line.
type options struct {
	config    string
	length    int
	c         float64
	roughness string
	seed      int64
	format    string
	set       map[string]bool // flags given explicitly
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("fujisim", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML landscape spec")
	fs.IntVar(&o.length, "length", 0, "binary genotype length")
	fs.Float64Var(&o.c, "c", 1, "field strength")
	fs.StringVar(&o.roughness, "roughness", "", `roughness range "low,high"; "none" resets`)
	fs.Int64Var(&o.seed, "seed", 0, "RNG seed for roughness draws")
	fs.StringVar(&o.format, "format", formatTable, "output format: table|json")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.format != formatTable && o.format != formatJSON {
		return nil, fmt.Errorf("unknown format %q", o.format)
	}

	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

// applyFlags overrides spec fields with explicitly given flags.
func applyFlags(spec *simulate.Spec, o *options) error {
	if o.set["length"] {
		// -length replaces whatever space the config described.
		length := o.length
		spec.Length = &length
		spec.Wildtype, spec.Mutations = "", nil
	}
	if o.set["c"] {
		spec.FieldStrength = o.c
	}
	if o.set["seed"] {
		seed := o.seed
		spec.Seed = &seed
	}
	if o.set["roughness"] {
		bounds, err := parseBounds(o.roughness)
		if err != nil {
			return err
		}
		spec.Roughness = bounds
	}

	return nil
}

// parseBounds turns "low,high" into a slice; arity is checked by SetRoughness.
func parseBounds(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("roughness bound %q: %w", p, err)
		}
		out[i] = v
	}

	return out, nil
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	o, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	runID := uuid.NewString()
	log := logger.With("run_id", runID)

	spec, err := simulate.LoadSpec(o.config)
	if err != nil {
		return err
	}
	if err = applyFlags(spec, o); err != nil {
		return err
	}

	start := time.Now()
	f, err := spec.Build()
	if err != nil {
		return err
	}
	peak, fitness := f.Peak()
	log.LogAttrs(ctx, slog.LevelInfo, "landscape built",
		slog.String("wildtype", f.Wildtype()),
		slog.Int("genotypes", f.Len()),
		slog.Float64("field_strength", f.FieldStrength()),
		slog.Bool("rough", f.HasRoughness()),
		slog.String("peak", peak),
		slog.Float64("peak_phenotype", fitness),
		slog.Duration("elapsed", time.Since(start)),
	)

	snap := f.Snapshot()
	if o.format == formatJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			RunID string `json:"run_id"`
			simulate.Landscape
		}{runID, snap})
	}

	return writeTable(stdout, snap)
}

func writeTable(w io.Writer, s simulate.Landscape) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "genotype\thamming\troughness\tphenotype")
	for i, g := range s.Genotypes {
		fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\n", g, s.Hamming[i], s.Roughness[i], s.Phenotypes[i])
	}

	return tw.Flush()
}
