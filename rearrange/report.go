package rearrange

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// MissingMarker is written for cells with no computed value: an ALG absent
// from a genome, or the Ri of a genome without ALGs. Zero is a valid
// computed value, so missing cells must not look numeric.
const MissingMarker = "NA"

// Names of the four output tables.
const (
	RearrangementIndexFile = "Rearrangement_index.tsv"
	SplittingParameterFile = "Splitting_parameter.tsv"
	CombiningParameterFile = "Combining_parameter.tsv"
	GenomeIndexFile        = "Genome_index.tsv"
)

// formatValue renders a statistic with the shortest representation that
// round-trips, so output is stable across runs.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeTable writes one ALG-by-species table. cell returns the value for a
// (species, ALG) pair and whether that cell exists.
func writeTable(ctx context.Context, path string, algs, species []string, cell func(species, alg string) (float64, bool)) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out.Writer(ctx))
	e := errors.Once{}
	w.WriteString("ALG")
	for _, sp := range species {
		w.WriteString(sp)
	}
	e.Set(w.EndLine())
	for _, alg := range algs {
		w.WriteString(alg)
		for _, sp := range species {
			if v, ok := cell(sp, alg); ok {
				w.WriteString(formatValue(v))
			} else {
				w.WriteString(MissingMarker)
			}
		}
		e.Set(w.EndLine())
	}
	e.Set(w.Flush())
	e.Set(out.Close(ctx))
	return e.Err()
}

func writeGenomeIndex(ctx context.Context, path string, species []string, set *ResultSet) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out.Writer(ctx))
	e := errors.Once{}
	w.WriteString("species")
	w.WriteString("Ri")
	e.Set(w.EndLine())
	for _, sp := range species {
		w.WriteString(sp)
		if ri, ok := set.Ri[sp]; ok {
			w.WriteString(formatValue(ri))
		} else {
			w.WriteString(MissingMarker)
		}
		e.Set(w.EndLine())
	}
	e.Set(w.Flush())
	e.Set(out.Close(ctx))
	return e.Err()
}

// WriteTables writes the four output tables into outDir: the rearrangement
// index, splitting parameter and combining parameter tables (rows = ALG,
// columns = species), and the per-genome index table. The parameter tables
// store the raw SCHR and CCHR values; the derived "splitting index" and
// "combining index" (one minus the parameter) are a presentation concern.
func WriteTables(ctx context.Context, set *ResultSet, outDir string) error {
	algs, species := set.ALGs(), set.Species()
	tables := []struct {
		name string
		cell func(sp, alg string) (float64, bool)
	}{
		{RearrangementIndexFile, func(sp, alg string) (float64, bool) {
			r, ok := set.PerALG[sp][alg]
			return r.RALG, ok
		}},
		{SplittingParameterFile, func(sp, alg string) (float64, bool) {
			r, ok := set.PerALG[sp][alg]
			return r.SCHR, ok
		}},
		{CombiningParameterFile, func(sp, alg string) (float64, bool) {
			r, ok := set.PerALG[sp][alg]
			return r.CCHR, ok
		}},
	}
	for _, t := range tables {
		path := filepath.Join(outDir, t.name)
		if err := writeTable(ctx, path, algs, species, t.cell); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
	}
	path := filepath.Join(outDir, GenomeIndexFile)
	if err := writeGenomeIndex(ctx, path, species, set); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}
