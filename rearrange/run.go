package rearrange

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// listInputs returns the eligible coordinates files in dir, sorted by name.
func listInputs(dir string, opts Opts) ([]string, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, &InputDirectoryError{Path: dir, Err: err}
	}
	var paths []string
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), opts.Suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	if len(paths) == 0 {
		return nil, &InputDirectoryError{Path: dir, Err: fmt.Errorf("no *%s files found", opts.Suffix)}
	}
	sort.Strings(paths)
	return paths, nil
}

// processGenome runs the loader and indexer for one coordinates file and
// records the outcome in set and stats.
func processGenome(ctx context.Context, path string, set *ResultSet, stats *Stats, opts Opts) error {
	genome, err := ReadCoordinatesFile(ctx, path, stats, opts)
	if err != nil {
		return err
	}
	stats.Genomes++
	if len(genome.Genes) == 0 {
		log.Printf("%s: no gene rows, Ri will be reported as %s", path, MissingMarker)
		stats.EmptyGenomes++
	}
	results := ComputeALGResults(genome.CrossTab())
	stats.ALGs += len(results)
	set.Add(genome.Species, results)
	return nil
}

// Run executes the whole pipeline: every eligible coordinates file in
// inputDir is read and scored, and the four output tables are written into
// outDir. Genomes are scored concurrently; a malformed file fails the whole
// run before anything is written. opts may be nil, meaning DefaultOpts.
func Run(ctx context.Context, inputDir, outDir string, opts *Opts) (Stats, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	paths, err := listInputs(inputDir, o)
	if err != nil {
		return Stats{}, err
	}
	parallelism := o.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(paths) {
		parallelism = len(paths)
	}
	log.Printf("Scoring %d coordinates files (%d jobs)", len(paths), parallelism)

	var (
		mu    sync.Mutex
		set   = NewResultSet()
		stats Stats
	)
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(paths)) / parallelism
		endIdx := ((jobIdx + 1) * len(paths)) / parallelism
		jobSet := NewResultSet()
		jobStats := Stats{}
		for _, path := range paths[startIdx:endIdx] {
			if err := processGenome(ctx, path, jobSet, &jobStats, o); err != nil {
				return err
			}
		}
		mu.Lock()
		set.Merge(jobSet)
		stats = stats.Merge(jobStats)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return stats, err
	}
	if err := WriteTables(ctx, set, outDir); err != nil {
		return stats, err
	}
	log.Printf("Stats: %+v", stats)
	return stats, nil
}
