package rearrange

import "sort"

// GenomeIndex reduces a genome's per-ALG scores to the genome-level
// rearrangement index Ri: the arithmetic mean of RALG over the ALGs present
// in the genome. ok is false when the genome has no ALGs; Ri is then
// undefined and must be reported as missing, not zero.
func GenomeIndex(results map[string]ALGResult) (ri float64, ok bool) {
	if len(results) == 0 {
		return 0, false
	}
	// Sum in sorted ALG order so reruns produce bit-identical output.
	algs := make([]string, 0, len(results))
	for alg := range results {
		algs = append(algs, alg)
	}
	sort.Strings(algs)
	sum := 0.0
	for _, alg := range algs {
		sum += results[alg].RALG
	}
	return sum / float64(len(results)), true
}

// ResultSet accumulates per-ALG and per-genome results across genomes. Not
// safe for concurrent use; workers fill private sets and Merge them under a
// lock.
type ResultSet struct {
	// PerALG maps species -> ALG -> result triple. A species is present
	// here even when its genome held no genes; the inner map is then empty.
	// An ALG absent from the inner map has no value in that genome.
	PerALG map[string]map[string]ALGResult
	// Ri maps species -> genome-level index. Species whose genomes held no
	// ALGs have no entry; the reporter writes those cells as missing.
	Ri map[string]float64
}

// NewResultSet creates an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		PerALG: map[string]map[string]ALGResult{},
		Ri:     map[string]float64{},
	}
}

// Add records one genome's per-ALG results and its derived Ri.
func (s *ResultSet) Add(species string, results map[string]ALGResult) {
	if results == nil {
		results = map[string]ALGResult{}
	}
	s.PerALG[species] = results
	if ri, ok := GenomeIndex(results); ok {
		s.Ri[species] = ri
	}
}

// Merge folds o into s. Species sets are disjoint in practice (one input
// file per species); a duplicate species is simply overwritten.
func (s *ResultSet) Merge(o *ResultSet) {
	for species, results := range o.PerALG {
		s.PerALG[species] = results
	}
	for species, ri := range o.Ri {
		s.Ri[species] = ri
	}
}

// Species returns every recorded species label in sorted order.
func (s *ResultSet) Species() []string {
	species := make([]string, 0, len(s.PerALG))
	for sp := range s.PerALG {
		species = append(species, sp)
	}
	sort.Strings(species)
	return species
}

// ALGs returns the union of ALG labels across all species in sorted order.
func (s *ResultSet) ALGs() []string {
	seen := map[string]bool{}
	for _, results := range s.PerALG {
		for alg := range results {
			seen[alg] = true
		}
	}
	algs := make([]string, 0, len(seen))
	for alg := range seen {
		algs = append(algs, alg)
	}
	sort.Strings(algs)
	return algs
}
