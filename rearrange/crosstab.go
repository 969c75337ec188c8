package rearrange

// CrossTab is the chromosome-by-ALG gene-count pivot of one genome. Built
// once per genome and read-only afterwards; everything the indexer needs is
// derived from it.
type CrossTab struct {
	// Counts maps ALG -> chromosome -> gene count. Only observed
	// (ALG, chromosome) pairs have entries; a missing entry means zero.
	Counts map[string]map[string]int
	// ChromTotals maps chromosome -> total gene count across all ALGs.
	ChromTotals map[string]int
}

// CrossTab builds the chromosome-by-ALG pivot for the genome.
func (g Genome) CrossTab() CrossTab {
	t := CrossTab{
		Counts:      make(map[string]map[string]int),
		ChromTotals: make(map[string]int),
	}
	for _, gene := range g.Genes {
		byChrom := t.Counts[gene.ALG]
		if byChrom == nil {
			byChrom = make(map[string]int)
			t.Counts[gene.ALG] = byChrom
		}
		byChrom[gene.Chrom]++
		t.ChromTotals[gene.Chrom]++
	}
	return t
}

// ALGTotal returns the number of genes assigned to the ALG across all
// chromosomes. Zero for ALGs not observed in the genome.
func (t CrossTab) ALGTotal(alg string) int {
	n := 0
	for _, count := range t.Counts[alg] {
		n += count
	}
	return n
}
