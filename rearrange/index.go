package rearrange

import "sort"

// ALGResult holds the three per-ALG statistics of one genome. All three are
// rationals in [0, 1]; no rounding is applied.
type ALGResult struct {
	// SCHR is the splitting parameter: the largest fraction of the ALG's
	// genes found together on a single chromosome.
	SCHR float64
	// CCHR is the combining parameter: the fraction of all genes on that
	// same chromosome that belong to this ALG.
	CCHR float64
	// RALG is the per-ALG rearrangement score, 1 - SCHR*CCHR.
	RALG float64
}

// ComputeALGResults scores every ALG observed in the pivot. An ALG's home
// chromosome is the one carrying most of its genes; ties go to the
// lexicographically smallest chromosome. SCHR is the same under any
// tie-break, but CCHR is not, so the fixed rule keeps reruns bit-identical.
// ALGs with no genes never appear in the pivot, so no division by zero can
// arise; an empty genome yields an empty result map.
func ComputeALGResults(tab CrossTab) map[string]ALGResult {
	results := make(map[string]ALGResult, len(tab.Counts))
	for alg, byChrom := range tab.Counts {
		total := 0
		chroms := make([]string, 0, len(byChrom))
		for chrom, count := range byChrom {
			total += count
			chroms = append(chroms, chrom)
		}
		sort.Strings(chroms)
		home := chroms[0]
		for _, chrom := range chroms[1:] {
			if byChrom[chrom] > byChrom[home] {
				home = chrom
			}
		}
		schr := float64(byChrom[home]) / float64(total)
		cchr := float64(byChrom[home]) / float64(tab.ChromTotals[home])
		results[alg] = ALGResult{
			SCHR: schr,
			CCHR: cchr,
			RALG: 1 - schr*cchr,
		}
	}
	return results
}
