package rearrange

// Stats represents high-level statistics of one run.
type Stats struct {
	// Genomes is the number of coordinates files scored.
	Genomes int
	// Genes is the total number of gene rows read.
	Genes int
	// ALGs is the total number of (genome, ALG) pairs scored.
	ALGs int
	// CombinedSubparts is the number of genes whose ALG sub-part label was
	// folded into its parent group.
	CombinedSubparts int
	// EmptyGenomes is the number of files that parsed with zero gene rows.
	EmptyGenomes int
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Genomes += o.Genomes
	s.Genes += o.Genes
	s.ALGs += o.ALGs
	s.CombinedSubparts += o.CombinedSubparts
	s.EmptyGenomes += o.EmptyGenomes
	return s
}
