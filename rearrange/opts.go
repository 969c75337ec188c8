package rearrange

// Opts collects the tunable parameters of a run. Start from DefaultOpts.
type Opts struct {
	// Suffix selects the eligible files in the input directory. Only regular
	// files whose name ends in Suffix are read as coordinates files.
	Suffix string

	// CombineSubparts folds ALG sub-part labels into their parent linkage
	// group before counting (A1a and A1b become A1, and so on; see
	// SubpartGroups). SCHR and CCHR are then computed over the combined
	// groups.
	CombineSubparts bool

	// Parallelism is the maximum number of coordinates files processed
	// simultaneously. 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Suffix:          ".tsv",
	CombineSubparts: true,
	Parallelism:     0,
}
