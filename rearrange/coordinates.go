package rearrange

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Gene is one row of a coordinates file: a single gene placed on a
// chromosome and assigned to an ancestral linkage group (ALG).
//
// Coordinates-file row example:
// "4	Complete	CAIIXF020000007.1	27374167	27374209	B3"
type Gene struct {
	// ID is the gene identifier from the first column. Opaque; it need not
	// be unique across genomes, and duplicates within a genome are counted
	// as independent genes.
	ID string
	// Status is the annotation status column (e.g. "Complete"). Parsed but
	// not used by the index computation.
	Status string
	// Chrom is the chromosome or scaffold carrying the gene.
	Chrom string
	// Start and End are the genomic coordinates of the gene. Parsed but not
	// used by the index computation.
	Start int64
	End   int64
	// ALG is the ancestral linkage group label assigned by the synteny
	// pipeline (e.g. "B3"). Free-form string; genomes may lack some ALGs
	// and carry ALGs absent from other genomes.
	ALG string
}

// Genome holds the gene table of one species, in input row order.
type Genome struct {
	// Species is the label used in the output tables: the basename of the
	// coordinates file the genome was read from.
	Species string
	Genes   []Gene
}

// SubpartGroups maps ALG sub-part labels to their parent linkage group
// (Simakov et al. 2022 naming). Applied by the loader when
// Opts.CombineSubparts is set.
var SubpartGroups = map[string]string{
	"A1a": "A1",
	"A1b": "A1",
	"Ea":  "E",
	"Eb":  "E",
	"Qa":  "Q",
	"Qb":  "Q",
	"Qc":  "Q",
	"Qd":  "Q",
}

// MalformedInputError reports a coordinates-file row that cannot be used: too
// few columns, an unparseable coordinate, or a blank required field. The
// whole run is failed on the first such row; partial files are never scored.
type MalformedInputError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s:%d: malformed coordinates row: %v", e.Path, e.Line, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// InputDirectoryError reports an unusable input directory: missing, not a
// directory, or holding no eligible coordinates files.
type InputDirectoryError struct {
	Path string
	Err  error
}

func (e *InputDirectoryError) Error() string {
	return fmt.Sprintf("input directory %s: %v", e.Path, e.Err)
}

func (e *InputDirectoryError) Unwrap() error { return e.Err }

// ReadCoordinatesFile reads one coordinates file into a Genome. The file is
// headerless TSV with six columns: gene ID, status, chromosome, start, end,
// ALG. A file with zero rows yields a Genome with no genes, not an error.
// stats may be nil.
func ReadCoordinatesFile(ctx context.Context, path string, stats *Stats, opts Opts) (Genome, error) {
	if stats == nil {
		stats = &Stats{}
	}
	genome := Genome{Species: filepath.Base(path)}
	in, err := file.Open(ctx, path)
	if err != nil {
		return Genome{}, err
	}
	r := tsv.NewReader(in.Reader(ctx))
	var row struct {
		ID     string
		Status string
		Chrom  string
		Start  int64
		End    int64
		ALG    string
	}
	nLine := 0
	for {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			_ = in.Close(ctx)
			return Genome{}, &MalformedInputError{Path: path, Line: nLine + 1, Err: err}
		}
		nLine++
		if row.ID == "" || row.Chrom == "" || row.ALG == "" {
			_ = in.Close(ctx)
			return Genome{}, &MalformedInputError{
				Path: path,
				Line: nLine,
				Err:  fmt.Errorf("blank required field in %+v", row),
			}
		}
		gene := Gene{
			ID:     row.ID,
			Status: row.Status,
			Chrom:  row.Chrom,
			Start:  row.Start,
			End:    row.End,
			ALG:    row.ALG,
		}
		if opts.CombineSubparts {
			if parent, ok := SubpartGroups[gene.ALG]; ok {
				gene.ALG = parent
				stats.CombinedSubparts++
			}
		}
		genome.Genes = append(genome.Genes, gene)
		stats.Genes++
	}
	if err := in.Close(ctx); err != nil {
		return Genome{}, err
	}
	return genome, nil
}
