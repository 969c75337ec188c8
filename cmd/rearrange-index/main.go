package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/symgenoevolab/rearrangement/rearrange"
)

var (
	out             = flag.String("out", ".", "Directory the output tables are written to")
	parallelism     = flag.Int("parallelism", rearrange.DefaultOpts.Parallelism, "Maximum number of coordinates files scored simultaneously; 0 = runtime.NumCPU()")
	combineSubparts = flag.Bool("combine-subparts", rearrange.DefaultOpts.CombineSubparts, "Fold ALG sub-part labels (A1a, A1b, Ea, Eb, Qa-Qd) into their parent groups before scoring")
	suffix          = flag.String("suffix", rearrange.DefaultOpts.Suffix, "Only files with this name suffix are read from the input directory")
)

func rearrangeIndexUsage() {
	fmt.Printf("Usage: %s [OPTIONS] coordinates_dir\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = rearrangeIndexUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (coordinates directory) expected; please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	ctx := vcontext.Background()
	opts := rearrange.Opts{
		Suffix:          *suffix,
		CombineSubparts: *combineSubparts,
		Parallelism:     *parallelism,
	}
	stats, err := rearrange.Run(ctx, flag.Arg(0), *out, &opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Scored %d genomes (%d genes)", stats.Genomes, stats.Genes)
}
