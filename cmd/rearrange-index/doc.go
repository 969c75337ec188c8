/*
Given a directory of coordinates files produced by the SyntenyFinder
macrosynteny pipeline, rearrange-index scores how strongly each genome has
been reshuffled relative to the bilaterian ancestral linkage groups (ALGs).

For every ALG present in a genome it computes the splitting parameter SCHR
(the largest fraction of the ALG's genes found together on one chromosome),
the combining parameter CCHR (the fraction of genes on that chromosome that
belong to the ALG), and the rearrangement score RALG = 1 - SCHR*CCHR. The
genome-level rearrangement index Ri is the mean RALG over the ALGs present.

Each coordinates file is headerless TSV with one gene per row:

	<gene ID>	<status>	<chromosome>	<start>	<end>	<ALG>

Four TSV tables are written: Rearrangement_index.tsv,
Splitting_parameter.tsv and Combining_parameter.tsv (rows = ALG, columns =
species, one column per input file) and Genome_index.tsv (one Ri row per
species). Cells for ALGs absent from a genome are written as "NA".

Sample usage:
rearrange-index \
    --out results \
    coordinates/
*/
package main
