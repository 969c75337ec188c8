package rearrange

import (
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCoordinatesFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeFile(t, tempDir, "Capitella.tsv", strings.Join([]string{
		"1\tComplete\tCAIIXF020000008.1\t36937317\t36938462\tB3",
		"2\tComplete\tCAIIXF020000005.1\t32633780\t32633985\tP",
		"3\tDuplicated\tCAIIXF020000008.1\t61230213\t61230325\tB3",
		"",
	}, "\n"))

	stats := Stats{}
	genome, err := ReadCoordinatesFile(context.Background(), path, &stats, DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, genome.Species, "Capitella.tsv")
	require.Len(t, genome.Genes, 3)
	expect.EQ(t, genome.Genes[0], Gene{
		ID:     "1",
		Status: "Complete",
		Chrom:  "CAIIXF020000008.1",
		Start:  36937317,
		End:    36938462,
		ALG:    "B3",
	})
	expect.EQ(t, genome.Genes[2].Status, "Duplicated")
	expect.EQ(t, stats.Genes, 3)
	expect.EQ(t, stats.CombinedSubparts, 0)
}

func TestCombineSubparts(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeFile(t, tempDir, "sub.tsv", strings.Join([]string{
		"1\tComplete\tc1\t10\t20\tA1a",
		"2\tComplete\tc1\t30\t40\tA1b",
		"3\tComplete\tc2\t10\t20\tQc",
		"4\tComplete\tc2\t30\t40\tG",
		"",
	}, "\n"))

	stats := Stats{}
	genome, err := ReadCoordinatesFile(context.Background(), path, &stats, DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, genome.Genes[0].ALG, "A1")
	expect.EQ(t, genome.Genes[1].ALG, "A1")
	expect.EQ(t, genome.Genes[2].ALG, "Q")
	expect.EQ(t, genome.Genes[3].ALG, "G")
	expect.EQ(t, stats.CombinedSubparts, 3)

	opts := DefaultOpts
	opts.CombineSubparts = false
	genome, err = ReadCoordinatesFile(context.Background(), path, nil, opts)
	require.NoError(t, err)
	expect.EQ(t, genome.Genes[0].ALG, "A1a")
	expect.EQ(t, genome.Genes[2].ALG, "Qc")
}

func TestReadEmptyFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeFile(t, tempDir, "empty.tsv", "")

	genome, err := ReadCoordinatesFile(context.Background(), path, nil, DefaultOpts)
	require.NoError(t, err)
	expect.EQ(t, genome.Species, "empty.tsv")
	expect.EQ(t, len(genome.Genes), 0)
}

func TestMalformedRows(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	for _, tc := range []struct {
		name    string
		content string
		line    int
	}{
		{"short-row", "1\tComplete\tc1\t10\t20\n", 1},
		{"bad-coordinate", "1\tComplete\tc1\txx\t20\tB3\n", 1},
		{"blank-alg", "1\tComplete\tc1\t10\t20\tB3\n2\tComplete\tc1\t30\t40\t\n", 2},
		{"blank-chromosome", "1\tComplete\t\t10\t20\tB3\n", 1},
	} {
		path := writeFile(t, tempDir, tc.name+".tsv", tc.content)
		_, err := ReadCoordinatesFile(context.Background(), path, nil, DefaultOpts)
		require.Error(t, err, "case %s", tc.name)
		var malformed *MalformedInputError
		require.True(t, errors.As(err, &malformed), "case %s: %v", tc.name, err)
		expect.EQ(t, malformed.Path, path, "case %s", tc.name)
		expect.EQ(t, malformed.Line, tc.line, "case %s", tc.name)
		assert.Contains(t, err.Error(), tc.name+".tsv")
	}
}
