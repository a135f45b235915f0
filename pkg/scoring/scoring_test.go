package scoring

import (
	"strings"
	"testing"

	"github.com/pepsar/helmalign/pkg/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixText = `0x41 0x41 10   # A x A
0x41 0x43 -3   # A x C
0x43 0x43 9   # C x C
0x43 0x41 -3   # C x A
0x01 0x41 -5   # NH2 x A
0x01 0x01 10   # NH2 x NH2
0x01 0x43 -5   # NH2 x C
`

// TestParseMatrix verifies hex parsing, comment tolerance and
// unordered-pair de-duplication.
func TestParseMatrix(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	// "C x A" duplicates "A x C" and is dropped
	assert.Equal(t, 6, m.Len())

	s, err := m.Score('A', 'A')
	require.NoError(t, err)
	assert.Equal(t, 10, s)

	// lookup works in both orders
	s, err = m.Score('C', 'A')
	require.NoError(t, err)
	assert.Equal(t, -3, s)

	s, err = m.Score(0x01, 'C')
	require.NoError(t, err)
	assert.Equal(t, -5, s)
}

// TestParseMatrix_BadLine verifies malformed rows are rejected.
func TestParseMatrix_BadLine(t *testing.T) {
	_, err := ParseMatrix(strings.NewReader("0x41 0x41\n"))
	assert.Error(t, err)

	_, err = ParseMatrix(strings.NewReader("0x41 zz 10\n"))
	assert.Error(t, err)
}

// TestScore_Gaps verifies the gap scoring rules.
func TestScore_Gaps(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	s, err := m.Score('-', '-')
	require.NoError(t, err)
	assert.Equal(t, 1, s, "gap versus gap scores 1")

	s, err = m.Score('A', '-')
	require.NoError(t, err)
	assert.Equal(t, DefaultGapPenalty, s)

	s, err = m.Score('-', 'C')
	require.NoError(t, err)
	assert.Equal(t, DefaultGapPenalty, s)
}

// TestScore_MissingPair verifies a pair absent from the matrix is an
// error, not a silent default.
func TestScore_MissingPair(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	_, err = m.Score('A', 'Z')
	assert.Error(t, err)
}

// TestSumOfPairs verifies the hand-computed score of a small alignment.
func TestSumOfPairs(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	records := []fasta.Record{
		{ID: "PEPTIDE1", Seq: "AC-"},
		{ID: "PEPTIDE1", Seq: "ACC"},
		{ID: "PEPTIDE1", Seq: "A-C"},
	}

	// pair (0,1): 10 + 9 + (-10)      =   9
	// pair (0,2): 10 + (-10) + (-10)  = -10
	// pair (1,2): 10 + (-10) + 9      =   9
	sum, err := SumOfPairs(records, m)
	require.NoError(t, err)
	assert.Equal(t, 8, sum)
}

// TestSumOfPairs_LengthMismatch verifies ragged alignments are
// rejected.
func TestSumOfPairs_LengthMismatch(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	records := []fasta.Record{
		{ID: "PEPTIDE1", Seq: "AC"},
		{ID: "PEPTIDE1", Seq: "ACC"},
	}
	_, err = SumOfPairs(records, m)
	assert.Error(t, err)
}

// TestNormalized verifies normalization by sequence count and length.
func TestNormalized(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	records := []fasta.Record{
		{ID: "PEPTIDE1", Seq: "AC-"},
		{ID: "PEPTIDE1", Seq: "ACC"},
		{ID: "PEPTIDE1", Seq: "A-C"},
	}
	score, err := Normalized(records, m)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.InDelta(t, 8.0/3.0/3.0, *score, 1e-9)
}

// TestNormalized_SingleSequence verifies a single sequence yields a nil
// score, not an error.
func TestNormalized_SingleSequence(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader(matrixText))
	require.NoError(t, err)

	score, err := Normalized([]fasta.Record{{ID: "X", Seq: "AC"}}, m)
	require.NoError(t, err)
	assert.Nil(t, score)
}
