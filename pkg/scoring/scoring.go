// Package scoring computes the normalized sum-of-pairs score of a
// multiple sequence alignment using the per-task substitution matrix
// synthesized for the aligner run. Scores are normalized by sequence
// count and alignment length so they stay comparable across chains of
// different size.
package scoring

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pepsar/helmalign/pkg/fasta"
)

const (
	// DefaultGapPenalty scores a column where one sequence has a gap.
	DefaultGapPenalty = -10
	// DefaultGapChar is the aligner's gap symbol.
	DefaultGapChar = '-'
	// gap-vs-gap columns score 1, matching the reference scorer.
	gapPairScore = 1
)

// Matrix is a pairwise substitution score lookup parsed from a per-task
// matrix file. Pairs are stored unordered; lookup tries both orders.
type Matrix struct {
	GapPenalty int
	GapChar    byte
	scores     map[[2]byte]int
}

// ParseMatrix reads a matrix file of "<hex> <hex> <score>" lines (with
// optional trailing comments) into a Matrix with default gap settings.
// The file is symmetric in content; only the first occurrence of each
// unordered pair is kept.
func ParseMatrix(r io.Reader) (*Matrix, error) {
	m := &Matrix{
		GapPenalty: DefaultGapPenalty,
		GapChar:    DefaultGapChar,
		scores:     make(map[[2]byte]int),
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, ParseError(line)
		}
		a, errA := strconv.ParseUint(fields[0], 0, 16)
		b, errB := strconv.ParseUint(fields[1], 0, 16)
		score, errS := strconv.Atoi(fields[2])
		if errA != nil || errB != nil || errS != nil {
			return nil, ParseError(line)
		}
		key := [2]byte{byte(a), byte(b)}
		inv := [2]byte{byte(b), byte(a)}
		if _, ok := m.scores[key]; ok {
			continue
		}
		if _, ok := m.scores[inv]; ok {
			continue
		}
		m.scores[key] = score
	}
	if err := sc.Err(); err != nil {
		return nil, ParseError(err.Error())
	}
	return m, nil
}

// Len returns the number of distinct symbol pairs in the matrix.
func (m *Matrix) Len() int {
	return len(m.scores)
}

// Score returns the substitution score for two aligned symbols. Gap
// versus gap scores 1, gap versus monomer scores the gap penalty, and
// anything else is looked up in the matrix in either order.
func (m *Matrix) Score(a, b byte) (int, error) {
	switch {
	case a == m.GapChar && b == m.GapChar:
		return gapPairScore, nil
	case a == m.GapChar || b == m.GapChar:
		return m.GapPenalty, nil
	}
	if s, ok := m.scores[[2]byte{a, b}]; ok {
		return s, nil
	}
	if s, ok := m.scores[[2]byte{b, a}]; ok {
		return s, nil
	}
	return 0, PairMissingError(a, b)
}

// SumOfPairs sums substitution scores over all sequence pairs and all
// aligned columns. All sequences must share the alignment length.
func SumOfPairs(records []fasta.Record, m *Matrix) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	width := len(records[0].Seq)
	for _, rec := range records[1:] {
		if len(rec.Seq) != width {
			return 0, LengthError(rec.ID, len(rec.Seq), width)
		}
	}

	var total int
	for i := 0; i < len(records)-1; i++ {
		for j := i + 1; j < len(records); j++ {
			for col := 0; col < width; col++ {
				s, err := m.Score(records[i].Seq[col], records[j].Seq[col])
				if err != nil {
					return 0, err
				}
				total += s
			}
		}
	}
	return total, nil
}

// Normalized returns the sum-of-pairs score divided by the sequence count
// and the alignment length. With fewer than two sequences there is
// nothing to score and the result is nil.
func Normalized(records []fasta.Record, m *Matrix) (*float64, error) {
	if len(records) < 2 {
		return nil, nil
	}
	sum, err := SumOfPairs(records, m)
	if err != nil {
		return nil, err
	}
	res := float64(sum) / float64(len(records)) / float64(len(records[0].Seq))
	return &res, nil
}
