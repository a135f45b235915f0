package fasta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromHELM verifies extended FASTA rendering with bracket-wrapped
// multi-character monomers.
func TestFromHELM(t *testing.T) {
	text, err := FromHELM("PEPTIDE1{A.C.[NH2]}$$$$")
	require.NoError(t, err)
	assert.Equal(t, "> PEPTIDE1\nAC[NH2]\n", text)
}

// TestFromHELM_MultiChain verifies one record per chain.
func TestFromHELM_MultiChain(t *testing.T) {
	text, err := FromHELM("PEPTIDE1{A.G}|PEPTIDE2{[dK].C}$$$$")
	require.NoError(t, err)
	assert.Equal(t, "> PEPTIDE1\nAG\n> PEPTIDE2\n[dK]C\n", text)
}

// TestFromHELM_Chem verifies CHEM chains pass their body through as a
// literal.
func TestFromHELM_Chem(t *testing.T) {
	text, err := FromHELM("CHEM1{[PEG2]}$$$$")
	require.NoError(t, err)
	assert.Equal(t, "> CHEM1\n[PEG2]\n", text)
}

// TestFromHELM_BadInput verifies HELM parse errors surface.
func TestFromHELM_BadInput(t *testing.T) {
	_, err := FromHELM("PEPTIDE1{A.C}")
	assert.Error(t, err)
}

// TestReadRecords verifies header parsing, line joining and banner
// skipping.
func TestReadRecords(t *testing.T) {
	text := "aligner banner line\n" +
		"> PEPTIDE1\nAC[N\nH2]\n\n" +
		">PEPTIDE2\nGG\n"
	records := ReadRecords(text)
	require.Len(t, records, 2)
	assert.Equal(t, "PEPTIDE1", records[0].ID)
	assert.Equal(t, "AC[NH2]", records[0].Seq)
	assert.Equal(t, "PEPTIDE2", records[1].ID)
	assert.Equal(t, "GG", records[1].Seq)
}

// TestRecordString verifies the two-line rendering.
func TestRecordString(t *testing.T) {
	rec := Record{ID: "PEPTIDE1", Seq: "AC"}
	assert.Equal(t, "> PEPTIDE1\nAC\n", rec.String())
}

// TestToHELM verifies the FASTA to HELM round trip.
func TestToHELM(t *testing.T) {
	lines, err := ToHELM("> PEPTIDE1\nAC[NH2]\n> PEPTIDE2\nG[dK]G\n")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PEPTIDE1{A.C.[NH2]}$$$$",
		"PEPTIDE2{G.[dK].G}$$$$",
	}, lines)
}

// TestToHELM_NoHeader verifies input without a leading header fails.
func TestToHELM_NoHeader(t *testing.T) {
	_, err := ToHELM("AC[NH2]\n")
	assert.Error(t, err)
}

// TestSeqToBody verifies separator insertion around bracket tokens,
// including nested brackets and gap characters.
func TestSeqToBody(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"plain", "ACG", "A.C.G"},
		{"trailing token", "AC[NH2]", "A.C.[NH2]"},
		{"leading token", "[dK]AC", "[dK].A.C"},
		{"nested", "A[[*]N[*]]G", "A.[[*]N[*]].G"},
		{"gaps", "A-C", "A.-.C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeqToBody(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSeqToBody_Unbalanced verifies bracket imbalance is rejected.
func TestSeqToBody_Unbalanced(t *testing.T) {
	_, err := SeqToBody("A[NH2")
	assert.Error(t, err)

	_, err = SeqToBody("A]C")
	assert.Error(t, err)
}
