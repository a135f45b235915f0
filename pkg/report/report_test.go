package report

import (
	"testing"

	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractMonomers verifies per-position monomer extraction from an
// aligned sequence.
func TestExtractMonomers(t *testing.T) {
	monomers, err := ExtractMonomers("A-C[NH2]G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "-", "C", "NH2", "G"}, monomers)
}

// TestExtractMonomers_Nested verifies nested brackets stay inside one
// monomer, with only the outer brackets stripped.
func TestExtractMonomers_Nested(t *testing.T) {
	monomers, err := ExtractMonomers("A[[*]N[C@@H](C)C(=O)[*]]G")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"A", "[*]N[C@@H](C)C(=O)[*]", "G"}, monomers)
}

// TestExtractMonomers_Unbalanced verifies bracket imbalance fails.
func TestExtractMonomers_Unbalanced(t *testing.T) {
	_, err := ExtractMonomers("A[NH2")
	assert.Error(t, err)

	_, err = ExtractMonomers("A]G")
	assert.Error(t, err)
}

// TestBuild verifies matching the per-chain aligned output back to the
// input records.
func TestBuild(t *testing.T) {
	res := &helmalign.Result{
		Chains: []string{"PEPTIDE1", "PEPTIDE2"},
		Aligned: map[string]string{
			"PEPTIDE1": "> PEPTIDE1\nAC[NH2]-\n> PEPTIDE1\nACG-\n",
			"PEPTIDE2": "> PEPTIDE2\nGG\n",
		},
		Scores: map[string]*float64{},
	}
	inputs := []Entity{
		{ID: "pep-1", HELM: "PEPTIDE1{A.C.[NH2]}|PEPTIDE2{G.G}$$$$"},
		{ID: "pep-2", HELM: "PEPTIDE1{A.C.G}$$$$"},
	}

	records, err := Build(res, inputs)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "PEPTIDE1", records[0].PolymerID)
	assert.Equal(t, "pep-1", records[0].ID)
	assert.Equal(t, "A.C.[NH2]", records[0].AlignedSubpeptide)
	assert.Equal(t, "AC[NH2]-", records[0].AlignedSeq)
	assert.Equal(t, []string{"A", "C", "NH2", "-"}, records[0].Monomers)

	assert.Equal(t, "PEPTIDE1", records[1].PolymerID)
	assert.Equal(t, "pep-2", records[1].ID)
	assert.Equal(t, "ACG-", records[1].AlignedSeq)

	// only pep-1 carries PEPTIDE2
	assert.Equal(t, "PEPTIDE2", records[2].PolymerID)
	assert.Equal(t, "pep-1", records[2].ID)
	assert.Equal(t, "GG", records[2].AlignedSeq)
}

// TestBuild_Chem verifies CHEM records report one monomer without
// brackets.
func TestBuild_Chem(t *testing.T) {
	res := &helmalign.Result{
		Chains: []string{"CHEM1"},
		Aligned: map[string]string{
			"CHEM1": "> CHEM1\n\x01\n",
		},
	}
	inputs := []Entity{{ID: "c-1", HELM: "CHEM1{[PEG2]}$$$$"}}

	records, err := Build(res, inputs)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"PEG2"}, records[0].Monomers)
}

// TestBuild_EmptyResult verifies the empty sentinel produces no
// records.
func TestBuild_EmptyResult(t *testing.T) {
	records, err := Build(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, records)
}

// TestBuild_AlignedEntityMatchesOwnChainOnly verifies records of a
// previous alignment only join their own chain.
func TestBuild_AlignedEntityMatchesOwnChainOnly(t *testing.T) {
	res := &helmalign.Result{
		Chains: []string{"PEPTIDE1"},
		Aligned: map[string]string{
			"PEPTIDE1": "> PEPTIDE1\nAC\n> PEPTIDE1\nAG\n",
		},
	}
	inputs := []Entity{
		{ID: "old", HELM: "PEPTIDE1{A.C}$$$$", PolymerID: "PEPTIDE1"},
		{ID: "off-chain", HELM: "PEPTIDE2{G.G}$$$$", PolymerID: "PEPTIDE2"},
		{ID: "new", HELM: "PEPTIDE1{A.G}$$$$"},
	}

	records, err := Build(res, inputs)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "old", records[0].ID)
	assert.Equal(t, "new", records[1].ID)
}

// TestAlignedFasta verifies rendering of previously aligned records
// for the realign pipeline.
func TestAlignedFasta(t *testing.T) {
	records := []helmalign.AlignedPeptide{
		{PolymerID: "PEPTIDE1", AlignedSeq: "AC-G"},
		{PolymerID: "PEPTIDE1", AlignedSeq: "ACTG"},
	}
	assert.Equal(t,
		"> PEPTIDE1\nAC-G\n> PEPTIDE1\nACTG", AlignedFasta(records))
}

// TestFromPeptides_FromAligned verifies the entity converters.
func TestFromPeptides_FromAligned(t *testing.T) {
	peptides := []helmalign.Peptide{{ID: "a", HELM: "PEPTIDE1{A}$$$$"}}
	entities := FromPeptides(peptides)
	require.Len(t, entities, 1)
	assert.Equal(t, "a", entities[0].ID)
	assert.Empty(t, entities[0].PolymerID)

	aligned := []helmalign.AlignedPeptide{{
		ID: "b", HELM: "PEPTIDE2{G}$$$$", PolymerID: "PEPTIDE2",
	}}
	entities = FromAligned(aligned)
	require.Len(t, entities, 1)
	assert.Equal(t, "PEPTIDE2", entities[0].PolymerID)
}

// TestBuild_ChemMonomers verifies the CHEM special case goes through
// subpeptide body, not the aligned sequence.
func TestBuild_ChemMonomers(t *testing.T) {
	res := &helmalign.Result{
		Chains:  []string{"CHEM1"},
		Aligned: map[string]string{"CHEM1": "> CHEM1\n\x02\n"},
	}
	inputs := []Entity{{ID: "x", HELM: "CHEM1{[C1CCCCC1]}$$$$"}}

	records, err := Build(res, inputs)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C1CCCCC1", records[0].Monomers[0])
	assert.Equal(t, "\x02", records[0].AlignedSeq)
}
