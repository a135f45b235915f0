// Package report assembles typed output records from the per-chain
// aligned output and the original input records, and prepares realign
// input from previously aligned records.
package report

import (
	"strings"

	"github.com/pepsar/helmalign/pkg/helm"
	"github.com/pepsar/helmalign/pkg/helmalign"
)

// Entity is one input record as seen by report assembly. PolymerID is
// empty for raw inputs and set on records coming from a previous
// alignment.
type Entity struct {
	ID        string
	HELM      string
	PolymerID string
}

// FromPeptides converts raw input records to entities.
func FromPeptides(peptides []helmalign.Peptide) []Entity {
	res := make([]Entity, len(peptides))
	for i, p := range peptides {
		res[i] = Entity{ID: p.ID, HELM: p.HELM}
	}
	return res
}

// FromAligned converts previously aligned records to entities.
func FromAligned(aligned []helmalign.AlignedPeptide) []Entity {
	res := make([]Entity, len(aligned))
	for i, a := range aligned {
		res[i] = Entity{ID: a.ID, HELM: a.HELM, PolymerID: a.PolymerID}
	}
	return res
}

// Build matches the aligned per-chain output back to the input entities
// and produces one AlignedPeptide record per (chain, input) match, in
// result chain order.
func Build(res *helmalign.Result, inputs []Entity) ([]helmalign.AlignedPeptide, error) {
	if res.Empty() {
		return nil, nil
	}

	var out []helmalign.AlignedPeptide
	for _, chain := range res.Chains {
		seqs := alignedSeqs(chain, res.Aligned[chain])
		idx := 0
		for _, entity := range inputs {
			// Records from a previous alignment only match their own
			// chain; raw inputs match any chain they contain.
			if entity.PolymerID != "" && entity.PolymerID != chain {
				continue
			}
			body, ok := subpeptide(chain, entity.HELM)
			if !ok || idx >= len(seqs) {
				continue
			}

			rec := helmalign.AlignedPeptide{
				PolymerID:         chain,
				AlignedSubpeptide: body,
				HELM:              entity.HELM,
				ID:                entity.ID,
				AlignedSeq:        seqs[idx],
			}
			if strings.HasPrefix(chain, "CHEM") {
				rec.Monomers = []string{strings.Trim(body, "[]")}
			} else {
				monomers, err := ExtractMonomers(seqs[idx])
				if err != nil {
					return nil, err
				}
				rec.Monomers = monomers
			}
			out = append(out, rec)
			idx++
		}
	}
	return out, nil
}

// AlignedFasta renders previously aligned records as extended FASTA, the
// input format of the realign pipeline.
func AlignedFasta(records []helmalign.AlignedPeptide) string {
	var b strings.Builder
	for _, rec := range records {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("> " + rec.PolymerID + "\n")
		b.WriteString(rec.AlignedSeq)
	}
	return b.String()
}

// ExtractMonomers splits an aligned sequence into per-position monomers.
// Every character is one monomer unless it sits inside square brackets;
// bracketed tokens, including nested ones, come out as a single monomer
// without the outer brackets.
func ExtractMonomers(alignedSeq string) ([]string, error) {
	var res []string
	var cur strings.Builder
	depth := 0
	for i := 0; i < len(alignedSeq); i++ {
		ch := alignedSeq[i]
		switch {
		case ch == '[':
			if depth > 0 {
				cur.WriteByte(ch)
			}
			depth++
		case ch == ']':
			depth--
			if depth == 0 {
				res = append(res, cur.String())
				cur.Reset()
			} else if depth > 0 {
				cur.WriteByte(ch)
			} else {
				return nil, bracketError(alignedSeq)
			}
		case depth > 0:
			cur.WriteByte(ch)
		default:
			res = append(res, string(ch))
		}
	}
	if depth != 0 {
		return nil, bracketError(alignedSeq)
	}
	return res, nil
}

// alignedSeqs extracts the aligned sequences of one chain from its
// decoded extended FASTA output, in record order.
func alignedSeqs(chain, alignedFasta string) []string {
	parts := strings.Split(alignedFasta, "> "+chain+"\n")
	var res []string
	for _, p := range parts[1:] {
		res = append(res, strings.Trim(p, "\n"))
	}
	return res
}

// subpeptide returns the body of the named chain within a HELM string.
func subpeptide(chain, helmStr string) (string, bool) {
	doc, err := helm.Parse(helmStr)
	if err != nil {
		return "", false
	}
	for _, c := range doc.Chains {
		if c.Name == chain {
			return c.Body, true
		}
	}
	return "", false
}
