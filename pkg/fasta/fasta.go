// Package fasta transcodes between HELM documents and the extended FASTA
// format consumed by the text-mode aligner. The extended format is one
// header line "> NAME" followed by one sequence line where every monomer
// longer than one character is wrapped in square brackets.
package fasta

import (
	"strings"

	"github.com/pepsar/helmalign/pkg/helm"
)

// Record is one (header, sequence) pair of a FASTA document.
type Record struct {
	// ID is the header text without the leading '>' marker.
	ID string
	// Seq is the sequence with wrapped lines joined.
	Seq string
}

// String renders the record back to its two-line FASTA form.
func (r Record) String() string {
	return "> " + r.ID + "\n" + r.Seq + "\n"
}

// ReadRecords parses FASTA text into records. Sequences spanning several
// lines are joined; blank lines are skipped. Text before the first header
// is ignored, which also skips aligner banners on combined output.
func ReadRecords(text string) []Record {
	var records []Record
	var cur *Record
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if cur != nil {
				records = append(records, *cur)
			}
			id := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			cur = &Record{ID: id}
			continue
		}
		if cur != nil {
			cur.Seq += line
		}
	}
	if cur != nil {
		records = append(records, *cur)
	}
	return records
}

// FromHELM converts a HELM string into extended FASTA, one record per
// chain. Monomers longer than one character are bracket-wrapped unless
// they already are; CHEM chains are emitted as their literal body.
func FromHELM(helmLine string) (string, error) {
	doc, err := helm.Parse(helmLine)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, chain := range doc.Chains {
		b.WriteString("> " + chain.Name + "\n")
		if chain.IsChem() {
			b.WriteString(chain.Body)
		} else {
			tokens, err := helm.Tokens(chain.Name, helmLine)
			if err != nil {
				return "", err
			}
			for _, token := range tokens {
				switch {
				case len(token) == 1:
					b.WriteString(token)
				case strings.Contains(token, "["):
					b.WriteString(token)
				default:
					b.WriteString("[" + token + "]")
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ToHELM converts extended FASTA back into HELM strings, one per record.
// The record header becomes the chain name and tokens are re-joined with
// the '.' separator. It fails when the input does not begin with a
// header line.
func ToHELM(fastaText string) ([]string, error) {
	if !strings.HasPrefix(fastaText, ">") {
		return nil, HeaderError(fastaText)
	}
	var res []string
	for _, rec := range ReadRecords(fastaText) {
		body, err := SeqToBody(rec.Seq)
		if err != nil {
			return nil, err
		}
		res = append(res, rec.ID+"{"+body+"}$$$$")
	}
	return res, nil
}

// SeqToBody converts an extended FASTA sequence line into a HELM chain
// body: monomers separated by '.', bracket tokens kept verbatim including
// nested brackets.
func SeqToBody(seq string) (string, error) {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(seq); i++ {
		ch := seq[i]
		if depth == 0 && b.Len() > 0 && ch != ']' {
			b.WriteByte('.')
		}
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return "", BracketError(seq)
			}
		}
		b.WriteByte(ch)
	}
	if depth != 0 {
		return "", BracketError(seq)
	}
	return b.String(), nil
}
