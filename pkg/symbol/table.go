// Package symbol maps multi-character monomer tokens onto single latin-1
// code points so that sequences with non-natural amino acids can be fed to
// a text-mode aligner that only understands one-character monomers.
//
// A Table is task-scoped mutable state. Construct one per alignment task
// (or per chain within a task) and discard or Clear it afterwards; a table
// shared across tasks would silently produce cross-task symbol collisions.
package symbol

import (
	"bytes"
	"strings"
)

// NaturalAminoAcids lists the 20 natural single-letter amino acid codes.
var NaturalAminoAcids = []byte{
	'G', 'A', 'V', 'L', 'I', 'M', 'P', 'F', 'W', 'S',
	'T', 'N', 'Q', 'Y', 'C', 'K', 'R', 'H', 'D', 'E',
}

// reserved code points never used as symbols: FASTA-significant characters
// ('>', '<', '=', '-'), space, CR, LF and NUL.
var reserved = map[byte]bool{
	0x3E: true, // >
	0x3D: true, // =
	0x3C: true, // <
	0x2D: true, // -
	0x20: true, // space
	0x0D: true, // CR
	0x0A: true, // LF
	0x00: true, // NUL
}

// Table is a task-scoped bijection between monomer tokens (by literal
// text) and single-byte symbols drawn from a bounded candidate alphabet.
type Table struct {
	chars []byte
	order []string
	enc   map[string]byte
	dec   map[byte]string
}

// NewTable returns an empty symbol table. The candidate alphabet is built
// lazily on first use.
func NewTable() *Table {
	return &Table{
		enc: make(map[string]byte),
		dec: make(map[byte]string),
	}
}

// Encode returns the symbol assigned to the token, assigning the next free
// candidate on first sight. Assignment is first-come-first-served in
// ascending candidate order. It fails with a capacity error once the
// number of distinct tokens exceeds the candidate alphabet size.
func (t *Table) Encode(token string) (byte, error) {
	if len(t.chars) == 0 {
		t.buildChars()
	}
	if sym, ok := t.enc[token]; ok {
		return sym, nil
	}
	pos := len(t.enc)
	if pos >= len(t.chars) {
		return 0, CapacityError(len(t.chars))
	}
	sym := t.chars[pos]
	t.enc[token] = sym
	t.dec[sym] = token
	t.order = append(t.order, token)
	return sym, nil
}

// Decode returns the token assigned to the symbol. Unknown symbols pass
// through unchanged, so natural monomers and the gap character survive.
func (t *Table) Decode(b byte) string {
	if token, ok := t.dec[b]; ok {
		return token
	}
	return string(b)
}

// Symbol looks up the symbol for a token without assigning one.
func (t *Table) Symbol(token string) (byte, bool) {
	sym, ok := t.enc[token]
	return sym, ok
}

// Tokens returns the encoded tokens in assignment order.
func (t *Table) Tokens() []string {
	res := make([]string, len(t.order))
	copy(res, t.order)
	return res
}

// Len returns the number of tokens currently encoded.
func (t *Table) Len() int {
	return len(t.enc)
}

// Capacity returns the size of the candidate alphabet.
func (t *Table) Capacity() int {
	if len(t.chars) == 0 {
		t.buildChars()
	}
	return len(t.chars)
}

// Clear resets the table and the candidate list. Required between
// independent alignment tasks; never implicit.
func (t *Table) Clear() {
	t.chars = nil
	t.order = nil
	t.enc = make(map[string]byte)
	t.dec = make(map[byte]string)
}

// EncodeSequence replaces every bracket-delimited token in seq with its
// symbol. When chem is true the whole sequence is treated as one token.
func (t *Table) EncodeSequence(seq string, chem bool) (string, error) {
	if chem {
		sym, err := t.Encode(seq)
		if err != nil {
			return "", err
		}
		return string(sym), nil
	}

	tokens, err := BracketTokens(seq)
	if err != nil {
		return "", err
	}
	for _, token := range tokens {
		if _, err := t.Encode(token); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	depth := 0
	start := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case '[':
			if depth == 0 {
				start = i
			}
			depth++
		case ']':
			depth--
			if depth == 0 {
				b.WriteByte(t.enc[seq[start:i+1]])
			}
		default:
			if depth == 0 {
				b.WriteByte(seq[i])
			}
		}
	}
	return b.String(), nil
}

// DecodeSequence maps every byte of an aligned sequence back to its
// original token; bytes with no assignment pass through unchanged.
func (t *Table) DecodeSequence(seq string) string {
	var b strings.Builder
	for i := 0; i < len(seq); i++ {
		b.WriteString(t.Decode(seq[i]))
	}
	return b.String()
}

// BracketTokens scans a sequence for bracket-delimited tokens. A token
// begins at a '[' when no bracket is open and ends at the ']' restoring
// balance to zero, so nested brackets are captured as part of one token.
// Unmatched brackets at end of scan are a notation error naming the
// sequence.
func BracketTokens(seq string) ([]string, error) {
	var tokens []string
	depth := 0
	start := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case '[':
			if depth == 0 {
				start = i
			}
			depth++
		case ']':
			depth--
			if depth == 0 {
				tokens = append(tokens, seq[start:i+1])
			}
			if depth < 0 {
				return nil, BracketError(seq)
			}
		}
	}
	if depth != 0 {
		return nil, BracketError(seq)
	}
	return tokens, nil
}

// buildChars assembles the candidate alphabet: all code points in 0-255
// except the reserved set and the natural amino acid letters in either
// case.
func (t *Table) buildChars() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if reserved[b] {
			continue
		}
		if b < 0x80 && bytes.IndexByte(NaturalAminoAcids, upper(b)) >= 0 {
			continue
		}
		t.chars = append(t.chars, b)
	}
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
