// Package helm implements the notation model for HELM documents:
// multi-chain biopolymer sequences with inter-chain connections.
//
// A HELM document has five '$'-delimited sections. Section 0 declares
// chains, section 1 declares connections between chains, sections 2 and 3
// are passed through opaquely, and section 4 carries the version tag.
// Parsing uses explicit scanners rather than regular expressions because
// monomer tokens may contain nested brackets (SMILES sub-notation), which
// is not a regular language.
package helm

import (
	"strconv"
	"strings"
	"unicode"
)

// Document is a parsed HELM string.
type Document struct {
	Chains      []Chain
	Connections []Connection
	// Attributes holds sections 2 and 3 verbatim; they are not interpreted.
	Attributes [2]string
	// Version is section 4, e.g. "V2.0".
	Version string
}

// Chain is one named polymer or small-molecule unit within a document.
type Chain struct {
	// Name is unique within the document, e.g. "PEPTIDE1".
	Name string
	// Kind is the leading alphabetic prefix of the name ("PEPTIDE",
	// "CHEM", "RNA", ...).
	Kind string
	// Body is the raw token sequence between the braces.
	Body string
}

// IsChem reports whether the chain is a single-unit small molecule.
// CHEM chains carry exactly one token equal to their whole body.
func (c Chain) IsChem() bool {
	return c.Kind == "CHEM"
}

// Connection links two (chain, position, attachment-point) pairs, e.g.
// "PEPTIDE1,CHEM1,2:R3-1:R2".
type Connection struct {
	ChainA    string
	ChainB    string
	FromPos   int
	FromLabel string
	ToPos     int
	ToLabel   string
}

// Parse parses a HELM string into a Document. It fails when the text does
// not split into exactly five sections, when a chain declaration is
// malformed, or when a connection references an undeclared chain.
func Parse(text string) (*Document, error) {
	sections := strings.Split(text, "$")
	if len(sections) != 5 {
		return nil, SectionsError(text, len(sections))
	}

	doc := &Document{
		Attributes: [2]string{sections[2], sections[3]},
		Version:    sections[4],
	}

	declared := make(map[string]bool)
	for _, entry := range strings.Split(sections[0], "|") {
		chain, err := parseChain(entry)
		if err != nil {
			return nil, err
		}
		doc.Chains = append(doc.Chains, chain)
		declared[chain.Name] = true
	}

	if sections[1] != "" {
		for _, entry := range strings.Split(sections[1], "|") {
			conn, err := parseConnection(entry)
			if err != nil {
				return nil, err
			}
			if !declared[conn.ChainA] {
				return nil, ChainRefError(conn.ChainA)
			}
			if !declared[conn.ChainB] {
				return nil, ChainRefError(conn.ChainB)
			}
			doc.Connections = append(doc.Connections, conn)
		}
	}

	return doc, nil
}

// Validate reports whether text is structurally valid HELM: five sections,
// and every chain referenced by a connection is declared in section 0.
func Validate(text string) bool {
	sections := strings.Split(text, "$")
	if len(sections) != 5 {
		return false
	}
	declared := make(map[string]bool)
	for _, name := range namesOf(sections[0]) {
		declared[name] = true
	}
	if sections[1] == "" {
		return true
	}
	for _, entry := range strings.Split(sections[1], "|") {
		parts := strings.Split(entry, ",")
		if len(parts) < 2 {
			return false
		}
		if !declared[parts[0]] || !declared[parts[1]] {
			return false
		}
	}
	return true
}

// ChainNames returns the chain names declared in section 0 of a HELM
// string, in declaration order.
func ChainNames(text string) []string {
	sections := strings.Split(text, "$")
	return namesOf(sections[0])
}

// Chains returns the raw '|'-separated chain entries of section 0.
func Chains(text string) []string {
	sections := strings.Split(text, "$")
	return strings.Split(sections[0], "|")
}

// Tokens returns the token sequence of the named chain. Peptide-like
// chains split their body on the '.' separator outside brackets; CHEM
// chains are a single token equal to the whole body.
func Tokens(chainName, text string) ([]string, error) {
	for _, entry := range Chains(text) {
		if !strings.HasPrefix(entry, chainName+"{") {
			continue
		}
		body := entry[len(chainName)+1 : len(entry)-1]
		if kindOf(chainName) == "CHEM" {
			return []string{body}, nil
		}
		return SplitTokens(chainName, body)
	}
	return nil, nil
}

// DistinctTokens returns the unique tokens of the named chain, in order
// of first appearance.
func DistinctTokens(chainName, text string) ([]string, error) {
	all, err := Tokens(chainName, text)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	var res []string
	for _, tok := range all {
		if !seen[tok] {
			seen[tok] = true
			res = append(res, tok)
		}
	}
	return res, nil
}

// SplitTokens splits a chain body on '.' separators outside brackets.
// Nested brackets belong to one token. Empty tokens (doubled, leading or
// trailing separators) and unterminated brackets are rejected.
func SplitTokens(chainName, body string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	depth := 0
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case ch == '[':
			depth++
			cur.WriteByte(ch)
		case ch == ']':
			depth--
			cur.WriteByte(ch)
		case ch == '.' && depth == 0:
			if cur.Len() == 0 {
				return nil, SeparatorError(chainName, body)
			}
			tokens = append(tokens, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if depth != 0 {
		return nil, BracketError(body)
	}
	if cur.Len() == 0 {
		return nil, SeparatorError(chainName, body)
	}
	tokens = append(tokens, cur.String())
	return tokens, nil
}

func parseChain(entry string) (Chain, error) {
	open := strings.IndexByte(entry, '{')
	if open <= 0 || !strings.HasSuffix(entry, "}") {
		return Chain{}, ChainHeaderError(entry)
	}
	name := entry[:open]
	kind := kindOf(name)
	if kind == "" {
		return Chain{}, ChainHeaderError(entry)
	}
	return Chain{
		Name: name,
		Kind: kind,
		Body: entry[open+1 : len(entry)-1],
	}, nil
}

func parseConnection(entry string) (Connection, error) {
	parts := strings.SplitN(entry, ",", 3)
	if len(parts) != 3 {
		return Connection{}, ChainHeaderError(entry)
	}
	ends := strings.SplitN(parts[2], "-", 2)
	if len(ends) != 2 {
		return Connection{}, ChainHeaderError(entry)
	}
	fromPos, fromLabel, err := parseAttachment(ends[0])
	if err != nil {
		return Connection{}, ChainHeaderError(entry)
	}
	toPos, toLabel, err := parseAttachment(ends[1])
	if err != nil {
		return Connection{}, ChainHeaderError(entry)
	}
	return Connection{
		ChainA:    parts[0],
		ChainB:    parts[1],
		FromPos:   fromPos,
		FromLabel: fromLabel,
		ToPos:     toPos,
		ToLabel:   toLabel,
	}, nil
}

func parseAttachment(s string) (int, string, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, "", strconv.ErrSyntax
	}
	pos, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", err
	}
	return pos, parts[1], nil
}

// namesOf extracts chain names from a section-0 string without full
// validation of the chain bodies.
func namesOf(section string) []string {
	var names []string
	for _, entry := range strings.Split(section, "|") {
		open := strings.IndexByte(entry, '{')
		if open > 0 {
			names = append(names, entry[:open])
		}
	}
	return names
}

// kindOf returns the leading alphabetic prefix of a chain name, which
// determines the chain category.
func kindOf(name string) string {
	for i, r := range name {
		if !unicode.IsLetter(r) {
			return name[:i]
		}
	}
	return name
}
