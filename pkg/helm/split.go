package helm

import (
	"strings"
)

// ChainSet groups single-chain documents extracted from one or more HELM
// strings, keyed by chain name.
type ChainSet struct {
	// Names lists chain names in order of first appearance.
	Names []string
	// Docs maps a chain name to its newline-joined single-chain
	// documents, one per source line containing that chain.
	Docs map[string]string
}

// Has reports whether the set contains the named chain.
func (s *ChainSet) Has(name string) bool {
	_, ok := s.Docs[name]
	return ok
}

// SplitChains extracts single-chain documents from newline-separated HELM
// strings. When chain is non-empty only that chain is kept; chains not
// matching the filter are dropped.
func SplitChains(helmInput, chain string) (*ChainSet, error) {
	set := &ChainSet{Docs: make(map[string]string)}
	for _, line := range strings.Split(helmInput, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc, err := Parse(line)
		if err != nil {
			return nil, err
		}
		for _, c := range doc.Chains {
			if chain != "" && c.Name != chain {
				continue
			}
			set.add(c.Name, c.Body)
		}
	}
	return set, nil
}

// add appends a single-chain document for the named chain, keeping the
// trailing sections empty per the chain-name/braces/sections template.
func (s *ChainSet) add(name, body string) {
	doc := name + "{" + body + "}$$$$"
	if prev, ok := s.Docs[name]; ok {
		s.Docs[name] = prev + "\n" + doc
		return
	}
	s.Names = append(s.Names, name)
	s.Docs[name] = doc
}
