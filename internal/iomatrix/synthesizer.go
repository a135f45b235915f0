// Package iomatrix synthesizes per-task substitution matrices in the
// text-mode format the external aligner reads with --textmatrix.
package iomatrix

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pepsar/helmalign/pkg/config"
	"github.com/pepsar/helmalign/pkg/symbol"
)

// Synthesizer builds a substitution matrix for one chain from the
// symbols currently assigned in the encoding table, the monomer map
// and the reference substitution table.
type Synthesizer struct {
	cfg   *config.Config
	table *symbol.Table
}

// New returns a Synthesizer bound to a configuration and an encoding
// table.
func New(cfg *config.Config, table *symbol.Table) *Synthesizer {
	return &Synthesizer{cfg: cfg, table: table}
}

// identity is one monomer the matrix must cover: its display name, the
// hex form of its encoded byte, and, once resolved, the character the
// reference table files it under and its column index there.
type identity struct {
	name   string
	hex    string
	refKey string
	column int
}

// Synthesize writes the substitution matrix for one chain of one task
// into the configured work directory and returns the file name,
// without the directory part.
func (s *Synthesizer) Synthesize(chain, task string) (string, error) {
	ids := s.identities()

	mapped, notFound, err := s.resolveMonomerMap(ids)
	if err != nil {
		return "", err
	}
	for _, id := range notFound {
		slog.Warn("monomer missing from monomer map, using fallback scores",
			"monomer", id.name, "chain", chain)
	}

	rows, err := s.referenceRows(mapped)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, left := range mapped {
		row := rows[left.refKey]
		for _, right := range mapped {
			score := row[right.column]
			fmt.Fprintf(&b, "%s %s %s   # %s x %s\n",
				left.hex, right.hex, score, left.name, right.name)
		}
	}

	// Monomers absent from the monomer map score against everything
	// with the configured fallbacks.
	for _, left := range notFound {
		for _, right := range mapped {
			fmt.Fprintf(&b, "%s %s %d   # %s x %s\n",
				left.hex, right.hex, s.cfg.Scoring.FallbackMismatch,
				left.name, right.name)
		}
		for _, right := range notFound {
			score := s.cfg.Scoring.FallbackMismatch
			if left.hex == right.hex {
				score = s.cfg.Scoring.FallbackMatch
			}
			fmt.Fprintf(&b, "%s %s %d   # %s x %s\n",
				left.hex, right.hex, score, left.name, right.name)
		}
	}

	name := chain + "_" + task + "_matrix.txt"
	path := filepath.Join(s.cfg.WorkDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", WriteError(path, err)
	}
	return name, nil
}

// identities lists the monomers the matrix must cover: every token the
// encoding table assigned a symbol to, brackets stripped, followed by
// the natural amino acids.
func (s *Synthesizer) identities() []identity {
	var ids []identity
	for _, token := range s.table.Tokens() {
		sym, _ := s.table.Symbol(token)
		name := strings.ReplaceAll(token, "[", "")
		name = strings.ReplaceAll(name, "]", "")
		ids = append(ids, identity{
			name: name,
			hex:  fmt.Sprintf("%#04x", sym),
		})
	}
	for _, aa := range symbol.NaturalAminoAcids {
		ids = append(ids, identity{
			name: string(aa),
			hex:  fmt.Sprintf("%#04x", aa),
		})
	}
	return ids
}

// resolveMonomerMap reads the monomer map file and splits the
// identities into those it covers, keyed to their reference-table
// characters, and those it does not.
func (s *Synthesizer) resolveMonomerMap(
	ids []identity,
) (mapped, notFound []identity, err error) {
	f, err := os.Open(s.cfg.Data.MonomerMap)
	if err != nil {
		return nil, nil, MonomerMapError(s.cfg.Data.MonomerMap, err)
	}
	defer f.Close()

	byName := make(map[string]bool)
	for _, id := range ids {
		byName[id.name] = true
	}

	// Later map lines overwrite earlier ones, for the monomer name and
	// for the reference key alike. The early stop compares against the
	// key-owner map: a key collision keeps the scan going to let a later
	// line settle the ownership.
	refKeys := make(map[string]string)
	keyOwner := make(map[string]string)
	sc := bufio.NewScanner(f)
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < 2 {
			continue
		}
		if !byName[fields[0]] {
			continue
		}
		key := unicodeChar(fields[1])
		refKeys[fields[0]] = key
		keyOwner[key] = fields[0]
		if len(keyOwner) == len(byName) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, MonomerMapError(s.cfg.Data.MonomerMap, err)
	}

	for _, id := range ids {
		key, ok := refKeys[id.name]
		// A monomer aliased onto a reference identity another monomer
		// owns degrades to fallback scores instead of sharing its row.
		if !ok || keyOwner[key] != id.name {
			notFound = append(notFound, id)
			continue
		}
		id.refKey = key
		mapped = append(mapped, id)
	}
	return mapped, notFound, nil
}

// referenceRows reads the reference table, resolves the column index
// of each mapped identity from the header row, and caches the score
// rows the matrix needs. Header token position i names the identity
// whose score row is file line i.
func (s *Synthesizer) referenceRows(
	mapped []identity,
) (map[string][]string, error) {
	f, err := os.Open(s.cfg.Data.ReferenceMatrix)
	if err != nil {
		return nil, ReferenceError(s.cfg.Data.ReferenceMatrix, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	if !sc.Scan() {
		return nil, ReferenceError(s.cfg.Data.ReferenceMatrix, sc.Err())
	}

	// Identities spelling the same name share one reference key, so a
	// key can resolve several mapped entries at once.
	byKey := make(map[string][]int)
	for i, id := range mapped {
		byKey[id.refKey] = append(byKey[id.refKey], i)
	}

	// The last header token carries the line terminator and is never a
	// valid identity, so it is skipped.
	header := strings.Split(sc.Text(), " ")
	wantRows := make(map[int]bool)
	found := 0
	for i := 0; i < len(header)-1 && found < len(mapped); i++ {
		for _, j := range byKey[header[i]] {
			mapped[j].column = i
			wantRows[i] = true
			found++
		}
	}
	if found != len(mapped) {
		// Header position 0 is the empty token before the first
		// separator, so an unresolved identity still has column 0.
		for _, id := range mapped {
			if id.column == 0 {
				return nil, RowNotFoundError(id.name, id.refKey)
			}
		}
	}

	rows := make(map[string][]string, len(wantRows))
	// The header already consumed line 0; score rows start at line 1,
	// matching the 1-based header positions.
	for line := 1; sc.Scan(); line++ {
		if !wantRows[line] {
			continue
		}
		fields := strings.Split(strings.TrimRight(sc.Text(), " \r"), " ")
		rows[fields[0]] = fields
		if len(rows) == len(wantRows) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ReferenceError(s.cfg.Data.ReferenceMatrix, err)
	}
	for _, id := range mapped {
		if _, ok := rows[id.refKey]; !ok {
			return nil, RowNotFoundError(id.name, id.refKey)
		}
	}
	return rows, nil
}

// unicodeChar converts a hex string from the monomer map into the
// character it denotes.
func unicodeChar(hex string) string {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return string(rune(n))
}
