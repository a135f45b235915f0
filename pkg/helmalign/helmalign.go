// Package helmalign defines the public contracts of the aligner: the task
// and result records exchanged with callers, and the interfaces
// implemented by the orchestration and external-process layers.
package helmalign

import (
	"context"
)

// Peptide is one input record: an identifier and a HELM string.
type Peptide struct {
	ID   string `json:"ID"`
	HELM string `json:"HELM"`
}

// AlignedPeptide is one output record of an alignment run.
type AlignedPeptide struct {
	PolymerID         string   `json:"PolymerID"`
	AlignedSubpeptide string   `json:"AlignedSubpeptide"`
	HELM              string   `json:"HELM"`
	ID                string   `json:"ID"`
	AlignedSeq        string   `json:"AlignedSeq"`
	Monomers          []string `json:"Monomers,omitempty"`
}

// Task describes one alignment request. Exactly one input document set
// (AlignedFasta empty) selects align mode; two sets select realign mode,
// merging the HELM sequences into the existing alignment.
type Task struct {
	// HELM holds the sequences to align; in realign mode these are the
	// new sequences.
	HELM []string
	// AlignedFasta is the existing alignment in extended FASTA format.
	// Non-empty selects realign mode.
	AlignedFasta string
	// Chain restricts the task to one chain name; empty aligns all.
	Chain string
	// GapOpen is the penalty for opening a gap of any length.
	GapOpen float64
	// GapExtend is the penalty for extending a gap by one monomer.
	GapExtend float64
	// Method selects the aligner flavor (ginsi, linsi, ...). Empty uses
	// the configured default.
	Method string
	// RealignMethod selects how new sequences join an existing alignment
	// (add, addfragments, ...). Realign mode only.
	RealignMethod string
	// Options is copied verbatim onto the aligner command line.
	Options string
}

// Realign reports whether the task carries two input sets.
func (t *Task) Realign() bool {
	return t.AlignedFasta != ""
}

// Result is the outcome of one alignment task. A nil Result with a nil
// error is the sentinel for "requested chain not found": nothing to
// align, which is distinct from an aligner failure.
type Result struct {
	// Chains lists the processed chain names in pipeline order.
	Chains []string
	// Aligned maps a chain name to its decoded aligned output in
	// extended FASTA format.
	Aligned map[string]string
	// Scores maps a chain name to its normalized sum-of-pairs score;
	// nil for single-sequence chains where alignment is undefined.
	Scores map[string]*float64
	// Stderr preserves the aligner's diagnostic stream.
	Stderr string
}

// Empty reports whether the result carries no alignment.
func (r *Result) Empty() bool {
	return r == nil || len(r.Aligned) == 0
}

// Aligner orchestrates alignment tasks: splitting documents into chains,
// encoding, matrix synthesis, driving the external aligner, decoding and
// scoring.
type Aligner interface {
	// Align runs one task. Chain-level fatal errors abort the whole
	// task; a requested chain missing from the input yields a nil
	// Result and a nil error.
	Align(ctx context.Context, task *Task) (*Result, error)
}

// RunParams describes one external aligner invocation. File arguments are
// names relative to WorkDir; the tool resolves the matrix file by name.
type RunParams struct {
	InputFile     string
	AlignedFile   string
	MatrixFile    string
	GapOpen       float64
	GapExtend     float64
	Method        string
	RealignMethod string
	Options       string
	WorkDir       string
}

// Runner invokes the external text-mode aligner. It is the only blocking
// out-of-process call in the pipeline.
type Runner interface {
	// Run executes the aligner and returns its standard output and
	// standard error. A non-zero exit is an error preserving stderr.
	Run(ctx context.Context, p RunParams) (string, string, error)

	// Version reports the aligner's version string.
	Version(ctx context.Context) (string, error)
}
