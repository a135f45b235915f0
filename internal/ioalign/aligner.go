// Package ioalign orchestrates alignment tasks: it splits HELM input
// into chains, encodes monomers, synthesizes substitution matrices,
// drives the external aligner and decodes and scores its output.
package ioalign

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/pepsar/helmalign/internal/iomatrix"
	"github.com/pepsar/helmalign/pkg/config"
	"github.com/pepsar/helmalign/pkg/fasta"
	"github.com/pepsar/helmalign/pkg/helm"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/pepsar/helmalign/pkg/scoring"
	"github.com/pepsar/helmalign/pkg/symbol"
)

type aligner struct {
	cfg    *config.Config
	runner helmalign.Runner
}

// New returns an Aligner that runs tasks through the given external
// runner, using the work directory and data files of cfg.
func New(cfg *config.Config, runner helmalign.Runner) helmalign.Aligner {
	return &aligner{cfg: cfg, runner: runner}
}

// Align runs one task. Temporary files carry a task-unique marker in
// their names and are removed before returning, on success and on
// failure alike.
func (a *aligner) Align(
	ctx context.Context,
	task *helmalign.Task,
) (*helmalign.Result, error) {
	start := time.Now()
	marker := uuid.NewString()
	defer a.cleanup(marker)

	a.applyDefaults(task)

	newSet, alignedSet, err := a.chainSets(task)
	if err != nil {
		return nil, err
	}

	chains := newSet.Names
	if task.Realign() {
		chains = commonChains(alignedSet.Names, newSet.Names)
	}

	// A requested chain missing from the input is not an aligner
	// failure; the caller reports it without an error.
	if task.Chain != "" && !containsChain(chains, task.Chain) {
		return nil, nil
	}

	res := &helmalign.Result{
		Chains:  chains,
		Aligned: make(map[string]string),
		Scores:  make(map[string]*float64),
	}

	var bar *pb.ProgressBar
	if len(chains) > 1 {
		bar = newProgressBar(len(chains), "Aligning chains: ")
		defer bar.Finish()
	}

	table := symbol.NewTable()
	for _, chain := range chains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := a.alignChain(ctx, task, res, table, chain, marker, alignedSet, newSet)
		table.Clear()
		if err != nil {
			return nil, err
		}
		if bar != nil {
			bar.Increment()
		}
	}

	slog.Info("Alignment task finished",
		"chains", humanize.Comma(int64(len(chains))),
		"sequences", humanize.Comma(int64(len(task.HELM))),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

// alignChain runs the pipeline of one chain: encode, synthesize the
// matrix, run the aligner, score the encoded output, decode it.
func (a *aligner) alignChain(
	ctx context.Context,
	task *helmalign.Task,
	res *helmalign.Result,
	table *symbol.Table,
	chain, marker string,
	alignedSet, newSet *helm.ChainSet,
) error {
	isChem := strings.HasPrefix(chain, "CHEM")

	newFasta, err := chainFasta(newSet, chain)
	if err != nil {
		return err
	}

	params := helmalign.RunParams{
		GapOpen:       task.GapOpen,
		GapExtend:     task.GapExtend,
		Method:        task.Method,
		RealignMethod: task.RealignMethod,
		Options:       task.Options,
		WorkDir:       a.cfg.WorkDir,
	}

	if task.Realign() {
		alignedFasta, err := chainFasta(alignedSet, chain)
		if err != nil {
			return err
		}
		params.AlignedFile, err = a.encodeFile(
			table, chain, marker+"_aligned", alignedFasta, isChem)
		if err != nil {
			return err
		}
		params.InputFile, err = a.encodeFile(
			table, chain, marker+"_new", newFasta, isChem)
		if err != nil {
			return err
		}
	} else {
		records := fasta.ReadRecords(newFasta)
		// A single sequence has nothing to align against; its score
		// stays nil.
		if len(records) == 1 {
			res.Aligned[chain] = newFasta
			res.Scores[chain] = nil
			return nil
		}
		params.InputFile, err = a.encodeFile(
			table, chain, marker, newFasta, isChem)
		if err != nil {
			return err
		}
	}

	params.MatrixFile, err = iomatrix.New(a.cfg, table).Synthesize(chain, marker)
	if err != nil {
		return err
	}

	stdout, stderr, err := a.runner.Run(ctx, params)
	res.Stderr = stderr
	if err != nil {
		return err
	}

	encoded := fasta.ReadRecords(stdout)

	// The score is computed on the encoded output with the synthesized
	// matrix, before decoding.
	score, err := a.scoreAlignment(encoded, params.MatrixFile)
	if err != nil {
		return err
	}
	res.Scores[chain] = score

	var b strings.Builder
	for _, rec := range encoded {
		b.WriteString("> " + rec.ID + "\n")
		b.WriteString(table.DecodeSequence(rec.Seq) + "\n")
	}
	res.Aligned[chain] = b.String()
	return nil
}

// encodeFile writes one encoded extended-FASTA input file into the
// work directory and returns its name.
func (a *aligner) encodeFile(
	table *symbol.Table,
	chain, marker, fastaText string,
	isChem bool,
) (string, error) {
	var b strings.Builder
	for _, rec := range fasta.ReadRecords(fastaText) {
		seq, err := table.EncodeSequence(rec.Seq, isChem)
		if err != nil {
			return "", err
		}
		b.WriteString("> " + rec.ID + "\n")
		b.WriteString(seq + "\n")
	}

	name := chain + "_" + marker + "_mafft.txt"
	path := filepath.Join(a.cfg.WorkDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", WriteInputError(path, err)
	}
	return name, nil
}

// scoreAlignment parses the synthesized matrix back and computes the
// normalized sum-of-pairs score of the encoded alignment.
func (a *aligner) scoreAlignment(
	records []fasta.Record,
	matrixFile string,
) (*float64, error) {
	path := filepath.Join(a.cfg.WorkDir, matrixFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadMatrixError(path, err)
	}
	defer f.Close()

	m, err := scoring.ParseMatrix(f)
	if err != nil {
		return nil, err
	}
	m.GapPenalty = a.cfg.Scoring.GapPenalty
	return scoring.Normalized(records, m)
}

// chainSets splits the task input into per-chain document sets. In
// realign mode the previously aligned records are converted back to
// HELM and split as well.
func (a *aligner) chainSets(
	task *helmalign.Task,
) (newSet, alignedSet *helm.ChainSet, err error) {
	newSet, err = helm.SplitChains(strings.Join(task.HELM, "\n"), task.Chain)
	if err != nil {
		return nil, nil, err
	}
	if !task.Realign() {
		return newSet, nil, nil
	}

	lines, err := fasta.ToHELM(task.AlignedFasta)
	if err != nil {
		return nil, nil, err
	}
	alignedSet, err = helm.SplitChains(strings.Join(lines, "\n"), task.Chain)
	if err != nil {
		return nil, nil, err
	}
	return newSet, alignedSet, nil
}

// applyDefaults fills task fields the caller left unset from the
// configuration.
func (a *aligner) applyDefaults(task *helmalign.Task) {
	if task.Method == "" {
		task.Method = a.cfg.Mafft.Method
	}
	if task.RealignMethod == "" {
		task.RealignMethod = a.cfg.Mafft.RealignMethod
	}
	if task.GapOpen == 0 {
		task.GapOpen = a.cfg.Mafft.GapOpen
	}
	if task.GapExtend == 0 {
		task.GapExtend = a.cfg.Mafft.GapExtend
	}
	if task.Options == "" {
		task.Options = a.cfg.Mafft.Options
	}
}

// cleanup removes every temporary file of one task from the work
// directory.
func (a *aligner) cleanup(marker string) {
	pattern := filepath.Join(a.cfg.WorkDir, "*"+marker+"*")
	files, err := filepath.Glob(pattern)
	if err != nil {
		slog.Warn("Cannot glob temporary files", "pattern", pattern, "error", err)
		return
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			slog.Warn("Cannot remove temporary file", "file", f, "error", err)
		}
	}
}

// chainFasta renders the per-chain HELM documents of one chain as
// extended FASTA.
func chainFasta(set *helm.ChainSet, chain string) (string, error) {
	var b strings.Builder
	for _, line := range strings.Split(set.Docs[chain], "\n") {
		f, err := fasta.FromHELM(line)
		if err != nil {
			return "", err
		}
		b.WriteString(f)
	}
	return b.String(), nil
}

// commonChains intersects two chain-name lists, preserving the order
// of the first.
func commonChains(aligned, fresh []string) []string {
	var res []string
	for _, name := range aligned {
		if containsChain(fresh, name) {
			res = append(res, name)
		}
	}
	return res
}

func containsChain(chains []string, name string) bool {
	for _, c := range chains {
		if c == name {
			return true
		}
	}
	return false
}
