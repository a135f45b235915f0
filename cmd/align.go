package cmd

import (
	"context"
	"strings"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/internal/ioalign"
	"github.com/pepsar/helmalign/internal/iomafft"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/pepsar/helmalign/pkg/report"
	"github.com/spf13/cobra"
)

// getAlignCmd returns the align command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getAlignCmd() *cobra.Command {
	var flags taskFlags

	alignCmd := &cobra.Command{
		Use:   "align",
		Short: "Align HELM sequences chain by chain",
		Long: `Align HELM sequences with MAFFT, each chain separately.

The input is either a JSON array of {"ID": ..., "HELM": ...} records
or raw HELM strings, one per line. A chain with a single sequence is
returned as is, without alignment or score.

Examples:
  helmalign align -i peptides.json
  helmalign align -i peptides.helm -c PEPTIDE2 -f fasta
  cat peptides.helm | helmalign align`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args, flags)
		},
	}

	flags.register(alignCmd)

	return alignCmd
}

func runAlign(
	cmd *cobra.Command,
	_ []string,
	flags taskFlags,
) error {
	ctx := context.Background()
	applyTaskFlags(cmd, flags)

	text, err := readInput(flags.input)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	peptides, err := parsePeptides(text)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	task := newTask(flags, peptides)

	aligner := ioalign.New(cfg, iomafft.New(cfg))
	res, err := aligner.Align(ctx, task)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if res == nil {
		gn.Warn("Alignment failure. There are no sub-peptides "+
			"with ID: <em>%s</em>", task.Chain)
		return nil
	}

	records, err := report.Build(res, report.FromPeptides(peptides))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	out := output{Alignment: records, AlignmentScore: res.Scores}
	if err = writeOutput(out, flags.format, flags.output); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

// newTask builds an alignment task from flag values; unset values stay
// zero and are filled from the configuration by the aligner.
func newTask(flags taskFlags, peptides []helmalign.Peptide) *helmalign.Task {
	helms := make([]string, len(peptides))
	for i, p := range peptides {
		helms[i] = p.HELM
	}
	return &helmalign.Task{
		HELM:      helms,
		Chain:     strings.ToUpper(flags.chain),
		GapOpen:   flags.gapOpen,
		GapExtend: flags.gapExtend,
		Method:    flags.method,
		Options:   flags.mafftOptions,
	}
}
