package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/internal/ioalign"
	"github.com/pepsar/helmalign/internal/iomafft"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/pepsar/helmalign/pkg/report"
	"github.com/spf13/cobra"
)

// getRealignCmd returns the realign command.
func getRealignCmd() *cobra.Command {
	var flags taskFlags
	var alignedFile string
	var realignMethod string

	realignCmd := &cobra.Command{
		Use:   "realign",
		Short: "Merge new HELM sequences into an existing alignment",
		Long: `Merge new HELM sequences into a previously computed alignment.

The --aligned file is the JSON output of a previous align run. Only
chains present in both the aligned set and the new input are
processed, in the order of the aligned set.

Examples:
  helmalign realign -i new.json -a aligned.json
  helmalign realign -i new.helm -a aligned.json --realign-method addfragments`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRealign(cmd, args, flags, alignedFile, realignMethod)
		},
	}

	flags.register(realignCmd)
	realignCmd.Flags().StringVarP(&alignedFile, "aligned", "a", "",
		"JSON file with previously aligned records (required)")
	realignCmd.Flags().StringVar(&realignMethod, "realign-method", "",
		"realignment method: "+strings.Join(helmalign.RealignMethods, ", "))
	realignCmd.MarkFlagRequired("aligned")

	return realignCmd
}

func runRealign(
	cmd *cobra.Command,
	_ []string,
	flags taskFlags,
	alignedFile, realignMethod string,
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

	aligned, err := readAligned(alignedFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	task := newTask(flags, peptides)
	task.AlignedFasta = report.AlignedFasta(aligned)
	task.RealignMethod = realignMethod

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

	entities := append(report.FromAligned(aligned),
		report.FromPeptides(peptides)...)
	records, err := report.Build(res, entities)
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

// readAligned loads the records of a previous alignment. Both the bare
// record array and the full output envelope are accepted.
func readAligned(path string) ([]helmalign.AlignedPeptide, error) {
	text, err := readInput(path)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "[") {
		var res []helmalign.AlignedPeptide
		if err := json.Unmarshal([]byte(trimmed), &res); err != nil {
			return nil, inputError(err)
		}
		return res, nil
	}

	var env output
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, inputError(err)
	}
	return env.Alignment, nil
}
