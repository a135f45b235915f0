package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/pepsar/helmalign/internal/iofs"
	"github.com/pepsar/helmalign/pkg/config"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/spf13/cobra"
)

// taskFlags holds the flag values shared by the align and realign
// commands.
type taskFlags struct {
	input        string
	chain        string
	method       string
	gapOpen      float64
	gapExtend    float64
	mafftOptions string
	format       string
	output       string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "",
		"input file with HELM strings or JSON records, '-' for STDIN")
	cmd.Flags().StringVarP(&f.chain, "chain", "c", "",
		"align only the chain with this name (PEPTIDE1, ...)")
	cmd.Flags().StringVarP(&f.method, "method", "m", "",
		"alignment method: "+strings.Join(helmalign.Methods, ", "))
	cmd.Flags().Float64Var(&f.gapOpen, "gap-open", 0,
		"gap opening penalty")
	cmd.Flags().Float64Var(&f.gapExtend, "gap-extend", 0,
		"gap extension penalty")
	cmd.Flags().StringVar(&f.mafftOptions, "mafft-options", "",
		"extra options copied verbatim to the MAFFT command line")
	cmd.Flags().StringVarP(&f.format, "format", "f", "json",
		"output format: json or fasta")
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"output file, STDOUT when omitted")
}

// applyTaskFlags folds explicitly set penalty flags into the
// configuration. A set flag wins over the config file and environment
// even when its value is zero; the zero value of an unset flag keeps
// the configured penalty.
func applyTaskFlags(cmd *cobra.Command, flags taskFlags) {
	var opts []config.Option
	if cmd.Flags().Changed("gap-open") {
		opts = append(opts, config.OptMafftGapOpen(flags.gapOpen))
	}
	if cmd.Flags().Changed("gap-extend") {
		opts = append(opts, config.OptMafftGapExtend(flags.gapExtend))
	}
	cfg.Update(opts)
}

// output is the JSON envelope of the align and realign commands.
type output struct {
	Alignment      []helmalign.AlignedPeptide `json:"Alignment"`
	AlignmentScore map[string]*float64        `json:"AlignmentScore"`
}

// readInput reads the whole input from a file, or from STDIN when path
// is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		bs, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", iofs.ReadFileError("STDIN", err)
		}
		return string(bs), nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", iofs.ReadFileError(path, err)
	}
	return string(bs), nil
}

// parsePeptides interprets input text either as a JSON array of
// records or as raw HELM strings, one per line.
func parsePeptides(text string) ([]helmalign.Peptide, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		var res []helmalign.Peptide
		if err := json.Unmarshal([]byte(trimmed), &res); err != nil {
			return nil, inputError(err)
		}
		return res, nil
	}

	var res []helmalign.Peptide
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res = append(res, helmalign.Peptide{HELM: line})
	}
	return res, nil
}

// writeOutput renders the result envelope as JSON or extended FASTA
// and writes it to a file or STDOUT.
func writeOutput(out output, format, path string) error {
	var text string
	switch format {
	case "fasta":
		var b strings.Builder
		for _, rec := range out.Alignment {
			b.WriteString("> " + rec.PolymerID + "\n")
			b.WriteString(rec.AlignedSeq + "\n")
		}
		text = b.String()
	default:
		enc := gnfmt.GNjson{Pretty: true}
		bs, err := enc.Encode(out)
		if err != nil {
			return err
		}
		text = string(bs) + "\n"
	}

	if path == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return iofs.CopyFileError(path, err)
	}
	return nil
}
