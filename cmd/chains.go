package cmd

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/helm"
	"github.com/spf13/cobra"
)

// getChainsCmd returns the chains command.
func getChainsCmd() *cobra.Command {
	var input string

	chainsCmd := &cobra.Command{
		Use:   "chains",
		Short: "List chain names found in HELM input",
		Long: `List the distinct chain names of the input, in order of first
appearance, with the number of sequences each chain carries.

Examples:
  helmalign chains -i peptides.json
  cat peptides.helm | helmalign chains`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChains(cmd, args, input)
		},
	}

	chainsCmd.Flags().StringVarP(&input, "input", "i", "",
		"input file with HELM strings or JSON records, '-' for STDIN")

	return chainsCmd
}

func runChains(
	_ *cobra.Command,
	_ []string,
	input string,
) error {
	text, err := readInput(input)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	peptides, err := parsePeptides(text)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var lines []string
	for _, p := range peptides {
		lines = append(lines, p.HELM)
	}
	set, err := helm.SplitChains(strings.Join(lines, "\n"), "")
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, name := range set.Names {
		count := len(strings.Split(set.Docs[name], "\n"))
		fmt.Printf("%s\t%d\n", name, count)
	}
	return nil
}
