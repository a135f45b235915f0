package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/internal/iomafft"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/spf13/cobra"
)

// getVersionCmd returns the version command.
func getVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show helmalign and MAFFT versions",
		RunE:  runVersion,
	}
	return versionCmd
}

func runVersion(_ *cobra.Command, _ []string) error {
	gn.Info("version: <em>%s</em>", helmalign.Version)
	gn.Info("build:   <em>%s</em>", helmalign.Build)

	runner := iomafft.New(cfg)
	mafftVer, err := runner.Version(context.Background())
	if err != nil {
		gn.Warn("Cannot detect MAFFT version")
		return nil
	}
	gn.Info("mafft:   <em>%s</em>", mafftVer)
	return nil
}
