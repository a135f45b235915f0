// Package iomafft invokes the MAFFT text-mode aligner as an external
// process.
package iomafft

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pepsar/helmalign/pkg/config"
	"github.com/pepsar/helmalign/pkg/helmalign"
)

type runner struct {
	cfg *config.Config
}

// New returns a Runner that resolves MAFFT entry points in the
// configured directory, or via PATH when no directory is set.
func New(cfg *config.Config) helmalign.Runner {
	return &runner{cfg: cfg}
}

// Run executes one MAFFT invocation. The command runs inside the work
// directory so the matrix and input files are passed by name; MAFFT
// resolves --textmatrix relative to its working directory.
func (r *runner) Run(
	ctx context.Context,
	p helmalign.RunParams,
) (string, string, error) {
	bin := r.binary(p.Method)
	args := buildArgs(p)
	// "auto" is a mode of the main entry point, not a binary.
	if p.Method == "auto" {
		bin = r.binary("mafft")
		args = append([]string{"--auto"}, args...)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = p.WorkDir
	// A UTF-8 locale makes MAFFT reject bytes over 0x79 with
	// "tr: Illegal byte sequence".
	cmd.Env = append(cmd.Environ(), "LC_CTYPE=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", NotFoundError(bin, err)
		}
		return "", stderr.String(), ExecError(bin, stderr.String(), err)
	}
	return stdout.String(), stderr.String(), nil
}

// Version reports the version string MAFFT prints on --version.
func (r *runner) Version(ctx context.Context) (string, error) {
	bin := r.binary("mafft")
	cmd := exec.CommandContext(ctx, bin, "--version")

	// MAFFT prints its version on stderr.
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", NotFoundError(bin, err)
		}
		return "", ExecError(bin, out.String(), err)
	}
	return strings.TrimSpace(out.String()), nil
}

// binary resolves the executable of one alignment method. Each method
// is a separate entry point of the MAFFT distribution.
func (r *runner) binary(method string) string {
	if method == "" {
		method = r.cfg.Mafft.Method
	}
	if r.cfg.Mafft.Dir == "" {
		return method
	}
	return filepath.Join(r.cfg.Mafft.Dir, method)
}

// buildArgs assembles the MAFFT command line for one invocation.
func buildArgs(p helmalign.RunParams) []string {
	args := []string{
		"--textmatrix", filepath.Base(p.MatrixFile),
		"--op", fmt.Sprintf("%g", p.GapOpen),
		"--ep", fmt.Sprintf("%g", p.GapExtend),
	}
	if p.Options != "" {
		args = append(args, strings.Fields(p.Options)...)
	}
	args = append(args, "--text")
	if p.AlignedFile != "" {
		args = append(args, "--"+p.RealignMethod, p.AlignedFile, p.InputFile)
	} else {
		args = append(args, p.InputFile)
	}
	return args
}
