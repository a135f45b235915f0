package ioalign

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func WriteInputError(path string, err error) error {
	msg := "Cannot write aligner input file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write input file: %w",
			fn, err),
	}
}

func ReadMatrixError(path string, err error) error {
	msg := "Cannot read substitution matrix <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read matrix: %w",
			fn, err),
	}
}
