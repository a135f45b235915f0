package iomatrix

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func MonomerMapError(path string, err error) error {
	msg := "Cannot read monomer map <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MatrixMonomerMapError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read monomer map: %w",
			fn, err),
	}
}

func ReferenceError(path string, err error) error {
	msg := "Cannot read reference substitution table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MatrixReferenceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read reference table: %w",
			fn, err),
	}
}

func RowNotFoundError(name, key string) error {
	msg := "Cannot find the row of <em>%s</em> (key %q) in the reference table"
	vars := []any{name, key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MatrixRowNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no reference row for %s (key %q)",
			fn, name, key),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write substitution matrix <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MatrixWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write matrix: %w",
			fn, err),
	}
}
