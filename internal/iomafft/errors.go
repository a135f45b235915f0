package iomafft

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func NotFoundError(bin string, err error) error {
	msg := "Cannot find MAFFT executable <em>%s</em>"
	vars := []any{bin}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MafftNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot find executable: %w",
			fn, err),
	}
}

func ExecError(bin, stderr string, err error) error {
	msg := "MAFFT run <em>%s</em> failed: %s"
	vars := []any{bin, stderr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MafftExecError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: mafft failed: %w: %s",
			fn, err, stderr),
	}
}
