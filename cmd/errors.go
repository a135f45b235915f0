package cmd

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func inputError(err error) error {
	msg := "Cannot parse input records: %v"
	vars := []any{err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaskInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse input: %w", fn, err),
	}
}
