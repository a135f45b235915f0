package report

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func bracketError(seq string) error {
	msg := "Unbalanced brackets in aligned sequence <em>%s</em>"
	vars := []any{seq}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotationBracketError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unbalanced brackets in %q", fn, seq),
	}
}
