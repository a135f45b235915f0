package symbol

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func CapacityError(capacity int) error {
	msg := "No more symbols left in the candidate alphabet (capacity %d)"
	vars := []any{capacity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SymbolCapacityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: symbol alphabet exhausted at %d",
			fn, capacity),
	}
}

func BracketError(seq string) error {
	msg := "Unbalanced brackets in sequence <em>%s</em>"
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
