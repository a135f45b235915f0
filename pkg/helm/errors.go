package helm

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func SectionsError(text string, got int) error {
	msg := "Invalid HELM notation: expected 5 sections, got %d"
	vars := []any{got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotationSectionsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %d sections in %q",
			fn, got, text),
	}
}

func ChainRefError(name string) error {
	msg := "Connection references undeclared chain <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotationChainRefError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: undeclared chain %q", fn, name),
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

func ChainHeaderError(entry string) error {
	msg := "Malformed chain or connection entry <em>%s</em>"
	vars := []any{entry}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotationChainHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: malformed entry %q", fn, entry),
	}
}

func SeparatorError(chain, body string) error {
	msg := "Empty monomer token in chain <em>%s</em>"
	vars := []any{chain}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotationSeparatorError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: empty token in chain %s body %q",
			fn, chain, body),
	}
}
