package fasta

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func HeaderError(text string) error {
	msg := "FASTA input does not begin with a '>' header line"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FastaHeaderError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no header in %q", fn, firstLine(text)),
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

func firstLine(s string) string {
	if len(s) > 60 {
		s = s[:60]
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
