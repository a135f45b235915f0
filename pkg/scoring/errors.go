package scoring

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/pkg/errcode"
)

func ParseError(line string) error {
	msg := "Cannot parse substitution matrix line <em>%s</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScoreMatrixParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad matrix line %q", fn, line),
	}
}

func PairMissingError(a, b byte) error {
	msg := "No substitution score for symbol pair %#02x, %#02x"
	vars := []any{a, b}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScorePairMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing pair %#02x %#02x", fn, a, b),
	}
}

func LengthError(id string, got, want int) error {
	msg := "Aligned sequence <em>%s</em> has length %d, want %d"
	vars := []any{id, got, want}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScoreLengthError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sequence %s length %d != %d",
			fn, id, got, want),
	}
}
