package minic

import (
	"errors"
	"fmt"

	"github.com/jesperkha/minic/minic/parser"
	"github.com/jesperkha/minic/minic/util"
)

// FormatError renders a compile error with the offending source line and a
// caret under the token. Errors without a source position are returned as is.
func FormatError(err error) string {
	var perr parser.Error
	if !errors.As(err, &perr) {
		return fmt.Sprintf("error: %s\n", err)
	}

	pos := perr.Pos()
	line := ""
	if pos.File != nil {
		line = pos.File.Line(pos.Row)
	}

	msg := fmt.Sprintf("%s: %s", pos, perr.Message())
	return util.Pretty(pos.Row+1, line, msg, pos.Col, pos.Col+perr.Len())
}
