package util

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorList struct {
	errs []error
}

func (e *ErrorList) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorList) Errors() []error {
	return e.errs
}

func (e *ErrorList) Len() int {
	return len(e.errs)
}

// Error joins all errors in the list. Returns nil for an empty list.
func (e *ErrorList) Error() error {
	return errors.Join(e.errs...)
}

// Pretty formats msg with the offending source line and a caret pointing
// at columns colStart up to colEnd. Line is the 1-indexed line number.
func Pretty(line int, lineStr string, msg string, colStart int, colEnd int) string {
	length := max(colEnd-colStart, 1)
	colStart = max(colStart, 0)

	s := ""
	s += fmt.Sprintf("error: %s\n", msg)
	s += fmt.Sprintf("%3d | %s\n", line, lineStr)
	s += fmt.Sprintf("    | %s%s\n", strings.Repeat(" ", colStart), strings.Repeat("^", length))
	return s
}
