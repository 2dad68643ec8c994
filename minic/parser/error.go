package parser

import (
	"fmt"

	"github.com/jesperkha/minic/minic/token"
)

// Error is implemented by every error returned from the parser. Syntax
// errors are UnexpectedTokenError and UnexpectedEOFError, semantic errors
// are UndeclaredVariableError and DuplicateDeclarationError.
type Error interface {
	error

	Pos() token.Pos  // Position of the offending token
	Len() int        // Character length of the offending token
	Message() string // Error message without position prefix
}

type UnexpectedTokenError struct {
	Expected string // Description of what the grammar required
	Found    token.Token
}

type UnexpectedEOFError struct {
	Expected string
	Position token.Pos
}

type UndeclaredVariableError struct {
	Name     string
	Position token.Pos
}

type DuplicateDeclarationError struct {
	Name     string
	Position token.Pos
	Previous token.Pos // Position of the first declaration
}

func (e *UnexpectedTokenError) Message() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found.Describe())
}

func (e *UnexpectedEOFError) Message() string {
	return fmt.Sprintf("unexpected end of file, expected %s", e.Expected)
}

func (e *UndeclaredVariableError) Message() string {
	return fmt.Sprintf("undeclared variable '%s'", e.Name)
}

func (e *DuplicateDeclarationError) Message() string {
	return fmt.Sprintf("'%s' is already declared at %d:%d", e.Name, e.Previous.Row+1, e.Previous.Col+1)
}

func (e *UnexpectedTokenError) Pos() token.Pos      { return e.Found.Pos }
func (e *UnexpectedEOFError) Pos() token.Pos        { return e.Position }
func (e *UndeclaredVariableError) Pos() token.Pos   { return e.Position }
func (e *DuplicateDeclarationError) Pos() token.Pos { return e.Position }

func (e *UnexpectedTokenError) Len() int      { return e.Found.Length }
func (e *UnexpectedEOFError) Len() int        { return 1 }
func (e *UndeclaredVariableError) Len() int   { return len(e.Name) }
func (e *DuplicateDeclarationError) Len() int { return len(e.Name) }

func (e *UnexpectedTokenError) Error() string      { return format(e) }
func (e *UnexpectedEOFError) Error() string        { return format(e) }
func (e *UndeclaredVariableError) Error() string   { return format(e) }
func (e *DuplicateDeclarationError) Error() string { return format(e) }

func format(e Error) string {
	return fmt.Sprintf("%s: %s", e.Pos(), e.Message())
}
