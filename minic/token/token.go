package token

import "fmt"

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	EndPos Pos    // Position of character immediately after token
	Lexeme string // The token as a string literal, empty for EOF
	Length int    // The character length of the token

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool
}

func (t Token) String() string {
	return fmt.Sprintf("{%s '%s' c:%d r:%d}", t.Type, t.Lexeme, t.Pos.Col, t.Pos.Row)
}

// Describe returns the token as it should appear in an error message.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of file"
	case IDENT, NUMBER, ILLEGAL:
		return fmt.Sprintf("%s '%s'", t.Type, t.Lexeme)
	default:
		return t.Type.String()
	}
}

type Pos struct {
	Col       int   // Column in file
	Row       int   // Row in file, same as line number -1
	Offset    int   // Byte offset in file
	File      *File // File this position refers to
	LineBegin int   // Offset of beginning of line token is on
}

func (p Pos) String() string {
	name := "<input>"
	if p.File != nil && p.File.Name != "" {
		name = p.File.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Row+1, p.Col+1)
}
