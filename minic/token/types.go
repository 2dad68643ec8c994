package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	NUMBER
	IDENT

	INT
	IF

	ASSIGN
	PLUS
	MINUS
	SEMI
	EQ_EQ
	LPAREN
	RPAREN
	LBRACE
	RBRACE
)

var Keywords = map[string]TokenType{
	"int": INT,
	"if":  IF,
}

var SingleSymbols = map[string]TokenType{
	"=": ASSIGN,
	"+": PLUS,
	"-": MINUS,
	";": SEMI,
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
}

var DoubleSymbols = map[string]TokenType{
	"==": EQ_EQ,
}

var typeNames = [...]string{
	ILLEGAL: "illegal",
	EOF:     "end of file",
	NUMBER:  "number",
	IDENT:   "identifier",
	INT:     "'int'",
	IF:      "'if'",
	ASSIGN:  "'='",
	PLUS:    "'+'",
	MINUS:   "'-'",
	SEMI:    "';'",
	EQ_EQ:   "'=='",
	LPAREN:  "'('",
	RPAREN:  "')'",
	LBRACE:  "'{'",
	RBRACE:  "'}'",
}

// String returns a human readable name for the type, as used in error
// messages. Eg. "identifier" or "';'".
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}
