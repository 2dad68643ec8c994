package parser

import (
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/types"
)

type Parser struct {
	file    *token.File
	toks    []token.Token
	pos     int // Current token being looked at
	symbols *types.SymbolTable

	// Parsing stops at the first syntax error. Semantic errors do not stop
	// the parser, only the first one is kept and it is reported if the
	// program is otherwise syntactically valid.
	syntaxErr   Error
	semanticErr Error
	panicMode   bool
}

// New creates a parser for the given tokens. The token list must end with
// an EOF token, as produced by the scanner.
func New(file *token.File, toks []token.Token) *Parser {
	if len(toks) == 0 || !toks[len(toks)-1].Eof {
		toks = append(toks, token.Token{Type: token.EOF, Eof: true})
	}

	return &Parser{
		toks:    toks,
		file:    file,
		symbols: types.NewSymbolTable(),
	}
}

// Parse parses the whole token list as a program. Returns nil if there was
// an error, which is available through Error.
func (p *Parser) Parse() *ast.Ast {
	root := &ast.Block{}

	for !p.eofOrPanic() {
		stmt := p.parseStmt()
		if p.panicMode {
			break
		}
		root.Stmts = append(root.Stmts, stmt)
	}

	if p.Error() != nil {
		return nil
	}

	return &ast.Ast{Root: root}
}

// Error returns the first error encountered. Syntax errors take precedence
// over semantic errors.
func (p *Parser) Error() error {
	if p.syntaxErr != nil {
		return p.syntaxErr
	}
	if p.semanticErr != nil {
		return p.semanticErr
	}
	return nil
}

// Symbols returns the symbol table built while parsing.
func (p *Parser) Symbols() *types.SymbolTable {
	return p.symbols
}

// Parse is a shorthand for creating a parser and parsing toks.
func Parse(file *token.File, toks []token.Token) (*ast.Ast, *types.SymbolTable, error) {
	p := New(file, toks)
	tree := p.Parse()
	return tree, p.Symbols(), p.Error()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) next() {
	if !p.cur().Eof {
		p.pos++
	}
}

// Returns current token and advances.
func (p *Parser) consume() token.Token {
	t := p.cur()
	p.next()
	return t
}

func (p *Parser) match(typ token.TokenType) bool {
	return p.cur().Type == typ
}

func (p *Parser) matchMany(typs ...token.TokenType) bool {
	for _, t := range typs {
		if p.match(t) {
			return true
		}
	}
	return false
}

// Consumes and returns the current token if it is of the given type.
// Otherwise a syntax error is reported and the parser enters panic mode.
func (p *Parser) expect(typ token.TokenType) token.Token {
	if p.panicMode {
		return token.Token{}
	}

	if !p.match(typ) {
		p.unexpected(typ.String())
		return token.Token{}
	}

	return p.consume()
}

func (p *Parser) eofOrPanic() bool {
	return p.cur().Eof || p.panicMode
}

// Reports a syntax error at the current token.
func (p *Parser) unexpected(expected string) {
	if p.panicMode {
		return
	}

	t := p.cur()
	if t.Eof {
		p.syntaxErr = &UnexpectedEOFError{
			Expected: expected,
			Position: t.Pos,
		}
	} else {
		p.syntaxErr = &UnexpectedTokenError{
			Expected: expected,
			Found:    t,
		}
	}

	p.panicMode = true
}

// Records a semantic error, only the first one is kept.
func (p *Parser) semantic(err Error) {
	if p.semanticErr == nil {
		p.semanticErr = err
	}
}
