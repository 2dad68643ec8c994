package parser

import (
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
)

// Declarations are allowed anywhere a statement is, including if bodies.
// There is only one scope, so a name declared in a body is visible after it.
func (p *Parser) parseDecl() *ast.Declaration {
	intTok := p.consume() // Int keyword which is guaranteed
	name := p.expect(token.IDENT)
	p.expect(token.SEMI)

	if p.panicMode {
		return nil
	}

	if prev, ok := p.symbols.Declare(name.Lexeme, name.Pos); !ok {
		p.semantic(&DuplicateDeclarationError{
			Name:     name.Lexeme,
			Position: name.Pos,
			Previous: prev.Pos,
		})
	}

	return &ast.Declaration{
		Int:  intTok,
		Name: name,
	}
}
