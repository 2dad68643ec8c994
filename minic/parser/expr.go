package parser

import (
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
)

// Expr := Term (("+"|"-") Term)*
func (p *Parser) parseExpr() ast.Expr {
	if p.panicMode {
		return nil
	}

	left := p.parseTerm()

	for !p.panicMode && p.matchMany(token.PLUS, token.MINUS) {
		op := p.consume()
		right := p.parseTerm()

		left = &ast.BinaryOp{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}

	return left
}

// Term := Number | Identifier
func (p *Parser) parseTerm() ast.Expr {
	if p.panicMode {
		return nil
	}

	switch p.cur().Type {
	case token.NUMBER:
		t := p.consume()
		return &ast.Number{
			T:     t,
			Value: t.Lexeme,
		}

	case token.IDENT:
		t := p.consume()
		p.useVariable(t)
		return &ast.Variable{
			T:    t,
			Name: t.Lexeme,
		}
	}

	p.unexpected("expression")
	return nil
}
