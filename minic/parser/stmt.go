package parser

import (
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	if p.panicMode {
		return nil
	}

	switch p.cur().Type {
	case token.INT:
		return p.parseDecl()
	case token.IDENT:
		return p.parseAssignment()
	case token.IF:
		return p.parseIf()
	}

	p.unexpected("statement")
	return nil
}

func (p *Parser) parseAssignment() *ast.Assignment {
	name := p.consume() // Identifier is guaranteed
	p.useVariable(name)

	p.expect(token.ASSIGN)
	expr := p.parseExpr()
	p.expect(token.SEMI)

	if p.panicMode {
		return nil
	}

	return &ast.Assignment{
		Name: name,
		E:    expr,
	}
}

func (p *Parser) parseIf() *ast.IfEquals {
	ifTok := p.consume() // If keyword is guaranteed

	p.expect(token.LPAREN)
	left := p.parseExpr()
	p.expect(token.EQ_EQ)
	right := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseBlock()

	if p.panicMode {
		return nil
	}

	return &ast.IfEquals{
		If:    ifTok,
		Left:  left,
		Right: right,
		Body:  body,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.expect(token.LBRACE)
	stmts := []ast.Stmt{}

	for !p.eofOrPanic() && !p.match(token.RBRACE) {
		s := p.parseStmt()
		stmts = append(stmts, s)
	}

	rbrace := p.expect(token.RBRACE)
	if p.panicMode {
		return nil
	}

	return &ast.Block{
		LBrace: lbrace,
		Stmts:  stmts,
		RBrace: rbrace,
	}
}

// Checks that the variable is declared before use.
func (p *Parser) useVariable(name token.Token) {
	if _, ok := p.symbols.Lookup(name.Lexeme); !ok {
		p.semantic(&UndeclaredVariableError{
			Name:     name.Lexeme,
			Position: name.Pos,
		})
	}
}
