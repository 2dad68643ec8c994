package types

import (
	"fmt"

	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/util"
)

// A Warning is reported for code that is valid but most likely a mistake.
type Warning struct {
	Pos token.Pos
	Msg string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Pos, w.Msg)
}

// Checker implements the Visitor interface to lint a parsed program. All
// errors are caught by the parser, the checker only produces warnings.
type Checker struct {
	tree     *ast.Ast
	table    TableReader
	assigned map[string]bool
	warnings []Warning
}

func NewChecker(tree *ast.Ast, table TableReader) *Checker {
	return &Checker{
		tree:     tree,
		table:    table,
		assigned: make(map[string]bool),
	}
}

// Check walks the tree and returns all warnings in source order, followed
// by warnings for variables that are never used.
func (c *Checker) Check() []Warning {
	util.Assert(c.tree != nil, "tree is nil")

	c.tree.Walk(c)

	for _, sym := range c.table.Symbols() {
		if sym.RefCount == 0 {
			c.warn(sym.Pos, "'%s' is declared but never used", sym.Name)
		} else if !c.assigned[sym.Name] {
			c.warn(sym.Pos, "'%s' is never assigned and is always 0", sym.Name)
		}
	}

	return c.warnings
}

func (c *Checker) warn(pos token.Pos, format string, args ...any) {
	c.warnings = append(c.warnings, Warning{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	})
}

func (c *Checker) VisitBlock(node *ast.Block) {
	for _, stmt := range node.Stmts {
		stmt.Accept(c)
	}
}

func (c *Checker) VisitDeclaration(node *ast.Declaration) {}

func (c *Checker) VisitAssignment(node *ast.Assignment) {
	c.assigned[node.Name.Lexeme] = true

	if v, ok := node.E.(*ast.Variable); ok && v.Name == node.Name.Lexeme {
		c.warn(node.Pos(), "self assignment of '%s'", v.Name)
	}
}

func (c *Checker) VisitIfEquals(node *ast.IfEquals) {
	if isConstant(node.Left) && isConstant(node.Right) {
		c.warn(node.Pos(), "condition is constant")
	}

	l, lok := node.Left.(*ast.Variable)
	r, rok := node.Right.(*ast.Variable)
	if lok && rok && l.Name == r.Name {
		c.warn(node.Pos(), "condition is always true")
	}

	if len(node.Body.Stmts) == 0 {
		c.warn(node.Pos(), "empty if body")
	}

	node.Body.Accept(c)
}

func (c *Checker) VisitNumber(node *ast.Number)     {}
func (c *Checker) VisitVariable(node *ast.Variable) {}
func (c *Checker) VisitBinaryOp(node *ast.BinaryOp) {}

func isConstant(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Number:
		return true
	case *ast.BinaryOp:
		return isConstant(e.Left) && isConstant(e.Right)
	}
	return false
}
