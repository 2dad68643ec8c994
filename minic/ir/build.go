package ir

import (
	"fmt"

	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/types"
	"github.com/jesperkha/minic/minic/util"
)

const DefaultLabelPrefix = "L"

// Builder implements the Visitor interface. One builder is used for a single
// compilation, the label and temporary counters are never shared.
type Builder struct {
	tree        *ast.Ast
	table       types.TableReader
	ir          []Instruction
	labelPrefix string
	labels      int
	temps       int
	dest        Value // Where the expression being visited is stored
}

// NewBuilder creates a builder for a tree that has passed the parser. The
// table must be the symbol table produced when parsing the tree.
func NewBuilder(tree *ast.Ast, table types.TableReader) *Builder {
	return &Builder{
		tree:        tree,
		table:       table,
		labelPrefix: DefaultLabelPrefix,
	}
}

// SetLabelPrefix sets the prefix for generated labels. Labels are named
// prefix followed by a counter starting at 0.
func (b *Builder) SetLabelPrefix(prefix string) {
	if prefix != "" {
		b.labelPrefix = prefix
	}
}

// Build walks the tree and returns the generated instructions. Build never
// fails for a tree accepted by the parser, an inconsistent tree panics.
func (b *Builder) Build() *IR {
	util.Assert(b.tree != nil, "tree is nil")
	util.Assert(b.table != nil, "symbol table is nil")

	b.tree.Walk(b)
	return &IR{
		Instructions: b.ir,
		Table:        b.table,
	}
}

func (b *Builder) emit(ins Instruction) {
	b.ir = append(b.ir, ins)
}

func (b *Builder) emitOp(op OpCode, dest Value, src Value) {
	b.emit(Instruction{Op: op, Dest: dest, Src: src})
}

// Get next unique label
func (b *Builder) label() string {
	name := fmt.Sprintf("%s%d", b.labelPrefix, b.labels)
	b.labels++
	return name
}

// Get next available temporary
func (b *Builder) temp() Value {
	t := Temp(b.temps)
	b.temps++
	return t
}

// Evaluates the expression into dest.
func (b *Builder) evalInto(dest Value, e ast.Expr) {
	prev := b.dest
	b.dest = dest
	e.Accept(b)
	b.dest = prev
}

// Returns the expression as an operand. Numbers and variables are used
// directly, anything else is evaluated into a new temporary first.
func (b *Builder) operand(e ast.Expr) Value {
	switch e := e.(type) {
	case *ast.Number:
		return Imm(parseInt(e.Value))

	case *ast.Variable:
		b.checkDeclared(e.Name)
		return Var(e.Name)
	}

	t := b.temp()
	b.evalInto(t, e)
	return t
}

func (b *Builder) checkDeclared(name string) {
	util.Assert(b.table.Declared(name), "undeclared variable '%s' after parsing", name)
}

func (b *Builder) VisitBlock(node *ast.Block) {
	for _, stmt := range node.Stmts {
		stmt.Accept(b)
	}
}

// Storage is implicit, the variable name is used directly as an operand.
func (b *Builder) VisitDeclaration(node *ast.Declaration) {
	b.checkDeclared(node.Name.Lexeme)
}

func (b *Builder) VisitAssignment(node *ast.Assignment) {
	name := node.Name.Lexeme
	b.checkDeclared(name)

	if _, ok := node.E.(*ast.BinaryOp); !ok {
		b.emitOp(MOV, Var(name), b.operand(node.E))
		return
	}

	b.evalInto(Acc(), node.E)
	b.emitOp(MOV, Var(name), Acc())
}

// CMP left, right
// JNE end
// ... body
// end:
func (b *Builder) VisitIfEquals(node *ast.IfEquals) {
	left := b.operand(node.Left)
	right := b.operand(node.Right)
	end := b.label()

	b.emitOp(CMP, left, right)
	b.emit(Instruction{Op: JNE, Label: end})
	node.Body.Accept(b)
	b.emit(Instruction{Op: LABEL, Label: end})
}

func (b *Builder) VisitNumber(node *ast.Number) {
	b.emitOp(MOV, b.dest, Imm(parseInt(node.Value)))
}

func (b *Builder) VisitVariable(node *ast.Variable) {
	b.checkDeclared(node.Name)
	b.emitOp(MOV, b.dest, Var(node.Name))
}

func (b *Builder) VisitBinaryOp(node *ast.BinaryOp) {
	var op OpCode
	switch node.Op.Type {
	case token.PLUS:
		op = ADD
	case token.MINUS:
		op = SUB
	default:
		util.Assert(false, "invalid binary operator '%s'", node.Op.Lexeme)
	}

	// A nested right hand side is only possible in a hand built tree. It is
	// evaluated into a temporary so dest is never overwritten.
	dest := b.dest
	b.evalInto(dest, node.Left)
	right := b.operand(node.Right)

	b.emitOp(op, dest, right)
}

// Converts the digit text of a number literal. Values outside the int64
// range wrap around using two's complement, the same as int64 arithmetic.
func parseInt(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		util.Assert(c >= '0' && c <= '9', "invalid integer literal '%s'", s)
		n = n*10 + int64(c-'0')
	}

	return n
}
