package ast

import (
	"fmt"
	"strings"
)

// DebugVisitor prints the AST identically to its source, with ideal formatting.
// Used for testing the parser (by comparing AST to string) and for debugging.
type DebugVisitor struct {
	sb          *strings.Builder
	indentLevel int
	tree        *Ast
	indented    bool
}

func NewDebugVisitor(tree *Ast) *DebugVisitor {
	return &DebugVisitor{
		sb:          &strings.Builder{},
		tree:        tree,
		indentLevel: 0,
	}
}

func (d *DebugVisitor) Print() {
	fmt.Print(d.String())
}

// String walks the tree and returns the printed source. Subsequent calls
// return the same output.
func (d *DebugVisitor) String() string {
	if d.sb.Len() == 0 {
		d.tree.Walk(d)
	}
	return d.sb.String()
}

func (d *DebugVisitor) write(f string, args ...any) {
	if d.indentLevel != 0 && !d.indented {
		s := strings.Repeat("    ", d.indentLevel) + fmt.Sprintf(f, args...)
		d.sb.WriteString(s)
		d.indented = true
	} else {
		fmt.Fprintf(d.sb, f, args...)
	}
}

func (d *DebugVisitor) writeln(f string, args ...any) {
	d.write(f+"\n", args...)
	d.indented = false
}

func (d *DebugVisitor) indent(n Node) {
	d.indentLevel++
	n.Accept(d)
	d.indentLevel--
}

// The root block has no braces and is printed without indentation.
func (d *DebugVisitor) VisitBlock(node *Block) {
	if node == d.tree.Root {
		for _, stmt := range node.Stmts {
			stmt.Accept(d)
		}
		return
	}

	d.writeln("{")
	for _, stmt := range node.Stmts {
		d.indent(stmt)
	}
	d.writeln("}")
}

func (d *DebugVisitor) VisitDeclaration(node *Declaration) {
	d.writeln("int %s;", node.Name.Lexeme)
}

func (d *DebugVisitor) VisitAssignment(node *Assignment) {
	d.write("%s = ", node.Name.Lexeme)
	node.E.Accept(d)
	d.writeln(";")
}

func (d *DebugVisitor) VisitIfEquals(node *IfEquals) {
	d.write("if (")
	node.Left.Accept(d)
	d.write(" == ")
	node.Right.Accept(d)
	d.write(") ")

	// The closing brace must line up with the if keyword.
	d.indented = true
	d.VisitBlock(node.Body)
}

func (d *DebugVisitor) VisitNumber(node *Number) {
	d.write("%s", node.Value)
}

func (d *DebugVisitor) VisitVariable(node *Variable) {
	d.write("%s", node.Name)
}

func (d *DebugVisitor) VisitBinaryOp(node *BinaryOp) {
	node.Left.Accept(d)
	d.write(" %s ", node.Op.Lexeme)
	node.Right.Accept(d)
}
