package ast

import "github.com/jesperkha/minic/minic/token"

type (
	// Ast is a parsed program. The root block holds every top level
	// statement in source order.
	Ast struct {
		Root *Block
	}

	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	// Expressions only ever evaluate to an integer.
	Expr interface {
		Node
		exprNode()
	}

	Stmt interface {
		Node
		stmtNode()
	}
)

func (t *Ast) Walk(v Visitor) {
	if t.Root != nil {
		t.Root.Accept(v)
	}
}

type (
	// Integer literal. The value is kept as the digit text from the source,
	// conversion happens when generating code.
	Number struct {
		T     token.Token
		Value string
	}

	// Reference to a declared variable.
	Variable struct {
		T    token.Token
		Name string
	}

	// Left associative addition or subtraction. Op is either token.PLUS or
	// token.MINUS.
	BinaryOp struct {
		Op    token.Token
		Left  Expr
		Right Expr
	}
)

type (
	// "int name;"
	Declaration struct {
		Int  token.Token
		Name token.Token
	}

	// "name = expr;"
	Assignment struct {
		Name token.Token
		E    Expr
	}

	// "if (left == right) { body }". The body runs only when both operands
	// are equal.
	IfEquals struct {
		If    token.Token
		Left  Expr
		Right Expr
		Body  *Block
	}

	Block struct {
		LBrace token.Token // Zero value for the root block
		Stmts  []Stmt
		RBrace token.Token
	}
)

func (*Number) exprNode()   {}
func (*Variable) exprNode() {}
func (*BinaryOp) exprNode() {}

func (*Declaration) stmtNode() {}
func (*Assignment) stmtNode()  {}
func (*IfEquals) stmtNode()    {}
func (*Block) stmtNode()       {}

func (n *Number) Pos() token.Pos { return n.T.Pos }
func (n *Number) End() token.Pos { return n.T.EndPos }

func (v *Variable) Pos() token.Pos { return v.T.Pos }
func (v *Variable) End() token.Pos { return v.T.EndPos }

func (b *BinaryOp) Pos() token.Pos { return b.Left.Pos() }
func (b *BinaryOp) End() token.Pos { return b.Right.End() }

func (d *Declaration) Pos() token.Pos { return d.Int.Pos }
func (d *Declaration) End() token.Pos { return d.Name.EndPos }

func (a *Assignment) Pos() token.Pos { return a.Name.Pos }
func (a *Assignment) End() token.Pos { return a.E.End() }

func (i *IfEquals) Pos() token.Pos { return i.If.Pos }
func (i *IfEquals) End() token.Pos { return i.Body.End() }

func (b *Block) Pos() token.Pos {
	if len(b.Stmts) > 0 && b.LBrace.Lexeme == "" {
		return b.Stmts[0].Pos()
	}
	return b.LBrace.Pos
}

func (b *Block) End() token.Pos {
	if len(b.Stmts) > 0 && b.RBrace.Lexeme == "" {
		return b.Stmts[len(b.Stmts)-1].End()
	}
	return b.RBrace.EndPos
}
