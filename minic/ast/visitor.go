package ast

type Visitor interface {
	VisitBlock(node *Block)
	VisitDeclaration(node *Declaration)
	VisitAssignment(node *Assignment)
	VisitIfEquals(node *IfEquals)
	VisitNumber(node *Number)
	VisitVariable(node *Variable)
	VisitBinaryOp(node *BinaryOp)
}

func (n *Block) Accept(v Visitor)       { v.VisitBlock(n) }
func (n *Declaration) Accept(v Visitor) { v.VisitDeclaration(n) }
func (n *Assignment) Accept(v Visitor)  { v.VisitAssignment(n) }
func (n *IfEquals) Accept(v Visitor)    { v.VisitIfEquals(n) }
func (n *Number) Accept(v Visitor)      { v.VisitNumber(n) }
func (n *Variable) Accept(v Visitor)    { v.VisitVariable(n) }
func (n *BinaryOp) Accept(v Visitor)    { v.VisitBinaryOp(n) }
