package ir_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jesperkha/minic/minic"
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/parser"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/types"
)

func irFrom(t *testing.T, src string, opts ...minic.Option) []ir.Instruction {
	t.Helper()

	prog, err := minic.Compile(src, opts...)
	if err != nil {
		t.Fatal(err)
	}

	return prog.Instructions
}

func irCompare(t *testing.T, ins []ir.Instruction, s string) {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(ir.IrFmt(ins)), "\n")
	slines := strings.Split(strings.TrimSpace(s), "\n")

	if len(ins) == 0 {
		lines = nil
	}
	if strings.TrimSpace(s) == "" {
		slines = nil
	}

	if len(lines) != len(slines) {
		t.Fatalf("expected %d instructions, got %d:\n%s", len(slines), len(lines), ir.IrFmt(ins))
	}

	for i := range lines {
		if a, b := strings.TrimSpace(lines[i]), strings.TrimSpace(slines[i]); a != b {
			t.Errorf("instruction %d: expected %q, got %q", i, b, a)
		}
	}
}

// Every JNE must jump forward to exactly one label.
func assertLabelsResolve(t *testing.T, ins []ir.Instruction) {
	t.Helper()

	defined := map[string]int{}
	for i, in := range ins {
		if in.Op == ir.LABEL {
			if _, ok := defined[in.Label]; ok {
				t.Errorf("label %s defined twice", in.Label)
			}
			defined[in.Label] = i
		}
	}

	for i, in := range ins {
		if in.Op != ir.JNE {
			continue
		}
		at, ok := defined[in.Label]
		if !ok {
			t.Errorf("unresolved label %s", in.Label)
		} else if at <= i {
			t.Errorf("label %s is not after its jump", in.Label)
		}
	}
}

func TestExample(t *testing.T) {
	ins := irFrom(t, "int a; a = 10; if (a == 10) { a = a + 1; }")

	irCompare(t, ins, `
		MOV a, 10
		CMP a, 10
		JNE L0
		MOV %acc, a
		ADD %acc, 1
		MOV a, %acc
		L0:
	`)

	assertLabelsResolve(t, ins)
}

func TestDeclarationEmitsNothing(t *testing.T) {
	irCompare(t, irFrom(t, "int a; int b;"), "")
}

func TestSimpleAssignment(t *testing.T) {
	ins := irFrom(t, "int a; int b; a = 5; b = a;")

	irCompare(t, ins, `
		MOV a, 5
		MOV b, a
	`)

	if ins[0].Dest != ir.Var("a") || ins[0].Src != ir.Imm(5) {
		t.Errorf("unexpected operands for %s", ins[0])
	}
}

func TestChainedArithmetic(t *testing.T) {
	irCompare(t, irFrom(t, "int a; int b; a = 1 - b + 3;"), `
		MOV %acc, 1
		SUB %acc, b
		ADD %acc, 3
		MOV a, %acc
	`)
}

func TestSelfReference(t *testing.T) {
	irCompare(t, irFrom(t, "int a; int b; a = b - a;"), `
		MOV %acc, b
		SUB %acc, a
		MOV a, %acc
	`)
}

func TestIfWithExpressions(t *testing.T) {
	irCompare(t, irFrom(t, "int a; int b; if (a + 1 == b - 2) { b = 0; }"), `
		MOV %t0, a
		ADD %t0, 1
		MOV %t1, b
		SUB %t1, 2
		CMP %t0, %t1
		JNE L0
		MOV b, 0
		L0:
	`)
}

func TestNestedIf(t *testing.T) {
	ins := irFrom(t, `
		int a;
		if (a == 0) {
			a = 1;
			if (a == 1) {
				a = 2;
			}
			a = 3;
		}
		if (a == 3) {}
	`)

	irCompare(t, ins, `
		CMP a, 0
		JNE L0
		MOV a, 1
		CMP a, 1
		JNE L1
		MOV a, 2
		L1:
		MOV a, 3
		L0:
		CMP a, 3
		JNE L2
		L2:
	`)

	assertLabelsResolve(t, ins)
}

func TestLabelUniqueness(t *testing.T) {
	cases := []struct {
		src string
		n   int
	}{
		{"int a;", 0},
		{"int a; if (a == 1) {}", 1},
		{"int a; if (a == 1) {} if (a == 1) {} if (a == 1) {}", 3},
		{"int a; if (a == 1) { if (a == 1) { if (a == 1) { if (a == 1) {} } } }", 4},
		{"int a; if (a == 1) { if (a == 1) {} if (a == 1) {} } if (a == 1) { if (a == 1) {} }", 5},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			ins := irFrom(t, c.src)
			assertLabelsResolve(t, ins)

			labels := map[string]bool{}
			for _, in := range ins {
				if in.Op == ir.LABEL {
					labels[in.Label] = true
				}
			}

			if len(labels) != c.n {
				t.Errorf("expected %d distinct labels, got %d", c.n, len(labels))
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	src := "int a; int b; a = 1; if (a == 1) { b = a + 2; if (b == 3) { a = 0; } }"
	first := irFrom(t, src)
	second := irFrom(t, src)

	if ir.IrFmt(first) != ir.IrFmt(second) {
		t.Errorf("expected identical output, got:\n%s\nand:\n%s", ir.IrFmt(first), ir.IrFmt(second))
	}
}

func TestLabelPrefix(t *testing.T) {
	irCompare(t, irFrom(t, "int a; if (a == 1) {}", minic.WithLabelPrefix("end")), `
		CMP a, 1
		JNE end0
		end0:
	`)
}

func TestLiteralWraparound(t *testing.T) {
	ins := irFrom(t, "int a; a = 9223372036854775808; a = 18446744073709551617;")

	if v := ins[0].Src.Integer; v != -9223372036854775808 {
		t.Errorf("expected min int64, got %d", v)
	}
	if v := ins[1].Src.Integer; v != 1 {
		t.Errorf("expected wraparound to 1, got %d", v)
	}
}

func TestCompileError(t *testing.T) {
	prog, err := minic.Compile("int a; a = b;")
	if prog != nil {
		t.Error("expected nil program on error")
	}

	var undeclared *parser.UndeclaredVariableError
	if !errors.As(err, &undeclared) {
		t.Errorf("expected UndeclaredVariableError, got %v", err)
	}
}

func ident(name string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: name, Length: len(name)}
}

func op(typ token.TokenType, lexeme string) token.Token {
	return token.Token{Type: typ, Lexeme: lexeme, Length: 1}
}

func TestNestedRightOperand(t *testing.T) {
	table := types.NewSymbolTable()
	table.Declare("a", token.Pos{})
	table.Declare("b", token.Pos{})

	// a = 1 - (b + 2)
	tree := &ast.Ast{Root: &ast.Block{Stmts: []ast.Stmt{
		&ast.Assignment{
			Name: ident("a"),
			E: &ast.BinaryOp{
				Op:   op(token.MINUS, "-"),
				Left: &ast.Number{Value: "1"},
				Right: &ast.BinaryOp{
					Op:    op(token.PLUS, "+"),
					Left:  &ast.Variable{Name: "b"},
					Right: &ast.Number{Value: "2"},
				},
			},
		},
	}}}

	prog := ir.NewBuilder(tree, table).Build()
	irCompare(t, prog.Instructions, `
		MOV %acc, 1
		MOV %t0, b
		ADD %t0, 2
		SUB %acc, %t0
		MOV a, %acc
	`)
}

func TestInconsistentTreePanics(t *testing.T) {
	tree := &ast.Ast{Root: &ast.Block{Stmts: []ast.Stmt{
		&ast.Assignment{Name: ident("a"), E: &ast.Number{Value: "1"}},
	}}}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for undeclared variable")
		}
	}()

	ir.NewBuilder(tree, types.NewSymbolTable()).Build()
}

func TestInstructionString(t *testing.T) {
	cases := map[string]ir.Instruction{
		"MOV a, 10":   {Op: ir.MOV, Dest: ir.Var("a"), Src: ir.Imm(10)},
		"SUB %t2, -3": {Op: ir.SUB, Dest: ir.Temp(2), Src: ir.Imm(-3)},
		"CMP %acc, b": {Op: ir.CMP, Dest: ir.Acc(), Src: ir.Var("b")},
		"JNE L4":      {Op: ir.JNE, Label: "L4"},
		"L4:":         {Op: ir.LABEL, Label: "L4"},
		"NOP":         {Op: ir.NOP},
	}

	for expect, ins := range cases {
		if s := ins.String(); s != expect {
			t.Errorf("expected %q, got %q", expect, s)
		}
	}
}
