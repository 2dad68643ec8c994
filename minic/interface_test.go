package minic

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/parser"
	"github.com/jesperkha/minic/minic/token"
)

func TestTokenize(t *testing.T) {
	toks := Tokenize(token.NewFile("", "a == b"))

	expect := []token.TokenType{token.IDENT, token.EQ_EQ, token.IDENT, token.EOF}
	if len(toks) != len(expect) {
		t.Fatalf("expected %d tokens, got %v", len(expect), toks)
	}
	for i, typ := range expect {
		if toks[i].Type != typ {
			t.Errorf("token %d: expected %s, got %s", i, typ, toks[i].Type)
		}
	}
}

func TestParseFile(t *testing.T) {
	tree, table, err := ParseFile(token.NewFile("", "int a; a = 1;"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Root.Stmts) != 2 {
		t.Errorf("expected 2 statements, got %d", len(tree.Root.Stmts))
	}
	if !table.Declared("a") {
		t.Error("expected a to be declared")
	}
}

func TestGenerateIRFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.mc")
	if err := os.WriteFile(path, []byte("int a;\na = 2 + 3;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := GenerateIR(token.NewFile(path, nil))
	if err != nil {
		t.Fatal(err)
	}

	if n := len(prog.Instructions); n != 3 {
		t.Errorf("expected 3 instructions, got %d:\n%s", n, ir.IrFmt(prog.Instructions))
	}
}

func TestMissingFile(t *testing.T) {
	_, err := GenerateIR(token.NewFile(filepath.Join(t.TempDir(), "missing.mc"), nil))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Compile("int a; a = 1;", WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"scanned file", "parsed file", "generated ir"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("expected log message %q in:\n%s", msg, buf.String())
		}
	}
}

func TestFormatError(t *testing.T) {
	_, err := GenerateIR(token.NewFile("main.mc", "int a;\na = 10; a $ b;"))

	var perr *parser.UnexpectedTokenError
	if !errors.As(err, &perr) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}

	expect := strings.Join([]string{
		"error: main.mc:2:11: expected '=', found illegal '$'",
		"  2 | a = 10; a $ b;",
		"    |           ^",
		"",
	}, "\n")

	if s := FormatError(err); s != expect {
		t.Errorf("expected:\n%s\ngot:\n%s", expect, s)
	}
}

func TestFormatPlainError(t *testing.T) {
	if s := FormatError(errors.New("oops")); s != "error: oops\n" {
		t.Errorf("unexpected output %q", s)
	}
}

// Compiles run on separate goroutines share no state.
func TestConcurrentCompiles(t *testing.T) {
	src := "int a; if (a == 0) { if (a == 0) { a = 1; } } if (a == 1) {}"
	want, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan string)
	for range 8 {
		go func() {
			prog, err := Compile(src)
			if err != nil {
				done <- err.Error()
				return
			}
			done <- ir.IrFmt(prog.Instructions)
		}()
	}

	for range 8 {
		if got := <-done; got != ir.IrFmt(want.Instructions) {
			t.Errorf("expected:\n%s\ngot:\n%s", ir.IrFmt(want.Instructions), got)
		}
	}
}

func TestLint(t *testing.T) {
	warnings, err := Lint(token.NewFile("", "int a; int b; a = 1; if (a == a) { a = 2; }"))
	if err != nil {
		t.Fatal(err)
	}

	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if !strings.Contains(warnings[0].Msg, "always true") || !strings.Contains(warnings[1].Msg, "'b'") {
		t.Errorf("unexpected warnings %v", warnings)
	}

	if _, err := Lint(token.NewFile("", "a = 1;")); err == nil {
		t.Error("expected parse error")
	}
}
