package targets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/types"
)

type asmBuilder struct {
	ins        []ir.Instruction
	table      types.TableReader
	buf        string
	header     string
	lineIndent int
}

// WriteAsm writes the program as a pseudo assembly listing. The header lists
// every declared variable in declaration order.
func WriteAsm(w io.Writer, prog *ir.IR) error {
	b := asmBuilder{
		ins:   prog.Instructions,
		table: prog.Table,
	}

	_, err := io.WriteString(w, b.build())
	return err
}

// BuildFile writes the listing to path, creating parent directories as needed.
func BuildFile(path string, prog *ir.IR) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteAsm(f, prog); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (x *asmBuilder) build() string {
	if x.table != nil {
		for _, sym := range x.table.Symbols() {
			x.writehdr("; var %s", sym.Name)
		}
	}

	x.writeln("start:")
	x.indent()

	for _, ins := range x.ins {
		if ins.Op == ir.LABEL {
			x.unindent()
			x.writeln("%s", ins)
			x.indent()
			continue
		}

		x.writeln("%s", ins)
	}

	x.unindent()
	x.writeln("end:")

	return fmt.Sprintf("%s\n%s", x.header, x.buf)
}

func (x *asmBuilder) writeln(s string, args ...any) {
	x.buf += fmt.Sprintf(strings.Repeat("	", x.lineIndent)+s+"\n", args...)
}

func (x *asmBuilder) writehdr(s string, args ...any) {
	x.header += fmt.Sprintf(s+"\n", args...)
}

func (x *asmBuilder) indent() {
	x.lineIndent++
}

func (x *asmBuilder) unindent() {
	x.lineIndent--
}
