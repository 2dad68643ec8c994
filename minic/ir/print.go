package ir

import (
	"fmt"
	"strings"
)

var opNames = map[OpCode]string{
	NOP:   "NOP",
	MOV:   "MOV",
	ADD:   "ADD",
	SUB:   "SUB",
	CMP:   "CMP",
	JNE:   "JNE",
	LABEL: "LABEL",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP(%d)", int(op))
}

func (v Value) String() string {
	switch v.Type {
	case Immediate:
		return fmt.Sprintf("%d", v.Integer)
	case Variable:
		return v.Name
	case Accumulator:
		return "%acc"
	case Temporary:
		return fmt.Sprintf("%%t%d", v.Idx)
	default:
		return "_"
	}
}

// String renders the instruction as a line of pseudo assembly, eg.
// "MOV a, 10", "JNE L0" or "L0:".
func (ins Instruction) String() string {
	switch ins.Op {
	case LABEL:
		return ins.Label + ":"
	case JNE:
		return "JNE " + ins.Label
	case NOP:
		return "NOP"
	default:
		return fmt.Sprintf("%s %s, %s", ins.Op, ins.Dest, ins.Src)
	}
}

// IrFmt renders the instructions one per line. Labels are flush left and all
// other instructions are indented by a tab.
func IrFmt(ir []Instruction) string {
	sb := strings.Builder{}
	for _, ins := range ir {
		if ins.Op != LABEL {
			sb.WriteString("\t")
		}
		sb.WriteString(ins.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func PrintIR(ir []Instruction) {
	fmt.Print(IrFmt(ir))
}
