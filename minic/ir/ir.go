package ir

import "github.com/jesperkha/minic/minic/types"

type OpCode int

const (
	NOP OpCode = iota

	MOV   // Dest = Src
	ADD   // Dest = Dest + Src
	SUB   // Dest = Dest - Src
	CMP   // Compare Dest and Src for equality
	JNE   // Jump to Label if the last CMP was not equal
	LABEL // Jump target, does nothing when executed
)

// IR is the result of a compilation. The instruction list is complete and
// must not be modified once returned.
type IR struct {
	Instructions []Instruction
	Table        types.TableReader
}

type Instruction struct {
	Op OpCode

	Dest  Value
	Src   Value
	Label string // Label name for JNE and LABEL
}

type ValueType int

const (
	None ValueType = iota
	Immediate
	Variable
	Accumulator
	Temporary
)

// A Value is an instruction operand.
type Value struct {
	Type ValueType

	Name    string // Variable name
	Integer int64  // Immediate value
	Idx     int    // Temporary index
}

func Imm(n int64) Value {
	return Value{Type: Immediate, Integer: n}
}

func Var(name string) Value {
	return Value{Type: Variable, Name: name}
}

func Acc() Value {
	return Value{Type: Accumulator}
}

func Temp(idx int) Value {
	return Value{Type: Temporary, Idx: idx}
}
