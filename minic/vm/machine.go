package vm

import (
	"errors"
	"fmt"

	"github.com/jesperkha/minic/minic/ir"
)

var (
	ErrUnknownLabel = errors.New("vm: unknown label")
	ErrStepLimit    = errors.New("vm: step limit exceeded")
	ErrBadOperand   = errors.New("vm: bad operand")
	ErrBadOpcode    = errors.New("vm: bad opcode")
)

const DefaultMaxSteps = 1_000_000

// Machine executes a list of instructions. All variables start at zero and
// arithmetic wraps around on overflow.
type Machine struct {
	Vars  map[string]int64
	Acc   int64
	Temps map[int]int64
	Equal bool // Result of the last CMP

	IP       int // Instruction pointer
	Steps    int // Number of executed instructions
	MaxSteps int

	code   []ir.Instruction
	labels map[string]int
}

// New creates a machine for the given code. Returns ErrUnknownLabel if a
// jump targets a label that is never defined.
func New(code []ir.Instruction) (*Machine, error) {
	m := &Machine{
		Vars:     make(map[string]int64),
		Temps:    make(map[int]int64),
		MaxSteps: DefaultMaxSteps,
		code:     code,
		labels:   make(map[string]int),
	}

	for i, ins := range code {
		if ins.Op == ir.LABEL {
			m.labels[ins.Label] = i
		}
	}

	for _, ins := range code {
		if _, ok := m.labels[ins.Label]; ins.Op == ir.JNE && !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLabel, ins.Label)
		}
	}

	return m, nil
}

// Run executes until the end of the code.
func (m *Machine) Run() error {
	for m.IP < len(m.code) {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	if m.Steps >= m.MaxSteps {
		return ErrStepLimit
	}

	ins := m.code[m.IP]
	m.IP++
	m.Steps++

	switch ins.Op {
	case ir.NOP, ir.LABEL:
		return nil

	case ir.MOV:
		v, err := m.load(ins.Src)
		if err != nil {
			return err
		}
		return m.store(ins.Dest, v)

	case ir.ADD, ir.SUB:
		a, err := m.load(ins.Dest)
		if err != nil {
			return err
		}
		b, err := m.load(ins.Src)
		if err != nil {
			return err
		}
		if ins.Op == ir.ADD {
			return m.store(ins.Dest, a+b)
		}
		return m.store(ins.Dest, a-b)

	case ir.CMP:
		a, err := m.load(ins.Dest)
		if err != nil {
			return err
		}
		b, err := m.load(ins.Src)
		if err != nil {
			return err
		}
		m.Equal = a == b
		return nil

	case ir.JNE:
		if !m.Equal {
			m.IP = m.labels[ins.Label]
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrBadOpcode, ins.Op)
}

func (m *Machine) load(v ir.Value) (int64, error) {
	switch v.Type {
	case ir.Immediate:
		return v.Integer, nil
	case ir.Variable:
		return m.Vars[v.Name], nil
	case ir.Accumulator:
		return m.Acc, nil
	case ir.Temporary:
		return m.Temps[v.Idx], nil
	}
	return 0, fmt.Errorf("%w: cannot read %s", ErrBadOperand, v)
}

func (m *Machine) store(v ir.Value, n int64) error {
	switch v.Type {
	case ir.Variable:
		m.Vars[v.Name] = n
	case ir.Accumulator:
		m.Acc = n
	case ir.Temporary:
		m.Temps[v.Idx] = n
	default:
		return fmt.Errorf("%w: cannot write %s", ErrBadOperand, v)
	}
	return nil
}

// Run is a shorthand for creating a machine and running code. The returned
// map holds the final value of every variable that was written to.
func Run(code []ir.Instruction) (map[string]int64, error) {
	m, err := New(code)
	if err != nil {
		return nil, err
	}

	if err := m.Run(); err != nil {
		return m.Vars, err
	}

	return m.Vars, nil
}
