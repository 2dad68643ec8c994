package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jesperkha/minic/config"
	"github.com/jesperkha/minic/minic"
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/parser"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/vm"
)

const replHelp = `Enter statements to add them to the program. Commands:
  :run    execute the program and print all variables
  :ast    print the program source
  :asm    print all instructions
  :reset  clear the program
  :help   show this message
`

func runREPL(cfg config.Config, logger *slog.Logger) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".minic_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	s := newSession(cfg, logger)
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}

		out, more := s.eval(line)
		fmt.Print(out)

		if more {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt("> ")
		}
	}
}

// A session holds the program entered so far. Each accepted line recompiles
// the whole program and shows the instructions it added.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	src     string
	pending string // Incomplete input waiting for more lines
	prog    *ir.IR
}

func newSession(cfg config.Config, logger *slog.Logger) *session {
	return &session{
		cfg:    cfg,
		logger: logger,
	}
}

// eval handles one line of input. Returns the text to print and whether the
// input is incomplete and more lines are expected.
func (s *session) eval(line string) (string, bool) {
	if s.pending == "" {
		switch strings.TrimSpace(line) {
		case "":
			return "", false
		case ":help":
			return replHelp, false
		case ":reset":
			s.src, s.prog = "", nil
			return "", false
		case ":ast":
			return s.printAst(), false
		case ":asm":
			if s.prog == nil {
				return "", false
			}
			return ir.IrFmt(s.prog.Instructions), false
		case ":run":
			return s.run(), false
		}
	}

	input := s.pending + line + "\n"
	prog, err := minic.GenerateIR(token.NewFile("<repl>", s.src+input),
		minic.WithLogger(s.logger),
		minic.WithLabelPrefix(s.cfg.LabelPrefix),
	)

	var eof *parser.UnexpectedEOFError
	if errors.As(err, &eof) {
		s.pending = input
		return "", true
	}

	s.pending = ""
	if err != nil {
		return minic.FormatError(err), false
	}

	prev := 0
	if s.prog != nil {
		prev = len(s.prog.Instructions)
	}

	s.src += input
	s.prog = prog
	return ir.IrFmt(prog.Instructions[prev:]), false
}

func (s *session) printAst() string {
	tree, _, err := minic.ParseFile(token.NewFile("<repl>", s.src))
	if err != nil {
		return minic.FormatError(err)
	}
	return ast.NewDebugVisitor(tree).String()
}

func (s *session) run() string {
	if s.prog == nil {
		return ""
	}

	m, err := vm.New(s.prog.Instructions)
	if err != nil {
		return fmt.Sprintf("error: %s\n", err)
	}
	if s.cfg.MaxSteps > 0 {
		m.MaxSteps = s.cfg.MaxSteps
	}

	if err := m.Run(); err != nil {
		return fmt.Sprintf("error: %s\n", err)
	}

	sb := strings.Builder{}
	for _, sym := range s.prog.Table.Symbols() {
		fmt.Fprintf(&sb, "%s = %d\n", sym.Name, m.Vars[sym.Name])
	}
	return sb.String()
}
