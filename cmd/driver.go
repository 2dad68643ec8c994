package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jesperkha/minic/config"
	"github.com/jesperkha/minic/minic"
	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/compile/targets"
	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/util"
	"github.com/jesperkha/minic/minic/vm"
)

var errCompile = errors.New("compilation failed")

type driver struct {
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func (d *driver) options() []minic.Option {
	return []minic.Option{
		minic.WithLogger(d.logger),
		minic.WithLabelPrefix(d.cfg.LabelPrefix),
	}
}

// compileFiles compiles each file in order and keeps going after a failure.
// The returned error joins every failure.
func (d *driver) compileFiles(filenames []string) error {
	if d.cfg.Output != "" && len(filenames) > 1 {
		err := fmt.Errorf("-o cannot be used with %d input files", len(filenames))
		fmt.Fprintf(d.stderr, "error: %s\n", err)
		return err
	}

	var errs util.ErrorList
	for _, name := range filenames {
		if err := d.compileFile(name); err != nil {
			errs.Add(fmt.Errorf("%s: %w", name, err))
		}
	}

	if errs.Len() > 0 {
		d.logger.Debug("compilation finished with errors", "failed", errs.Len(), "files", len(filenames))
	}
	return errs.Error()
}

// compileFile compiles the file and writes the configured output. Compile
// errors are written to stderr and errCompile is returned.
func (d *driver) compileFile(filename string) error {
	file := token.NewFile(filename, nil)
	if file.Err != nil {
		fmt.Fprintf(d.stderr, "error: %s\n", file.Err)
		return file.Err
	}

	return d.compile(file)
}

func (d *driver) compile(file *token.File) error {
	if d.cfg.Emit == "tokens" {
		printTokens(d.stdout, minic.Tokenize(file))
		return nil
	}

	if d.cfg.Emit == "ast" {
		tree, _, err := minic.ParseFile(file, d.options()...)
		if err != nil {
			fmt.Fprint(d.stderr, minic.FormatError(err))
			return errCompile
		}
		fmt.Fprint(d.stdout, ast.NewDebugVisitor(tree).String())
		return nil
	}

	prog, err := minic.GenerateIR(file, d.options()...)
	if err != nil {
		fmt.Fprint(d.stderr, minic.FormatError(err))
		return errCompile
	}

	if warnings, err := minic.Lint(file); err == nil {
		for _, w := range warnings {
			d.logger.Warn(w.Msg, "pos", w.Pos.String())
		}
	}

	if d.cfg.Run {
		return d.run(prog)
	}

	if d.cfg.Output != "" {
		if err := targets.BuildFile(d.cfg.Output, prog); err != nil {
			fmt.Fprintf(d.stderr, "error: %s\n", err)
			return err
		}
		d.logger.Info("wrote listing", "file", d.cfg.Output, "instructions", len(prog.Instructions))
		return nil
	}

	return targets.WriteAsm(d.stdout, prog)
}

// run executes the program and prints each variable in declaration order.
func (d *driver) run(prog *ir.IR) error {
	m, err := vm.New(prog.Instructions)
	if err != nil {
		fmt.Fprintf(d.stderr, "error: %s\n", err)
		return err
	}

	if d.cfg.MaxSteps > 0 {
		m.MaxSteps = d.cfg.MaxSteps
	}

	if err := m.Run(); err != nil {
		fmt.Fprintf(d.stderr, "error: %s\n", err)
		return err
	}

	d.logger.Debug("program finished", "steps", m.Steps)
	for _, sym := range prog.Table.Symbols() {
		fmt.Fprintf(d.stdout, "%s = %d\n", sym.Name, m.Vars[sym.Name])
	}

	return nil
}

func printTokens(w io.Writer, toks []token.Token) {
	for _, t := range toks {
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", t.Pos.Row+1, t.Pos.Col+1, t.Type, t.Lexeme)
	}
}
