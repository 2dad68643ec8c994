package minic

import (
	"log/slog"

	"github.com/jesperkha/minic/minic/ast"
	"github.com/jesperkha/minic/minic/ir"
	"github.com/jesperkha/minic/minic/parser"
	"github.com/jesperkha/minic/minic/scanner"
	"github.com/jesperkha/minic/minic/token"
	"github.com/jesperkha/minic/minic/types"
)

type Option func(*options)

type options struct {
	logger      *slog.Logger
	labelPrefix string
}

// WithLogger sets the logger used to report progress of each compile stage
// at debug level. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLabelPrefix sets the prefix of generated jump labels, "L" by default.
func WithLabelPrefix(prefix string) Option {
	return func(o *options) {
		o.labelPrefix = prefix
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      slog.New(slog.DiscardHandler),
		labelPrefix: ir.DefaultLabelPrefix,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Tokenize scans the whole file. It never fails, unknown characters become
// ILLEGAL tokens.
func Tokenize(file *token.File) []token.Token {
	return scanner.New(file).ScanAll()
}

// ParseFile tokenizes and parses the file. The returned error is one of the
// parser error types, or the error from reading the file.
func ParseFile(file *token.File, opts ...Option) (*ast.Ast, *types.SymbolTable, error) {
	if file.Err != nil {
		return nil, nil, file.Err
	}

	o := newOptions(opts)
	return parse(file, o)
}

func parse(file *token.File, o *options) (*ast.Ast, *types.SymbolTable, error) {
	s := scanner.New(file)
	toks := s.ScanAll()
	o.logger.Debug("scanned file", "file", file.Name, "tokens", len(toks), "illegal", s.NumIllegal)

	tree, table, err := parser.Parse(file, toks)
	if err != nil {
		o.logger.Debug("parse failed", "file", file.Name, "error", err)
		return nil, nil, err
	}

	o.logger.Debug("parsed file", "file", file.Name, "statements", len(tree.Root.Stmts), "symbols", len(table.Symbols()))
	return tree, table, nil
}

// GenerateIR compiles the file into a list of instructions. Either the
// complete instruction list or exactly one error is returned.
func GenerateIR(file *token.File, opts ...Option) (*ir.IR, error) {
	if file.Err != nil {
		return nil, file.Err
	}

	o := newOptions(opts)
	tree, table, err := parse(file, o)
	if err != nil {
		return nil, err
	}

	b := ir.NewBuilder(tree, table)
	b.SetLabelPrefix(o.labelPrefix)
	prog := b.Build()

	o.logger.Debug("generated ir", "file", file.Name, "instructions", len(prog.Instructions))
	return prog, nil
}

// Lint parses the file and returns warnings for code that is valid but most
// likely a mistake, such as unused variables or constant conditions.
func Lint(file *token.File, opts ...Option) ([]types.Warning, error) {
	tree, table, err := ParseFile(file, opts...)
	if err != nil {
		return nil, err
	}

	return types.NewChecker(tree, table).Check(), nil
}

// Compile is a shorthand for compiling source text that is not in a file.
func Compile(src string, opts ...Option) (*ir.IR, error) {
	return GenerateIR(token.NewFile("", src), opts...)
}
