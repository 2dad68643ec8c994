package types

import "github.com/jesperkha/minic/minic/token"

// The SymbolTable includes every variable declared in the file. There is a
// single flat scope since blocks cannot declare variables.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []*Symbol // Symbols in declaration order
}

// A Symbol is a declared variable name. All symbols are integers.
type Symbol struct {
	Name     string    // Symbol name as it appears in the file.
	RefCount int       // How many times the symbol is referenced. 0 means unused.
	Pos      token.Pos // Position of the declared name.
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Declare adds a new symbol for name. If the name is already declared the
// existing symbol is returned with ok=false and the table is unchanged.
func (t *SymbolTable) Declare(name string, pos token.Pos) (sym *Symbol, ok bool) {
	if prev, exists := t.symbols[name]; exists {
		return prev, false
	}

	sym = &Symbol{
		Name: name,
		Pos:  pos,
	}

	t.symbols[name] = sym
	t.order = append(t.order, sym)
	return sym, true
}

// Lookup returns the symbol for name and marks it as referenced. Returns ok
// bool to indicate if the symbol was found.
func (t *SymbolTable) Lookup(name string) (sym *Symbol, ok bool) {
	sym, ok = t.symbols[name]
	if ok {
		sym.RefCount++
	}
	return sym, ok
}

// Declared reports whether name has been declared, without counting it as a
// reference.
func (t *SymbolTable) Declared(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// Symbols returns all symbols in declaration order.
func (t *SymbolTable) Symbols() []*Symbol {
	return t.order
}

// Unused returns all symbols that were declared but never referenced.
func (t *SymbolTable) Unused() []*Symbol {
	unused := []*Symbol{}
	for _, sym := range t.order {
		if sym.RefCount == 0 {
			unused = append(unused, sym)
		}
	}

	return unused
}
