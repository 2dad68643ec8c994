package types

// The TableReader hides the mutating methods of the SymbolTable. It is all
// code generation needs to read semantic data after parsing.
type TableReader interface {
	// Declared reports whether name has been declared.
	Declared(name string) bool

	// Symbols returns all symbols in declaration order.
	Symbols() []*Symbol
}
