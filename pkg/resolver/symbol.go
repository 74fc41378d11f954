package resolver

import "fmt"

// Symbol associates a name with a caller-defined value, along with a
// category classifier that says what kind of symbol it is.
type Symbol struct {
	// Category is the kind of symbol this is.
	Category Category
	// Name is the symbol name, unique per (scope, category) pair.
	Name string
	// Value is the opaque payload recorded for the name: a definition
	// object, a type descriptor, a reference to another scope.
	Value any
	// Provider names the source that supplied the symbol. Symbols added
	// directly carry an empty provider; lazily imported constants carry
	// the anchor they were imported against.
	Provider string
}

// NewSymbol constructs a new symbol with the given arguments.
func NewSymbol(category Category, name string, value any) *Symbol {
	return &Symbol{
		Category: category,
		Name:     name,
		Value:    value,
	}
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	if s.Provider == "" {
		return fmt.Sprintf("(%s<%v>)", s.Name, s.Category)
	}
	return fmt.Sprintf("(%s<%v> %s)", s.Name, s.Category, s.Provider)
}
