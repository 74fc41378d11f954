package resolver

import "strings"

// Category partitions the symbol namespace. Each category carries its own
// inheritance policy: whether a lookup that misses locally goes on to
// consult parent scopes.
type Category int

const (
	NoCategory Category = iota
	LocalVariable
	InstanceVariable
	ClassVariable
	GlobalVariable
	Constant
	Method
	InstanceMethod
)

var categoryNames = map[Category]string{
	LocalVariable:    "local_variable",
	InstanceVariable: "instance_variable",
	ClassVariable:    "class_variable",
	GlobalVariable:   "global_variable",
	Constant:         "constant",
	Method:           "method",
	InstanceMethod:   "instance_method",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// Categories returns all symbol categories in declaration order.
func Categories() []Category {
	return []Category{
		LocalVariable,
		InstanceVariable,
		ClassVariable,
		GlobalVariable,
		Constant,
		Method,
		InstanceMethod,
	}
}

// ParseCategory resolves a category from its string form. Matching is
// case-insensitive and tolerates surrounding whitespace, so "Constant" and
// "CONSTANT" both normalize to Constant.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoriesByName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Inherits reports whether lookups for this category consult parent scopes
// after a local miss. Local variables are scope-strict and never inherit.
func (c Category) Inherits() bool {
	switch c {
	case NoCategory, LocalVariable:
		return false
	}
	return true
}

// String implements the fmt.Stringer interface.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}
