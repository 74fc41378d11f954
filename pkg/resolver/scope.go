package resolver

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ScopeConfig carries the construction options for a Scope.
type ScopeConfig struct {
	// Parents are the scopes consulted, in order, when a lookup for an
	// inheriting category misses locally. Nil entries are silently
	// dropped.
	Parents []*Scope
	// LazyLoad enables on-demand import of constants from the Importer
	// when a constant lookup would otherwise come up empty.
	LazyLoad bool
	// ImportKernel pre-seeds the constant category with the kernel
	// bootstrap set at construction. Only meaningful together with
	// LazyLoad and a non-nil Importer.
	ImportKernel bool
	// Anchor is the namespace lazy imports are keyed against. Defaults
	// to DefaultAnchor.
	Anchor string
	// Importer is the external definition source. May be nil, in which
	// case no lazy loading happens regardless of LazyLoad.
	Importer Importer
	// Logger receives debug events for lazy imports. Defaults to a
	// no-op logger.
	Logger zerolog.Logger
}

// Scope is a lexical context holding named symbols partitioned by
// category, linked to zero or more parent scopes for inherited lookup.
// Scopes form a DAG via their parent links; cycles are a caller error,
// though Lookup guards against them rather than spinning.
//
// A Scope is not safe for concurrent use: the lazy-import path mutates
// the scope performing it.
type Scope struct {
	parents  []*Scope
	symbols  map[Category]map[string]*Symbol
	anchor   string
	importer Importer
	lazyLoad bool
	logger   zerolog.Logger
}

// NewScope constructs a Scope. The returned scope has every category map
// initialized empty; when cfg requests a kernel import, the constant
// category is additionally pre-seeded from the importer, and an importer
// failure propagates as the returned error.
func NewScope(cfg ScopeConfig) (*Scope, error) {
	anchor := cfg.Anchor
	if anchor == "" {
		anchor = DefaultAnchor
	}
	s := &Scope{
		symbols:  make(map[Category]map[string]*Symbol, len(Categories())),
		anchor:   anchor,
		importer: cfg.Importer,
		lazyLoad: cfg.LazyLoad,
		logger:   cfg.Logger,
	}
	for _, c := range Categories() {
		s.symbols[c] = make(map[string]*Symbol)
	}
	for _, p := range cfg.Parents {
		if p == nil {
			continue
		}
		s.parents = append(s.parents, p)
	}
	if cfg.LazyLoad && cfg.ImportKernel && cfg.Importer != nil {
		values, err := cfg.Importer.Import(anchor, KernelConstants...)
		if err != nil {
			return nil, fmt.Errorf("importing kernel constants: %w", err)
		}
		for name, value := range values {
			s.symbols[Constant][name] = &Symbol{
				Category: Constant,
				Name:     name,
				Value:    value,
				Provider: anchor,
			}
		}
	}
	return s, nil
}

// Parents returns the parent scopes in their configured order.
func (s *Scope) Parents() []*Scope {
	return s.parents
}

// Anchor returns the namespace lazy imports resolve against.
func (s *Scope) Anchor() string {
	return s.anchor
}

// Add records a symbol under the given category. Later calls for the same
// (category, name) overwrite the earlier value; Add never fails. Adding
// under an unknown category is a no-op.
func (s *Scope) Add(category Category, name string, value any) {
	table, ok := s.symbols[category]
	if !ok {
		return
	}
	table[name] = NewSymbol(category, name, value)
}

// Lookup resolves name under the given category: the local table first,
// then parents in order for inheriting categories (first hit wins), then
// a single lazy-import attempt for constants. An absent symbol is
// (nil, nil), not an error; importer failures and contract drift are
// returned as errors.
func (s *Scope) Lookup(category Category, name string) (*Symbol, error) {
	return s.lookup(category, name, make(map[*Scope]bool))
}

func (s *Scope) lookup(category Category, name string, seen map[*Scope]bool) (*Symbol, error) {
	if seen[s] {
		return nil, nil
	}
	seen[s] = true

	if sym, ok := s.symbols[category][name]; ok {
		return sym, nil
	}

	if category.Inherits() {
		for _, p := range s.parents {
			sym, err := p.lookup(category, name, seen)
			if err != nil {
				return nil, err
			}
			if sym != nil {
				return sym, nil
			}
		}
	}

	if category == Constant && s.lazyLoad && s.importer != nil && s.importer.Exposes(s.anchor, name) {
		if err := s.importConstant(name); err != nil {
			return nil, err
		}
		// Retry exactly once; the import either satisfied the local
		// table or the importer drifted from its Exposes answer.
		sym, ok := s.symbols[Constant][name]
		if !ok {
			return nil, &ImportDriftError{Anchor: s.anchor, Name: name}
		}
		return sym, nil
	}

	return nil, nil
}

// importConstant pulls a single constant from the definition source into
// the local constant table.
func (s *Scope) importConstant(name string) error {
	values, err := s.importer.Import(s.anchor, name)
	if err != nil {
		return fmt.Errorf("importing constant %s: %w", name, err)
	}
	for n, value := range values {
		s.symbols[Constant][n] = &Symbol{
			Category: Constant,
			Name:     n,
			Value:    value,
			Provider: s.anchor,
		}
	}
	s.logger.Debug().
		Str("anchor", s.anchor).
		Str("name", name).
		Msg("lazily imported constant")
	return nil
}

// String implements the fmt.Stringer interface.
func (s *Scope) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scope{anchor: %s, parents: %d", s.anchor, len(s.parents))
	for _, c := range Categories() {
		if n := len(s.symbols[c]); n > 0 {
			fmt.Fprintf(&buf, ", %v: %d", c, n)
		}
	}
	buf.WriteRune('}')
	return buf.String()
}
