package resolver

// Importer is the external definition source: a catalog of constant
// definitions keyed by anchor namespace. Scopes use it to pre-seed the
// kernel bootstrap set and to lazily import single constants on a failed
// lookup. Its internal mechanism is not this package's concern.
type Importer interface {
	// Exposes reports whether the anchor defines a constant named name.
	Exposes(anchor, name string) bool

	// Import resolves the named constants against the anchor and returns
	// a mapping from name to symbol value. A name the anchor claims to
	// expose but cannot load is an error.
	Import(anchor string, names ...string) (map[string]any, error)
}
