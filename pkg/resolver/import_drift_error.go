package resolver

import "fmt"

// ImportDriftError is returned by Lookup when the importer claimed to
// expose a constant under an anchor but the import produced no value for
// it. It disambiguates "never existed" (a plain absent result) from "the
// definition source broke its contract".
type ImportDriftError struct {
	// Anchor is the namespace the import was keyed against.
	Anchor string
	// Name is the constant that was claimed but not delivered.
	Name string
}

// Error implements the error interface.
func (e *ImportDriftError) Error() string {
	return fmt.Sprintf("importer exposed %q under %s but produced no value for it", e.Name, e.Anchor)
}
