package provider

import (
	"github.com/lintkit/lintkit/pkg/resolver"
)

// KernelDefinition is the value a kernel bootstrap constant resolves to.
// Real drivers replace these with parsed definition objects; the stub
// carries enough to identify the constant and its origin.
type KernelDefinition struct {
	Name   string
	Anchor string
}

// NewKernelSource returns a MemorySource pre-populated with the kernel
// bootstrap constants under the default anchor, suitable for seeding a
// root scope.
func NewKernelSource() *MemorySource {
	s := NewMemorySource()
	for _, name := range resolver.KernelConstants {
		s.Put(resolver.DefaultAnchor, name, &KernelDefinition{
			Name:   name,
			Anchor: resolver.DefaultAnchor,
		})
	}
	return s
}
