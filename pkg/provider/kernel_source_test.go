package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintkit/lintkit/pkg/provider"
	"github.com/lintkit/lintkit/pkg/resolver"
	"github.com/lintkit/lintkit/pkg/testutil"
)

func TestKernelSourceSeedsRootScope(t *testing.T) {
	root, err := resolver.NewScope(resolver.ScopeConfig{
		LazyLoad:     true,
		ImportKernel: true,
		Importer:     provider.NewKernelSource(),
		Logger:       testutil.NewTestLogger(t),
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range resolver.KernelConstants {
		sym, err := root.Lookup(resolver.Constant, name)
		assert.NoError(t, err)
		if !assert.NotNil(t, sym, name) {
			continue
		}
		assert.Equal(t, resolver.DefaultAnchor, sym.Provider)
		def, ok := sym.Value.(*provider.KernelDefinition)
		if assert.True(t, ok, "value type for %s", name) {
			assert.Equal(t, name, def.Name)
		}
	}
}

func TestKernelSourceLazySingleImport(t *testing.T) {
	source := provider.NewKernelSource()
	source.Put(resolver.DefaultAnchor, "Set", &provider.KernelDefinition{
		Name:   "Set",
		Anchor: resolver.DefaultAnchor,
	})

	// No kernel pre-seed: the scope starts empty and pulls constants on
	// demand.
	scope, err := resolver.NewScope(resolver.ScopeConfig{
		LazyLoad: true,
		Importer: source,
		Logger:   testutil.NewTestLogger(t),
	})
	if err != nil {
		t.Fatal(err)
	}

	sym, err := scope.Lookup(resolver.Constant, "Set")
	assert.NoError(t, err)
	if assert.NotNil(t, sym) {
		assert.Equal(t, resolver.DefaultAnchor, sym.Provider)
	}

	absent, err := scope.Lookup(resolver.Constant, "NotAThing")
	assert.NoError(t, err)
	assert.Nil(t, absent)
}
