package provider

import (
	"fmt"
	"strings"

	"github.com/dghubble/trie"
)

// MemorySource implements resolver.Importer over an in-memory catalog: one
// path trie of constant definitions per anchor namespace. Constant names
// are dot-segmented, so nested names like "Math.PI" share the "Math"
// prefix with their parent.
type MemorySource struct {
	anchors map[string]*trie.PathTrie
}

// NewMemorySource constructs an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		anchors: make(map[string]*trie.PathTrie),
	}
}

// Put records a constant definition under the given anchor, overwriting
// any previous value for the name.
func (s *MemorySource) Put(anchor, name string, value any) {
	t, ok := s.anchors[anchor]
	if !ok {
		t = trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: constantSegmenter,
		})
		s.anchors[anchor] = t
	}
	t.Put(name, value)
}

// Exposes implements part of the resolver.Importer interface.
func (s *MemorySource) Exposes(anchor, name string) bool {
	t, ok := s.anchors[anchor]
	if !ok {
		return false
	}
	return t.Get(name) != nil
}

// Import implements part of the resolver.Importer interface. A requested
// name the anchor does not define is an error.
func (s *MemorySource) Import(anchor string, names ...string) (map[string]any, error) {
	t, ok := s.anchors[anchor]
	if !ok {
		return nil, fmt.Errorf("unknown anchor: %s", anchor)
	}
	values := make(map[string]any, len(names))
	for _, name := range names {
		value := t.Get(name)
		if value == nil {
			return nil, fmt.Errorf("%s does not define constant %q", anchor, name)
		}
		values[name] = value
	}
	return values, nil
}

// constantSegmenter segments constant name paths by dot separators. For
// example, "a.b.c" -> ("a", 1), (".b", 3), (".c", -1) in successive calls.
// It does not allocate any heap memory.
func constantSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
