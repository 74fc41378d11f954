package node

import (
	"strings"
)

// Kind is the discriminant tag identifying a node's syntactic category.
// The set of kinds is open-ended; it is owned by whatever parser produced
// the tree.
type Kind string

// Node is a single element of a syntax tree: a kind tag, an ordered list
// of child nodes, and an optional token payload for leaves (an identifier,
// a constant name, a literal). The walker treats nodes as immutable.
type Node struct {
	// Kind is the syntactic category of this node.
	Kind Kind
	// Token is the source text carried by leaf nodes, empty otherwise.
	Token string
	// Children are the ordered child nodes. Nil entries are permitted
	// and skipped during traversal.
	Children []*Node
}

// New constructs an interior node of the given kind.
func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewToken constructs a leaf node carrying the given token text.
func NewToken(kind Kind, token string) *Node {
	return &Node{Kind: kind, Token: token}
}

// String renders the subtree as an s-expression, e.g. (root (const PP)).
func (n *Node) String() string {
	var buf strings.Builder
	n.write(&buf)
	return buf.String()
}

func (n *Node) write(buf *strings.Builder) {
	if len(n.Children) == 0 {
		if n.Token == "" {
			buf.WriteString(string(n.Kind))
			return
		}
		buf.WriteRune('(')
		buf.WriteString(string(n.Kind))
		buf.WriteRune(' ')
		buf.WriteString(n.Token)
		buf.WriteRune(')')
		return
	}
	buf.WriteRune('(')
	buf.WriteString(string(n.Kind))
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		buf.WriteRune(' ')
		child.write(buf)
	}
	buf.WriteRune(')')
}
