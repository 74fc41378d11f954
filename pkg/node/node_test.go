package node

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeString(t *testing.T) {
	for name, tc := range map[string]struct {
		node *Node
		want string
	}{
		"degenerate": {
			node: &Node{},
			want: "",
		},
		"bare kind": {
			node: New("nil"),
			want: "nil",
		},
		"token leaf": {
			node: NewToken("const", "PP"),
			want: "(const PP)",
		},
		"nested": {
			node: New("root",
				New("send", NewToken("ident", "puts"), NewToken("str", "hi")),
				NewToken("const", "PP"),
			),
			want: "(root (send (ident puts) (str hi)) (const PP))",
		},
		"nil child skipped": {
			node: New("root", nil, NewToken("const", "PP")),
			want: "(root (const PP))",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := tc.node.String()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
