package walker

import (
	"github.com/rs/zerolog"

	"github.com/lintkit/lintkit/pkg/node"
)

// Flow is the value an enter handler returns to steer the walk.
type Flow int

const (
	// Continue visits the node's children in order.
	Continue Flow = iota
	// SkipChildren suppresses traversal of the node's children. The
	// signal is consumed immediately by the walk loop: it never affects
	// sibling or ancestor traversal, and the exit handler for the node
	// still runs.
	SkipChildren
)

// EnterFunc is invoked in pre-order when a node of the registered kind is
// reached. Its return value decides whether the node's children are visited.
type EnterFunc func(n *node.Node) Flow

// ExitFunc is invoked in post-order after a node's children (if any) have
// been visited.
type ExitFunc func(n *node.Node)

// Handlers maps node kinds to enter/exit callbacks. A kind with no entry
// is visited silently; a missing handler is never an error.
type Handlers struct {
	OnEnter map[node.Kind]EnterFunc
	OnExit  map[node.Kind]ExitFunc
}

// Walker drives a depth-first walk over a node tree, dispatching to the
// configured handlers by node kind. Traversal order is deterministic:
// pre-order enter, left-to-right children, post-order exit.
type Walker struct {
	handlers    Handlers
	definitions any
	logger      zerolog.Logger
	trace       bool
}

// New constructs a Walker with the given handler set and configuration.
// If the configuration carries an AfterConfigure hook it runs once before
// New returns.
func New(handlers Handlers, cfg Config) *Walker {
	w := &Walker{
		handlers:    handlers,
		definitions: cfg.Definitions,
		logger:      cfg.Logger,
		trace:       cfg.Trace,
	}
	if cfg.AfterConfigure != nil {
		cfg.AfterConfigure(w)
	}
	return w
}

// Definitions returns the shared store the walker was configured with, for
// use by handlers during a walk. It is nil unless set in the Config.
func (w *Walker) Definitions() any {
	return w.definitions
}

// Walk visits n and its descendants. A nil node is a no-op. Handlers run
// in the fixed order enter(n), children left-to-right, exit(n); the exit
// handler runs even when the enter handler returned SkipChildren. Errors
// raised by handlers (panics) are not intercepted.
func (w *Walker) Walk(n *node.Node) {
	if n == nil {
		return
	}
	flow := Continue
	if enter, ok := w.handlers.OnEnter[n.Kind]; ok {
		if w.trace {
			w.logger.Debug().Str("kind", string(n.Kind)).Msg("enter")
		}
		flow = enter(n)
	}
	if flow != SkipChildren {
		for _, child := range n.Children {
			w.Walk(child)
		}
	}
	if exit, ok := w.handlers.OnExit[n.Kind]; ok {
		if w.trace {
			w.logger.Debug().Str("kind", string(n.Kind)).Msg("exit")
		}
		exit(n)
	}
}
