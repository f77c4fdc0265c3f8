// Package engine implements the core znode tree operations: printing,
// copying, exporting, and importing subtrees.
//
// The engine is fully synchronous. Every znode read or write is a blocking
// round trip to a ZooKeeper server, siblings are visited one at a time, and
// an action runs to completion or aborts on the first error. There are no
// retries and no rollback: writes already performed by an aborted copy or
// import remain at the destination.
//
// Key components:
//   - Walker: lazy depth-first traversal of a subtree
//   - Resolve/Decider: conflict resolution for existing destination znodes
//   - Copy: replication of one subtree onto another ensemble
//   - Export/Import: snapshot-document serialization and replay
package engine

import (
	"fmt"
	"io"

	"github.com/danieljhkim/zktree/internal/fsops"
	"github.com/danieljhkim/zktree/internal/zkc"
)

// Engine dispatches the tree actions. It is the API surface called by the
// CLI. Every action dials its own session(s) and closes them before
// returning; sessions are never shared between actions.
type Engine struct {
	dialer  zkc.Dialer
	fs      fsops.FS
	decider Decider
	debug   io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithDebug sends per-znode debug lines to w.
func WithDebug(w io.Writer) Option {
	return func(e *Engine) { e.debug = w }
}

// New creates an Engine with the given dependencies. The decider is only
// consulted for PolicyInteractive conflicts.
func New(dialer zkc.Dialer, fs fsops.FS, decider Decider, opts ...Option) *Engine {
	e := &Engine{
		dialer:  dialer,
		fs:      fs,
		decider: decider,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) debugf(format string, args ...any) {
	if e.debug == nil {
		return
	}
	fmt.Fprintf(e.debug, format+"\n", args...)
}

func (e *Engine) dial(target zkc.Target) (zkc.Session, error) {
	sess, err := e.dialer.Dial(target.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target.Address, err)
	}
	return sess, nil
}
