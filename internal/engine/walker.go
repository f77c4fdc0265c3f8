package engine

import (
	"fmt"

	"github.com/danieljhkim/zktree/internal/zkc"
)

// Walker yields the znodes of a subtree lazily in depth-first order. Each
// call to Next reads one znode (payload and stat in a single step) and then
// queues its children, so a parent is always yielded strictly before any of
// its descendants. Children are discovered from the server, never inferred
// from path syntax, and are addressed by joined path strings, so no cycle can
// occur.
//
// A Walker is one-shot: once exhausted or failed it cannot be restarted.
type Walker struct {
	sess    zkc.Session
	pending []string
}

// NewWalker starts a walk rooted at root.
func NewWalker(sess zkc.Session, root string) *Walker {
	return &Walker{sess: sess, pending: []string{root}}
}

// Next returns the next znode, or nil once the subtree is exhausted. A znode
// that vanishes between being listed as a child and being read fails the walk
// immediately; there is no skip-and-continue.
func (w *Walker) Next() (*Node, error) {
	if len(w.pending) == 0 {
		return nil, nil
	}
	path := w.pending[len(w.pending)-1]
	w.pending = w.pending[:len(w.pending)-1]

	data, stat, err := w.sess.Get(path)
	if err != nil {
		w.pending = nil
		return nil, fmt.Errorf("failed to read znode %s: %w", path, err)
	}
	children, err := w.sess.Children(path)
	if err != nil {
		w.pending = nil
		return nil, fmt.Errorf("failed to list children of %s: %w", path, err)
	}
	// Push in reverse so children come off the stack in enumeration order.
	for i := len(children) - 1; i >= 0; i-- {
		w.pending = append(w.pending, zkc.JoinPath(path, children[i]))
	}

	return &Node{Path: path, Stat: stat, Data: data}, nil
}

// Walk drives a Walker to completion, invoking visit on every znode. It
// returns the first error from the walk or from visit.
func Walk(sess zkc.Session, root string, visit func(*Node) error) error {
	w := NewWalker(sess, root)
	for {
		node, err := w.Next()
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		if err := visit(node); err != nil {
			return err
		}
	}
}
