package engine

import (
	"fmt"
	"io"
)

// Print walks the source subtree and emits each znode's path, stat, and
// payload to req.Out. It performs no writes.
func (e *Engine) Print(req *PrintRequest) (*PrintResult, error) {
	sess, err := e.dial(req.Source)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	result := &PrintResult{}
	err = Walk(sess, req.Source.Path, func(node *Node) error {
		e.debugf("processing znode at %s", node.Path)
		result.Visited++
		return printNode(req.Out, node)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func printNode(w io.Writer, node *Node) error {
	if _, err := fmt.Fprintf(w, "ZNode path: %s\n", node.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ZNode stat: %s\n", node.Stat); err != nil {
		return err
	}
	if len(node.Data) == 0 {
		_, err := fmt.Fprintf(w, "ZNode data: (empty)\n\n")
		return err
	}
	_, err := fmt.Fprintf(w, "ZNode data: %s\n\n", node.Data)
	return err
}
