package engine

import (
	"fmt"

	"github.com/danieljhkim/zktree/internal/snapshot"
	"github.com/danieljhkim/zktree/internal/zkc"
)

// Export walks the source subtree, accumulates every znode into a snapshot,
// and writes the encoded document to req.File in full as a single atomic
// write.
func (e *Engine) Export(req *ExportRequest) (*ExportResult, error) {
	sess, err := e.dial(req.Source)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	snap := snapshot.Snapshot{}
	err = Walk(sess, req.Source.Path, func(node *Node) error {
		e.debugf("processing znode at %s", node.Path)
		snap[node.Path] = snapshot.Entry{Data: string(node.Data), Stat: node.Stat}
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc, err := snapshot.Encode(snap)
	if err != nil {
		return nil, err
	}
	if err := e.fs.AtomicWrite(req.File, doc, 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return &ExportResult{Nodes: len(snap), File: req.File}, nil
}

// Import reads a snapshot document and replays it onto the destination. The
// document is decoded and validated in full before the destination is even
// dialed, so a malformed document performs zero writes. The writes themselves
// follow the same create-or-resolve logic as Copy, in the document's sorted
// key order; flat order gives no parent-before-child guarantee, so missing
// ancestors are created on demand. The writes are not transactional: an
// import that aborts partway leaves earlier writes in place.
func (e *Engine) Import(req *ImportRequest) (*ImportResult, error) {
	doc, err := e.fs.ReadFile(req.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	snap, err := snapshot.Decode(doc)
	if err != nil {
		return nil, err
	}

	dst, err := e.dial(req.Dest)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	result := &ImportResult{Entries: len(snap)}
	for _, path := range snap.Paths() {
		e.debugf("processing snapshot entry %s", path)
		destPath := zkc.JoinPath(req.Dest.Path, path)
		disp, err := e.writeNode(dst, destPath, []byte(snap[path].Data), req.Policy)
		if err != nil {
			return nil, err
		}
		result.count(disp)
	}
	return result, nil
}

func (r *ImportResult) count(d disposition) {
	switch d {
	case wroteCreated:
		r.Created++
	case wroteOverwritten:
		r.Overwritten++
	case wroteSkipped:
		r.Skipped++
	}
}
