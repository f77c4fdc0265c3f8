package engine

import (
	"fmt"

	"github.com/danieljhkim/zktree/internal/zkc"
)

// Copy replicates the source subtree onto the destination ensemble. Every
// visited znode lands at JoinPath(destRoot, sourcePath): the znode's full
// source path is nested below the destination root, not just the suffix
// relative to the copied subtree. Copying zk1/a/b into zk2/dst therefore
// writes /dst/a/b. This matches the trees this tool has always produced and
// is kept deliberately; see the copy command help.
//
// Payloads are the only thing copied — stats are always assigned by the
// destination server. There is no rollback: a copy that aborts partway leaves
// every earlier write in place.
func (e *Engine) Copy(req *CopyRequest) (*CopyResult, error) {
	src, err := e.dial(req.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := e.dial(req.Dest)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	result := &CopyResult{}
	err = Walk(src, req.Source.Path, func(node *Node) error {
		e.debugf("processing znode at %s", node.Path)
		result.Visited++
		destPath := zkc.JoinPath(req.Dest.Path, node.Path)
		disp, err := e.writeNode(dst, destPath, node.Data, req.Policy)
		if err != nil {
			return err
		}
		result.count(disp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *CopyResult) count(d disposition) {
	switch d {
	case wroteCreated:
		r.Created++
	case wroteOverwritten:
		r.Overwritten++
	case wroteSkipped:
		r.Skipped++
	}
}

// disposition records what writeNode did with one znode.
type disposition int

const (
	wroteCreated disposition = iota
	wroteOverwritten
	wroteSkipped
)

// writeNode applies the create-or-resolve-write logic shared by Copy and
// Import: an absent destination znode is created along with any missing
// ancestors, an existing one goes through conflict resolution and is either
// overwritten or left untouched.
func (e *Engine) writeNode(dst zkc.Session, path string, data []byte, policy Policy) (disposition, error) {
	exists, err := dst.Exists(path)
	if err != nil {
		return wroteSkipped, fmt.Errorf("failed to check destination %s: %w", path, err)
	}

	if !exists {
		e.debugf("writing new znode at %s", path)
		if err := dst.Create(path, data, true); err != nil {
			return wroteSkipped, fmt.Errorf("failed to create %s: %w", path, err)
		}
		return wroteCreated, nil
	}

	decision, err := Resolve(true, policy, e.decider, path)
	if err != nil {
		return wroteSkipped, err
	}
	if decision == DecisionWrite {
		e.debugf("overwriting znode at %s", path)
		if err := dst.Set(path, data); err != nil {
			return wroteSkipped, fmt.Errorf("failed to overwrite %s: %w", path, err)
		}
		return wroteOverwritten, nil
	}

	e.debugf("skipping existing znode at %s", path)
	return wroteSkipped, nil
}
