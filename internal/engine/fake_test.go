package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/danieljhkim/zktree/internal/zkc"
)

// fakeNode is one znode held by a fakeSession.
type fakeNode struct {
	data     []byte
	children []string
	version  int
}

// fakeSession is an in-memory zkc.Session. Children are stored explicitly in
// insertion order so tests control the enumeration order the walker sees.
type fakeSession struct {
	nodes map[string]*fakeNode

	getCalls []string
	created  []string
	sets     []string
	closed   bool

	failGet map[string]error
	failSet map[string]error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		nodes:   map[string]*fakeNode{},
		failGet: map[string]error{},
		failSet: map[string]error{},
	}
}

func splitParent(path string) (parent, name string) {
	idx := strings.LastIndex(path, "/")
	return path[:idx], path[idx+1:]
}

// addNode registers a znode and links it into its parent's child list. The
// parent must already exist (the path "" counts as an implicit root).
func (s *fakeSession) addNode(path, data string) {
	parent, name := splitParent(path)
	if parent != "" {
		p, ok := s.nodes[parent]
		if !ok {
			panic(fmt.Sprintf("addNode: parent of %s missing", path))
		}
		p.children = append(p.children, name)
	}
	s.nodes[path] = &fakeNode{data: []byte(data)}
}

// dropNode removes a znode's record while leaving it listed in its parent's
// children, simulating a concurrent external deletion between listing and
// read.
func (s *fakeSession) dropNode(path string) {
	delete(s.nodes, path)
}

func (s *fakeSession) data(path string) string {
	node, ok := s.nodes[path]
	if !ok {
		return "<missing>"
	}
	return string(node.data)
}

func (s *fakeSession) Get(path string) ([]byte, json.RawMessage, error) {
	s.getCalls = append(s.getCalls, path)
	if err, ok := s.failGet[path]; ok {
		return nil, nil, err
	}
	node, ok := s.nodes[path]
	if !ok {
		return nil, nil, fmt.Errorf("%w: get %s", zkc.ErrNodeNotFound, path)
	}
	stat := json.RawMessage(fmt.Sprintf(`{"version":%d}`, node.version))
	return node.data, stat, nil
}

func (s *fakeSession) Children(path string) ([]string, error) {
	node, ok := s.nodes[path]
	if !ok {
		return nil, fmt.Errorf("%w: list children of %s", zkc.ErrNodeNotFound, path)
	}
	return append([]string(nil), node.children...), nil
}

func (s *fakeSession) Exists(path string) (bool, error) {
	_, ok := s.nodes[path]
	return ok, nil
}

func (s *fakeSession) Create(path string, data []byte, createParents bool) error {
	if _, ok := s.nodes[path]; ok {
		return fmt.Errorf("%w: create %s: node exists", zkc.ErrSession, path)
	}
	parent, _ := splitParent(path)
	if parent != "" {
		if _, ok := s.nodes[parent]; !ok {
			if !createParents {
				return fmt.Errorf("%w: create %s: no parent", zkc.ErrSession, path)
			}
			if err := s.Create(parent, nil, true); err != nil {
				return err
			}
		}
	}
	s.addNode(path, string(data))
	s.created = append(s.created, path)
	return nil
}

func (s *fakeSession) Set(path string, data []byte) error {
	if err, ok := s.failSet[path]; ok {
		return err
	}
	node, ok := s.nodes[path]
	if !ok {
		return fmt.Errorf("%w: set %s", zkc.ErrNodeNotFound, path)
	}
	node.data = data
	node.version++
	s.sets = append(s.sets, path)
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

// fakeDialer hands out fakeSessions by address.
type fakeDialer struct {
	sessions map[string]*fakeSession
	dialed   []string
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{sessions: map[string]*fakeSession{}}
}

func (d *fakeDialer) Dial(address string) (zkc.Session, error) {
	d.dialed = append(d.dialed, address)
	sess, ok := d.sessions[address]
	if !ok {
		return nil, fmt.Errorf("%w: connecting to %s", zkc.ErrSession, address)
	}
	return sess, nil
}

// fakeFS is an in-memory fsops.FS.
type fakeFS struct {
	files map[string][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]byte{}}
}

func (fs *fakeFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return data, nil
}

func (fs *fakeFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *fakeFS) Exists(path string) (bool, error) {
	_, ok := fs.files[path]
	return ok, nil
}

// scriptDecider returns pre-canned decisions in order.
type scriptDecider struct {
	decisions []Decision
	asked     []string
}

func (d *scriptDecider) Decide(path string) (Decision, error) {
	d.asked = append(d.asked, path)
	if len(d.decisions) == 0 {
		return DecisionSkip, fmt.Errorf("decider asked about %s with no scripted answer", path)
	}
	next := d.decisions[0]
	d.decisions = d.decisions[1:]
	return next, nil
}

func sortedPaths(s *fakeSession) []string {
	paths := make([]string, 0, len(s.nodes))
	for p := range s.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
