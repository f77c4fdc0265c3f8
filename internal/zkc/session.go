package zkc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
)

// Session is the view of a ZooKeeper connection the engine needs. Every call
// is a blocking round trip to the server. Implementations must map
// missing-znode failures to ErrNodeNotFound and all other transport failures
// to ErrSession so callers can dispatch with errors.Is.
type Session interface {
	// Get reads a znode's payload and its service-assigned stat in one step.
	Get(path string) (data []byte, stat json.RawMessage, err error)

	// Children lists a znode's child names. The order is whatever the server
	// enumerates; it is not guaranteed sorted.
	Children(path string) ([]string, error)

	// Exists reports whether a znode exists.
	Exists(path string) (bool, error)

	// Create writes a new znode. With createParents, missing ancestors are
	// created with empty payloads first.
	Create(path string, data []byte, createParents bool) error

	// Set replaces an existing znode's payload.
	Set(path string, data []byte) error

	// Close tears down the session.
	Close() error
}

// Dialer establishes sessions. The engine depends on a Dialer rather than
// dialing directly so tests can hand out in-memory sessions.
type Dialer interface {
	Dial(address string) (Session, error)
}

// DefaultSessionTimeout is the ZooKeeper session timeout used by ZKDialer
// unless overridden.
const DefaultSessionTimeout = 10 * time.Second

// ZKDialer dials real ZooKeeper ensembles.
type ZKDialer struct {
	// SessionTimeout overrides DefaultSessionTimeout when non-zero.
	SessionTimeout time.Duration
}

// Dial connects to the ensemble at address. The address may name several
// servers separated by commas.
func (d *ZKDialer) Dial(address string) (Session, error) {
	timeout := d.SessionTimeout
	if timeout == 0 {
		timeout = DefaultSessionTimeout
	}
	conn, _, err := zk.Connect(strings.Split(address, ","), timeout, zk.WithLogInfo(false))
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to %s: %v", ErrSession, address, err)
	}
	return &zkSession{conn: conn}, nil
}

// zkSession adapts *zk.Conn to the Session interface.
type zkSession struct {
	conn *zk.Conn
}

func (s *zkSession) Get(path string) ([]byte, json.RawMessage, error) {
	data, stat, err := s.conn.Get(path)
	if err != nil {
		return nil, nil, wrapZKErr(err, "get %s", path)
	}
	raw, err := json.Marshal(stat)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encoding stat of %s: %v", ErrSession, path, err)
	}
	return data, raw, nil
}

func (s *zkSession) Children(path string) ([]string, error) {
	children, _, err := s.conn.Children(path)
	if err != nil {
		return nil, wrapZKErr(err, "list children of %s", path)
	}
	return children, nil
}

func (s *zkSession) Exists(path string) (bool, error) {
	exists, _, err := s.conn.Exists(path)
	if err != nil {
		return false, wrapZKErr(err, "check %s", path)
	}
	return exists, nil
}

func (s *zkSession) Create(path string, data []byte, createParents bool) error {
	if createParents {
		if err := s.ensureParents(path); err != nil {
			return err
		}
	}
	if _, err := s.conn.Create(path, data, 0, zk.WorldACL(zk.PermAll)); err != nil {
		return wrapZKErr(err, "create %s", path)
	}
	return nil
}

// ensureParents creates any missing ancestors of path with empty payloads.
func (s *zkSession) ensureParents(path string) error {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := ""
	for _, seg := range segments[:len(segments)-1] {
		current = current + "/" + seg
		exists, err := s.Exists(current)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = s.conn.Create(current, nil, 0, zk.WorldACL(zk.PermAll))
		// Another client may have created it since the existence check.
		if err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return wrapZKErr(err, "create ancestor %s", current)
		}
	}
	return nil
}

func (s *zkSession) Set(path string, data []byte) error {
	if _, err := s.conn.Set(path, data, -1); err != nil {
		return wrapZKErr(err, "set %s", path)
	}
	return nil
}

func (s *zkSession) Close() error {
	s.conn.Close()
	return nil
}

// wrapZKErr maps go-zookeeper errors onto the package's sentinel taxonomy.
func wrapZKErr(err error, format string, args ...any) error {
	op := fmt.Sprintf(format, args...)
	if errors.Is(err, zk.ErrNoNode) {
		return fmt.Errorf("%w: %s: %v", ErrNodeNotFound, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrSession, op, err)
}
