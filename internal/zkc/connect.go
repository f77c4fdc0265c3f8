// Package zkc provides the ZooKeeper session layer: connect descriptor
// parsing, znode path joining, and a narrow Session interface over the
// go-zookeeper client.
//
// Everything above this package talks to ZooKeeper exclusively through the
// Session and Dialer interfaces, so the engine is testable against in-memory
// implementations.
package zkc

import (
	"fmt"
	"strings"
)

// Target identifies a ZooKeeper ensemble address and an absolute znode path
// within its namespace, e.g. {"zk1:2181", "/path/to/znode"}.
type Target struct {
	Address string
	Path    string
}

// ParseConnectString splits a connect descriptor such as
// "zookeeper1:2181/path/to/znode" at the first '/' into the ensemble address
// and the znode path. A descriptor with no '/' fails with ErrConnectString.
func ParseConnectString(s string) (Target, error) {
	idx := strings.Index(s, "/")
	if idx == -1 {
		return Target{}, fmt.Errorf("%w: %q has no path component", ErrConnectString, s)
	}
	return Target{Address: s[:idx], Path: s[idx:]}, nil
}
