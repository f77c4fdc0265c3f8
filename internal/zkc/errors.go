package zkc

import "errors"

var (
	// ErrConnectString indicates a malformed connect descriptor.
	ErrConnectString = errors.New("invalid zookeeper connect string")

	// ErrNodeNotFound indicates a znode that does not (or no longer does) exist,
	// typically because it vanished between being listed and being read.
	ErrNodeNotFound = errors.New("znode not found")

	// ErrSession indicates an underlying transport or session failure.
	ErrSession = errors.New("zookeeper session failure")
)
