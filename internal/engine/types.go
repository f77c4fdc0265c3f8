package engine

import (
	"encoding/json"
	"io"

	"github.com/danieljhkim/zktree/internal/zkc"
)

// Node is one znode read during a walk: its absolute path, its
// service-assigned stat, and its payload. Nodes are handed to a visitor and
// discarded; they are never cached or reused across traversal steps.
type Node struct {
	Path string
	Stat json.RawMessage
	Data []byte
}

// PrintRequest represents a request to print a subtree.
type PrintRequest struct {
	// Source is the parsed source connect target.
	Source zkc.Target

	// Out receives the per-znode listing.
	Out io.Writer
}

// PrintResult represents the result of printing a subtree.
type PrintResult struct {
	// Visited is the number of znodes printed.
	Visited int
}

// CopyRequest represents a request to replicate a subtree onto another
// ensemble.
type CopyRequest struct {
	// Source is the parsed source connect target.
	Source zkc.Target

	// Dest is the parsed destination connect target.
	Dest zkc.Target

	// Policy governs conflicts with existing destination znodes.
	Policy Policy
}

// CopyResult represents the result of a copy.
type CopyResult struct {
	// Visited is the number of source znodes walked.
	Visited int

	// Created is the number of destination znodes newly created.
	Created int

	// Overwritten is the number of existing destination znodes whose payload
	// was replaced.
	Overwritten int

	// Skipped is the number of existing destination znodes left untouched.
	Skipped int
}

// ExportRequest represents a request to export a subtree to a snapshot file.
type ExportRequest struct {
	// Source is the parsed source connect target.
	Source zkc.Target

	// File is the local path the document is written to.
	File string
}

// ExportResult represents the result of an export.
type ExportResult struct {
	// Nodes is the number of znodes recorded in the document.
	Nodes int

	// File is the path the document was written to.
	File string
}

// ImportRequest represents a request to replay a snapshot file onto a
// destination ensemble.
type ImportRequest struct {
	// File is the local path of the snapshot document.
	File string

	// Dest is the parsed destination connect target.
	Dest zkc.Target

	// Policy governs conflicts with existing destination znodes.
	Policy Policy
}

// ImportResult represents the result of an import.
type ImportResult struct {
	// Entries is the number of entries in the document.
	Entries int

	// Created is the number of destination znodes newly created.
	Created int

	// Overwritten is the number of existing destination znodes whose payload
	// was replaced.
	Overwritten int

	// Skipped is the number of existing destination znodes left untouched.
	Skipped int
}
