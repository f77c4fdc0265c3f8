// Package snapshot defines the flat JSON document format used to export and
// import znode subtrees.
//
// A document is a single keyed object mapping absolute znode paths to
// {"data": ..., "stat": ...} entries. Keys are serialized in lexicographic
// order so exporting the same tree always yields a byte-identical,
// diff-friendly document.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrDocumentFormat indicates a document that does not match the expected
// keyed-object shape.
var ErrDocumentFormat = errors.New("malformed snapshot document")

// Entry holds one znode's recorded payload and its service-assigned stat.
// The stat is opaque: it is recorded for inspection but never written back to
// a server.
type Entry struct {
	Data string          `json:"data"`
	Stat json.RawMessage `json:"stat"`
}

// Snapshot maps absolute znode paths to their recorded entries. It is the
// fully-materialized in-memory form of a subtree and lives only for the
// duration of one export or import action.
type Snapshot map[string]Entry

// Paths returns the snapshot's keys in lexicographic order. This matches the
// document's serialization order and is the order import replays entries in.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Encode serializes the snapshot to a document. encoding/json sorts map keys,
// which gives the deterministic key order the format requires.
func Encode(s Snapshot) ([]byte, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(doc, '\n'), nil
}

// Decode parses and validates a document. Every entry must be an object
// carrying both a "data" and a "stat" field; any deviation fails with
// ErrDocumentFormat and no snapshot is returned, so callers can guarantee
// zero writes on malformed input.
func Decode(doc []byte) (Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
	}

	snap := make(Snapshot, len(raw))
	for path, rawEntry := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rawEntry, &fields); err != nil {
			return nil, fmt.Errorf("%w: entry %q is not an object", ErrDocumentFormat, path)
		}
		if _, ok := fields["data"]; !ok {
			return nil, fmt.Errorf("%w: entry %q has no \"data\" field", ErrDocumentFormat, path)
		}
		if _, ok := fields["stat"]; !ok {
			return nil, fmt.Errorf("%w: entry %q has no \"stat\" field", ErrDocumentFormat, path)
		}

		var entry Entry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrDocumentFormat, path, err)
		}
		snap[path] = entry
	}
	return snap, nil
}
