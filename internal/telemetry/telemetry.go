// Package telemetry records engine lifecycle events as JSON lines. Snapshot
// rebuilds, invalidations, catalog reloads and recents persistence each
// produce one event, so a session can be replayed and cache behaviour
// audited after the fact.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSnapshotBuilt       = "snapshot_built"
	KindSnapshotInvalidated = "snapshot_invalidated"
	KindCatalogReloaded     = "catalog_reloaded"
	KindRecentsSaved        = "recents_saved"
	KindRecentsCleared      = "recents_cleared"
)

// Event is a single telemetry record. SnapshotID ties the event to a cache
// generation when relevant.
type Event struct {
	Timestamp  time.Time `json:"ts"`
	Kind       string    `json:"kind"`
	SnapshotID string    `json:"snapshot,omitempty"`
	Data       any       `json:"data,omitempty"`
}

// Emitter writes telemetry events as JSONL. It is safe for concurrent use by
// multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	closer io.Closer
	enc    *json.Encoder
	mu     sync.Mutex
}

// NewEmitter creates an Emitter that appends JSONL events to the file at
// path, creating it if needed.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{closer: f, enc: json.NewEncoder(f)}, nil
}

// NewWriterEmitter creates an Emitter over w. Close does not close w.
func NewWriterEmitter(w io.Writer) *Emitter {
	return &Emitter{enc: json.NewEncoder(w)}
}

// Emit writes a single event. A zero Timestamp is filled with the current
// time. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the emitter owns one. Calling Close
// on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.closer.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Decode reads JSONL events from r.
func Decode(r io.Reader) ([]Event, error) {
	dec := json.NewDecoder(r)
	var out []Event
	for {
		var evt Event
		err := dec.Decode(&evt)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("telemetry: decode event %d: %w", len(out), err)
		}
		out = append(out, evt)
	}
}
