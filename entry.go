// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// OpID identifies one entry within a session. Ids have the form <type>_<n>
// where n counts the entries allocated for that type, starting at 1. Ids are
// engine-assigned and unique within a session but carry no meaning across
// sessions.
type OpID string

// SafeFormat implements redact.SafeFormatter. Ids are derived from type tags
// and counters and never contain user data.
func (id OpID) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(id))
}

// Context is a caller-defined payload describing an operation or event. The
// engine treats Fields as an opaque blob: it is carried by reference and
// never inspected. Callers must not mutate Fields after passing the Context
// in.
type Context struct {
	// Type tags the payload, e.g. "http_request" or "db_query". It also
	// namespaces the ids allocated for entries carrying this payload.
	Type string
	// SchemaURL optionally names the schema describing Fields, for external
	// validation tooling. Empty is equivalent to "<type>.schema.json".
	SchemaURL string
	// Fields holds the payload itself.
	Fields map[string]any
}

func (c Context) schemaURL() string {
	if c.SchemaURL == "" {
		return c.Type + ".schema.json"
	}
	return c.SchemaURL
}

// fields returns the payload, substituting an empty map for nil so entries
// always serialize with a context object.
func (c Context) fields() map[string]any {
	if c.Fields == nil {
		return map[string]any{}
	}
	return c.Fields
}

// OpenEntry is one link of a document's open-chain. The chain records the
// deepest descent of the session: its length equals the maximum nesting
// depth reached, and the entry at position k is the first operation that ran
// at depth k+1.
type OpenEntry struct {
	ID        OpID           `json:"id"`
	Type      string         `json:"type"`
	SchemaURL string         `json:"schemaUrl"`
	Context   map[string]any `json:"context"`
	// Nested is the entry for the first operation opened while this one was
	// innermost, or nil if none was.
	Nested *OpenEntry `json:"open,omitempty"`
}

// EventEntry records either a point-in-time event or the close of an
// operation; the two share a shape on the wire. OpenID names the operation
// the entry is attributed to. For close entries, Nested links to the
// chronologically next close; for events it is always nil.
type EventEntry struct {
	ID        OpID           `json:"id"`
	Type      string         `json:"type"`
	SchemaURL string         `json:"schemaUrl"`
	Context   map[string]any `json:"context"`
	OpenID    OpID           `json:"openId"`
	Nested    *EventEntry    `json:"close,omitempty"`
}

// Document is the immutable result of one flushed session: the open-chain,
// the flat event list in emission order, and the close-chain in
// chronological close order. A Document with a nil Open records a session
// that flushed without ever opening an operation.
type Document struct {
	SchemaURL string        `json:"schemaUrl"`
	Open      *OpenEntry    `json:"open,omitempty"`
	Events    []*EventEntry `json:"events,omitempty"`
	Close     *EventEntry   `json:"close,omitempty"`
}

// ParseDocument decodes the wire form of a Document.
func ParseDocument(data []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, errors.Wrap(err, "logtree: invalid document")
	}
	return d, nil
}
