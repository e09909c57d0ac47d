// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package logtree provides a hierarchical correlation logger. Callers mark
// the start ("open") and end ("close") of nested units of work and emit
// point-in-time events attributed to the innermost open operation; a
// completed session flushes into an immutable, tree-shaped Document suitable
// for causal performance analysis ("the request took 680ms because auth took
// 520ms"). The treeview package reconstructs and renders flushed documents.
package logtree // import "github.com/cockroachdb/logtree"

// Engine drives one logging session. It owns an operation stack and an id
// allocator, accumulates event entries, and assembles the final Document on
// Flush.
//
// An Engine is owned by the single logical session (e.g. one request) that
// constructed it and must not be shared between goroutines; it needs no
// internal locking under that contract. Recursive use, opening and closing
// operations from nested function calls, is the expected pattern.
type Engine struct {
	opts  *Options
	alloc idAlloc
	stack opStack

	root      *OpenEntry
	events    []*EventEntry
	closeRoot *EventEntry
	closeTail *EventEntry

	metrics Metrics
	flushed bool
}

// NewEngine creates an Engine for a new logging session.
func NewEngine(opts *Options) *Engine {
	return &Engine{opts: opts.EnsureDefaults()}
}

// Open marks the start of a new operation described by ctx and returns its
// id. If another operation is already open, the new one nests under it.
func (e *Engine) Open(ctx Context) OpID {
	e.mustNotBeFlushed()
	entry := &OpenEntry{
		ID:        e.alloc.next(ctx.Type),
		Type:      ctx.Type,
		SchemaURL: ctx.schemaURL(),
		Context:   ctx.fields(),
	}
	if top, err := e.stack.peek(); err == nil {
		// First descent through a level wins: re-opening at a depth the chain
		// already descended through leaves the chain untouched, so its length
		// always equals the deepest nesting reached.
		if top.Nested == nil {
			top.Nested = entry
		}
	} else if e.root == nil {
		e.root = entry
	}
	e.stack.push(entry)
	e.metrics.Opens++
	if d := e.stack.depth(); d > e.metrics.MaxDepth {
		e.metrics.MaxDepth = d
	}
	e.opts.EventListener.OperationOpened(OpenInfo{
		ID:    entry.ID,
		Type:  entry.Type,
		Depth: e.stack.depth(),
	})
	return entry.ID
}

// Event records a point-in-time occurrence attributed to the innermost open
// operation and returns the id of the recorded entry. It fails with
// ErrNoOpenOperations if nothing is open: an event with no enclosing
// operation has no place in the tree.
func (e *Engine) Event(ctx Context) (OpID, error) {
	e.mustNotBeFlushed()
	top, err := e.stack.peek()
	if err != nil {
		return "", err
	}
	entry := &EventEntry{
		ID:        e.alloc.next(ctx.Type),
		Type:      ctx.Type,
		SchemaURL: ctx.schemaURL(),
		Context:   ctx.fields(),
		OpenID:    top.ID,
	}
	e.events = append(e.events, entry)
	e.metrics.Events++
	e.opts.EventListener.EventLogged(LogInfo{
		ID:     entry.ID,
		Type:   entry.Type,
		OpenID: top.ID,
	})
	return entry.ID, nil
}

// Close marks the end of the operation identified by id, recording ctx as
// its final state. Operations must close in the exact reverse of their open
// order; a mismatch fails with InvalidOrderError and leaves the stack
// untouched. Returns the id of the close entry.
func (e *Engine) Close(ctx Context, id OpID) (OpID, error) {
	e.mustNotBeFlushed()
	depth := e.stack.depth()
	if _, err := e.stack.pop(id); err != nil {
		return "", err
	}
	entry := &EventEntry{
		ID:        e.alloc.next(ctx.Type),
		Type:      ctx.Type,
		SchemaURL: ctx.schemaURL(),
		Context:   ctx.fields(),
		OpenID:    id,
	}
	// The close-chain records closes in chronological call order: the first
	// close of the session is the chain root and each later close nests one
	// level deeper, independent of which nesting level it closed.
	if e.closeRoot == nil {
		e.closeRoot = entry
	} else {
		e.closeTail.Nested = entry
	}
	e.closeTail = entry
	e.metrics.Closes++
	e.opts.EventListener.OperationClosed(CloseInfo{
		ID:     entry.ID,
		Type:   entry.Type,
		OpenID: id,
		Depth:  depth,
	})
	return entry.ID, nil
}

// Flush completes the session and returns its Document. It fails with
// UnclosedError if any operation is still open; the error carries the
// remaining depth and the innermost operation's type and schema reference
// for triage. Do not catch UnclosedError merely to peek at incomplete
// results: an unclosed session means a Close call is missing and the
// resulting tree would be wrong.
//
// On success the engine is consumed and further operations panic. Use Reset
// to start a new session.
func (e *Engine) Flush() (*Document, error) {
	e.mustNotBeFlushed()
	if d := e.stack.depth(); d > 0 {
		err := &UnclosedError{
			Depth:        d,
			TopType:      e.stack.topType(),
			TopSchemaURL: e.stack.topSchemaURL(),
		}
		e.opts.EventListener.SessionFlushed(FlushInfo{
			SchemaURL: e.opts.SchemaURL,
			Err:       err,
		})
		return nil, err
	}
	doc := &Document{
		SchemaURL: e.opts.SchemaURL,
		Open:      e.root,
		Events:    e.events,
		Close:     e.closeRoot,
	}
	e.flushed = true
	e.opts.EventListener.SessionFlushed(FlushInfo{
		SchemaURL:  doc.SchemaURL,
		Operations: e.metrics.Opens,
		Events:     e.metrics.Events,
		MaxDepth:   e.metrics.MaxDepth,
	})
	return doc, nil
}

// Reset reinitializes the engine for a new session, dropping all accumulated
// state including the allocated id counters. It is equivalent to replacing
// the engine with NewEngine(opts).
func (e *Engine) Reset() {
	*e = Engine{opts: e.opts}
}

// Metrics returns counters for the current engine lifetime.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

func (e *Engine) mustNotBeFlushed() {
	if e.flushed {
		panic("logtree: engine used after Flush")
	}
}
