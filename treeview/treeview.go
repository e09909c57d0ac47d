// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treeview reconstructs the operation tree of a flushed logtree
// Document and renders it as ASCII art for terminal inspection. Build turns
// a document's open-chain, event list, and close-chain back into a tree;
// Render walks that tree applying depth, type-expansion, and duration
// filters.
package treeview

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtree"
)

// ErrEmptyDocument is returned by Build for a document that never opened an
// operation. Such documents are valid on the wire but have nothing to
// render.
var ErrEmptyDocument = errors.New("logtree/treeview: document has no operations")

// ErrMalformedDocument marks every error arising from a document whose
// entries reference operations that are not on its open-chain. Test with
// errors.Is.
var ErrMalformedDocument = errors.New("logtree/treeview: malformed document")

// UnknownOpError reports an event or close entry whose OpenID does not name
// any operation on the document's open-chain. It is marked with
// ErrMalformedDocument.
type UnknownOpError struct {
	// Kind is "event" or "close".
	Kind string
	// ID is the id of the offending entry.
	ID logtree.OpID
	// OpenID is the unresolvable operation reference.
	OpenID logtree.OpID
}

var _ error = (*UnknownOpError)(nil)

// Error implements the error interface.
func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("logtree/treeview: %s %s references unknown operation %s",
		e.Kind, e.ID, e.OpenID)
}

// Node is one operation or event in the reconstructed tree. Children holds
// the nested operation (if the open-chain descends through this node)
// followed by this node's events in chronological order.
type Node struct {
	ID      logtree.OpID
	Type    string
	Context map[string]any
	// CloseInfo is the payload recorded when the operation closed; nil for
	// event nodes.
	CloseInfo map[string]any
	// Event marks leaf nodes built from point-in-time event entries.
	Event    bool
	Children []*Node
}

// Field looks up a payload field, consulting the open-time context first
// and the close payload second.
func (n *Node) Field(key string) any {
	if v, ok := n.Context[key]; ok {
		return v
	}
	if v, ok := n.CloseInfo[key]; ok {
		return v
	}
	return nil
}

// Build reconstructs the operation tree of doc.
//
// The open-chain fixes the nesting skeleton, one node per entry in
// parent→child order. Each event entry attaches as a leaf child of the node
// its OpenID names, preserving chronological sibling order. Each close
// entry attaches its payload as the named node's CloseInfo.
//
// Any OpenID that does not resolve to a chain node fails the build with an
// error marked ErrMalformedDocument; a dangling reference means a corrupted
// or hand-edited document and is never silently dropped.
func Build(doc *logtree.Document) (*Node, error) {
	if doc == nil || doc.Open == nil {
		return nil, ErrEmptyDocument
	}

	byID := make(map[logtree.OpID]*Node)
	var root, parent *Node
	for entry := doc.Open; entry != nil; entry = entry.Nested {
		if _, ok := byID[entry.ID]; ok {
			return nil, errors.Mark(
				errors.Newf("logtree/treeview: duplicate operation id %s", entry.ID),
				ErrMalformedDocument)
		}
		n := &Node{ID: entry.ID, Type: entry.Type, Context: entry.Context}
		byID[entry.ID] = n
		if parent == nil {
			root = n
		} else {
			parent.Children = append(parent.Children, n)
		}
		parent = n
	}

	for _, ev := range doc.Events {
		owner, ok := byID[ev.OpenID]
		if !ok {
			return nil, errors.Mark(
				&UnknownOpError{Kind: "event", ID: ev.ID, OpenID: ev.OpenID},
				ErrMalformedDocument)
		}
		owner.Children = append(owner.Children, &Node{
			ID:      ev.ID,
			Type:    ev.Type,
			Context: ev.Context,
			Event:   true,
		})
	}

	closed := make(map[logtree.OpID]bool)
	for entry := doc.Close; entry != nil; entry = entry.Nested {
		owner, ok := byID[entry.OpenID]
		if !ok {
			return nil, errors.Mark(
				&UnknownOpError{Kind: "close", ID: entry.ID, OpenID: entry.OpenID},
				ErrMalformedDocument)
		}
		if closed[entry.OpenID] {
			return nil, errors.Mark(
				errors.Newf("logtree/treeview: duplicate close for operation %s", entry.OpenID),
				ErrMalformedDocument)
		}
		closed[entry.OpenID] = true
		owner.CloseInfo = entry.Context
	}
	return root, nil
}
