// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

// opStack tracks the currently-open operations, innermost last. It enforces
// the LIFO close discipline: only the innermost operation may be popped, and
// only by its own id.
type opStack struct {
	entries []*OpenEntry
}

func (s *opStack) push(e *OpenEntry) {
	s.entries = append(s.entries, e)
}

// peek returns the innermost open entry, or ErrNoOpenOperations if the stack
// is empty.
func (s *opStack) peek() (*OpenEntry, error) {
	if len(s.entries) == 0 {
		return nil, ErrNoOpenOperations
	}
	return s.entries[len(s.entries)-1], nil
}

// pop removes and returns the innermost entry after verifying that id names
// it. A mismatch fails with InvalidOrderError and leaves the stack
// untouched.
func (s *opStack) pop(id OpID) (*OpenEntry, error) {
	top, err := s.peek()
	if err != nil {
		return nil, err
	}
	if top.ID != id {
		return nil, &InvalidOrderError{Provided: id, Expected: top.ID}
	}
	s.entries = s.entries[:len(s.entries)-1]
	return top, nil
}

func (s *opStack) depth() int {
	return len(s.entries)
}

// topType and topSchemaURL describe the innermost open operation for flush
// diagnostics. They require a non-empty stack.
func (s *opStack) topType() string {
	return s.entries[len(s.entries)-1].Type
}

func (s *opStack) topSchemaURL() string {
	return s.entries[len(s.entries)-1].SchemaURL
}
