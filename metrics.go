// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import "github.com/cockroachdb/redact"

// Metrics holds counters for one engine lifetime. Reset zeroes them along
// with the rest of the engine state.
type Metrics struct {
	// Opens is the number of operations opened.
	Opens uint64
	// Events is the number of point-in-time events logged.
	Events uint64
	// Closes is the number of operations closed.
	Closes uint64
	// MaxDepth is the deepest simultaneous nesting reached.
	MaxDepth int
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("opens: %d  events: %d  closes: %d  max depth: %d",
		redact.Safe(m.Opens), redact.Safe(m.Events),
		redact.Safe(m.Closes), redact.Safe(m.MaxDepth))
}
