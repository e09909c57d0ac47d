// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import "fmt"

// idAlloc hands out per-type monotonic ids of the form <type>_<n>. Counters
// start at 1 and never reset within a session, so an id allocated once is
// never reissued even after its operation closes.
type idAlloc struct {
	counters map[string]int
}

func (a *idAlloc) next(typ string) OpID {
	if a.counters == nil {
		a.counters = make(map[string]int)
	}
	a.counters[typ]++
	return OpID(fmt.Sprintf("%s_%d", typ, a.counters[typ]))
}
