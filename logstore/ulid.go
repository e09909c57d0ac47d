// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logstore

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

// ulidSource provides monotonic ULID generation: ids assigned within the
// same millisecond still sort in assignment order.
type ulidSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newULIDSource() *ulidSource {
	return &ulidSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Now generates a new ULID at the current time.
func (s *ulidSource) Now() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy)
}
