// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package humanize provides routines to produce human-readable quantities.
package humanize

import (
	"fmt"
	"time"
)

// Duration formats d with a unit chosen by magnitude: microseconds below one
// millisecond, milliseconds below one second, seconds otherwise. One decimal
// place in all cases.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
	}
}

// Millis formats a quantity of (possibly fractional) milliseconds; see
// Duration.
func Millis(ms float64) string {
	return Duration(time.Duration(ms * float64(time.Millisecond)))
}
