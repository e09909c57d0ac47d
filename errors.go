// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNoOpenOperations is returned when an event or close is recorded while
// no operation is open. It indicates a broken open/close discipline in the
// caller and should surface as a bug, not be swallowed.
var ErrNoOpenOperations = errors.New("logtree: no open operations")

// InvalidOrderError is returned by Close when the provided id does not name
// the innermost open operation. Operations must close in the exact reverse
// of their open order; the engine reports the mismatch instead of silently
// reordering so that the caller bug surfaces where it happens.
type InvalidOrderError struct {
	// Provided is the id the caller asked to close.
	Provided OpID
	// Expected is the id of the innermost open operation, the only one that
	// may close next.
	Expected OpID
}

var _ error = (*InvalidOrderError)(nil)

// Error implements the error interface.
func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("logtree: out-of-order close of %s; innermost open operation is %s",
		e.Provided, e.Expected)
}

// UnclosedError is returned by Flush when operations remain open. The
// innermost operation's type and schema reference identify where the
// missing Close most likely belongs.
type UnclosedError struct {
	// Depth is the number of operations still open.
	Depth int
	// TopType is the type tag of the innermost still-open operation.
	TopType string
	// TopSchemaURL is that operation's schema reference.
	TopSchemaURL string
}

var _ error = (*UnclosedError)(nil)

// Error implements the error interface.
func (e *UnclosedError) Error() string {
	return fmt.Sprintf("logtree: flush with %d open operation(s); innermost is %s (%s)",
		e.Depth, e.TopType, e.TopSchemaURL)
}
