// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import "github.com/cockroachdb/redact"

// OpenInfo contains the info for an operation-opened event.
type OpenInfo struct {
	ID   OpID
	Type string
	// Depth is the stack depth after the open; 1 for a root operation.
	Depth int
}

// String implements fmt.Stringer.
func (i OpenInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i OpenInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] opened %s at depth %d", redact.SafeString(i.Type), i.ID, redact.Safe(i.Depth))
}

// LogInfo contains the info for an event-logged event.
type LogInfo struct {
	ID   OpID
	Type string
	// OpenID is the id of the open operation the event was attributed to.
	OpenID OpID
}

// String implements fmt.Stringer.
func (i LogInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i LogInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] logged %s under %s", redact.SafeString(i.Type), i.ID, i.OpenID)
}

// CloseInfo contains the info for an operation-closed event.
type CloseInfo struct {
	// ID is the id of the close entry itself.
	ID   OpID
	Type string
	// OpenID is the id of the operation that closed.
	OpenID OpID
	// Depth is the stack depth the operation closed at.
	Depth int
}

// String implements fmt.Stringer.
func (i CloseInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i CloseInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] closed %s at depth %d", redact.SafeString(i.Type), i.OpenID, redact.Safe(i.Depth))
}

// FlushInfo contains the info for a session-flushed event.
type FlushInfo struct {
	SchemaURL  string
	Operations uint64
	Events     uint64
	MaxDepth   int
	// Err is set if the flush failed, e.g. because operations were still
	// open.
	Err error
}

// String implements fmt.Stringer.
func (i FlushInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i FlushInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	if i.Err != nil {
		w.Printf("flush failed: %s", i.Err)
		return
	}
	w.Printf("flushed session (%s): %d operation(s), %d event(s), max depth %d",
		redact.SafeString(i.SchemaURL), redact.Safe(i.Operations),
		redact.Safe(i.Events), redact.Safe(i.MaxDepth))
}

// EventListener contains a set of functions that will be invoked when
// various significant engine events occur. The functions are invoked
// synchronously by the engine and should not run for an excessive amount of
// time.
type EventListener struct {
	// OperationOpened is invoked after an operation has been pushed onto the
	// stack.
	OperationOpened func(OpenInfo)
	// EventLogged is invoked after a point-in-time event has been recorded.
	EventLogged func(LogInfo)
	// OperationClosed is invoked after an operation has been popped off the
	// stack.
	OperationClosed func(CloseInfo)
	// SessionFlushed is invoked when a flush completes or fails.
	SessionFlushed func(FlushInfo)
}

// EnsureDefaults ensures all the fields are set to valid no-op functions so
// the engine doesn't have to check for nil-ness before invoking.
func (l *EventListener) EnsureDefaults() {
	if l.OperationOpened == nil {
		l.OperationOpened = func(info OpenInfo) {}
	}
	if l.EventLogged == nil {
		l.EventLogged = func(info LogInfo) {}
	}
	if l.OperationClosed == nil {
		l.OperationClosed = func(info CloseInfo) {}
	}
	if l.SessionFlushed == nil {
		l.SessionFlushed = func(info FlushInfo) {}
	}
}

// MakeLoggingEventListener creates an EventListener that logs all events to
// the specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger{}
	}
	return EventListener{
		OperationOpened: func(info OpenInfo) {
			logger.Infof("%s", info)
		},
		EventLogged: func(info LogInfo) {
			logger.Infof("%s", info)
		},
		OperationClosed: func(info CloseInfo) {
			logger.Infof("%s", info)
		},
		SessionFlushed: func(info FlushInfo) {
			logger.Infof("%s", info)
		},
	}
}
