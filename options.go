// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

// DefaultSchemaURL is recorded on documents whose engine did not configure a
// schema reference of its own.
const DefaultSchemaURL = "session.schema.json"

// Options holds the optional parameters for an Engine. All fields may be
// left zero; EnsureDefaults fills them in.
type Options struct {
	// SchemaURL is the document-level schema reference stamped onto every
	// flushed Document.
	//
	// The default value is DefaultSchemaURL.
	SchemaURL string

	// EventListener provides hooks into engine activity such as operations
	// opening and sessions flushing.
	EventListener EventListener

	// Logger is used for engine diagnostics.
	//
	// The default value is DefaultLogger.
	Logger Logger
}

// EnsureDefaults ensures that the default values for all options are set if
// a valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.SchemaURL == "" {
		o.SchemaURL = DefaultSchemaURL
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	o.EventListener.EnsureDefaults()
	return o
}
