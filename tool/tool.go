// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the session document introspection commands
// surfaced by the logtree CLI.
package tool

import (
	"github.com/cockroachdb/logtree/treeview"
	"github.com/spf13/cobra"
)

// T is the container for all of the session document tools.
type T struct {
	Commands []*cobra.Command
	tree     *treeT
	stats    *statsT
	store    *storeT

	formatters map[string]treeview.LabelFormatter
}

// New creates a new document tool.
func New() *T {
	t := &T{
		formatters: make(map[string]treeview.LabelFormatter),
	}

	defaults := loadEnvDefaults()
	t.tree = newTree(defaults, t.formatters)
	t.stats = newStats()
	t.store = newStore()
	t.Commands = []*cobra.Command{
		t.tree.Root,
		t.stats.Root,
		t.store.Root,
	}
	return t
}

// RegisterFormatter registers a label formatter for operations of the given
// type, overriding the built-in label in tree output.
func (t *T) RegisterFormatter(typ string, f treeview.LabelFormatter) {
	t.formatters[typ] = f
}
