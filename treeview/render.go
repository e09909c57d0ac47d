// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeview

import (
	"io"
	"time"

	"github.com/cockroachdb/logtree/internal/humanize"
	"github.com/cockroachdb/logtree/internal/treeprinter"
)

// RenderConfig controls how much of a tree Render shows. The zero value
// renders two levels with no duration filtering.
type RenderConfig struct {
	// MaxDepth is the deepest level rendered; nodes below it are replaced by
	// a "..." marker. The root is at depth 1. Zero means the default of 2.
	MaxDepth int
	// FullDepth disables depth truncation entirely.
	FullDepth bool
	// ExpandTypes exempts operations of the named types, and their entire
	// subtrees, from depth truncation.
	ExpandTypes map[string]bool
	// MinDuration prunes nodes (and their subtrees) whose measured duration
	// is below the threshold. Nodes with no recognized timing field are
	// never pruned. Independent of the depth logic: a slow node past
	// MaxDepth still truncates unless its type is expanded.
	MinDuration time.Duration
	// Formatters overrides or extends DefaultFormatters per type tag.
	Formatters map[string]LabelFormatter
	// TimingKeys overrides DefaultTimingKeys.
	TimingKeys []string
}

// EnsureDefaults ensures that the default values for all options are set if
// a valid value was not already specified.
func (c *RenderConfig) EnsureDefaults() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = 2
	}
	if c.TimingKeys == nil {
		c.TimingKeys = DefaultTimingKeys
	}
}

// Render writes the ASCII tree for root to w, one line per node, with
// box-drawing connectors. Nodes carrying a measured duration render it as a
// suffix, e.g.
//
//	GET /api/users (680.2ms)
//	└── query users (520.3ms)
//	    └── ...
func Render(w io.Writer, root *Node, cfg RenderConfig) error {
	cfg.EnsureDefaults()
	tp := treeprinter.New()
	r := renderer{cfg: cfg}
	r.node(tp, root, 1, false)
	_, err := io.WriteString(w, tp.String())
	return err
}

type renderer struct {
	cfg RenderConfig
}

// node adds n (and recursively its children) under parent. expanded is
// sticky: once an ExpandTypes match is seen, the whole subtree below it is
// exempt from depth truncation.
func (r *renderer) node(parent treeprinter.Node, n *Node, depth int, expanded bool) {
	if d, ok := NodeDuration(n, r.cfg.TimingKeys); ok && d < r.cfg.MinDuration {
		return
	}
	expanded = expanded || r.cfg.ExpandTypes[n.Type]
	if !r.cfg.FullDepth && !expanded && depth > r.cfg.MaxDepth {
		parent.Child("...")
		return
	}
	tn := parent.Child(r.label(n))
	for _, c := range n.Children {
		r.node(tn, c, depth+1, expanded)
	}
}

func (r *renderer) label(n *Node) string {
	f := r.cfg.Formatters[n.Type]
	if f == nil {
		f = DefaultFormatters[n.Type]
	}
	var s string
	if f != nil {
		s = f(n)
	} else {
		s = n.Type
	}
	if d, ok := NodeDuration(n, r.cfg.TimingKeys); ok {
		s += " (" + humanize.Duration(d) + ")"
	}
	return s
}
