// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cockroachdb/logtree/treeview"
	"github.com/spf13/cobra"
)

type treeT struct {
	Root *cobra.Command

	// Configuration.
	depth     int
	full      bool
	expand    []string
	threshold threshold

	formatters map[string]treeview.LabelFormatter
}

func newTree(defaults treeDefaults, formatters map[string]treeview.LabelFormatter) *treeT {
	tr := &treeT{
		threshold:  defaults.threshold,
		formatters: formatters,
	}

	tr.Root = &cobra.Command{
		Use:   "tree <file>",
		Short: "render a session document as an ASCII tree",
		Long: `
Render the operation hierarchy of a flushed session document, one line per
operation or event, with measured durations as suffixes. Output is limited
to --depth levels unless --full is given. --expand exempts the named types
and their subtrees from the depth limit. --threshold hides anything measured
faster than the cutoff.
`,
		Args: cobra.ExactArgs(1),
		Run:  tr.runTree,
	}

	tr.Root.Flags().IntVar(&tr.depth, "depth", defaults.depth, "deepest level to render")
	tr.Root.Flags().BoolVar(&tr.full, "full", false, "render all levels")
	tr.Root.Flags().StringSliceVar(&tr.expand, "expand", defaults.expand,
		"types exempt from the depth limit")
	tr.Root.Flags().Var(&tr.threshold, "threshold", "hide operations faster than this duration")
	return tr
}

func (tr *treeT) runTree(cmd *cobra.Command, args []string) {
	doc, err := readDocument(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	root, err := treeview.Build(doc)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}

	expand := make(map[string]bool)
	for _, typ := range tr.expand {
		expand[typ] = true
	}

	// Render to a buffer so that a build or render failure produces no
	// partial output.
	var buf bytes.Buffer
	err = treeview.Render(&buf, root, treeview.RenderConfig{
		MaxDepth:    tr.depth,
		FullDepth:   tr.full,
		ExpandTypes: expand,
		MinDuration: time.Duration(tr.threshold),
		Formatters:  tr.formatters,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	fmt.Fprint(stdout, buf.String())
}
