// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/logtree/internal/humanize"
	"github.com/cockroachdb/logtree/treeview"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// maxDurationMs caps the duration histograms at one hour.
const maxDurationMs = int64(time.Hour / time.Millisecond)

const graphHeight = 8

type statsT struct {
	Root *cobra.Command

	// Configuration.
	graph bool
}

// typeStats aggregates the nodes of one operation type. The histogram holds
// measured durations at millisecond resolution; total is the exact sum.
type typeStats struct {
	count    int
	measured int
	total    time.Duration
	hist     *hdrhistogram.Histogram
}

func newStats() *statsT {
	s := &statsT{}

	s.Root = &cobra.Command{
		Use:   "stats <file>",
		Short: "summarize per-type durations in a session document",
		Long: `
Aggregate the measured durations of a session document's operations and
events into per-type histograms and print a summary table. Types without a
recognized timing field show "-" in the duration columns. --graph appends an
ascii profile of the measured durations in document order.
`,
		Args: cobra.ExactArgs(1),
		Run:  s.runStats,
	}

	s.Root.Flags().BoolVar(&s.graph, "graph", false, "plot the duration profile")
	return s
}

func (s *statsT) runStats(cmd *cobra.Command, args []string) {
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

	byType := make(map[string]*typeStats)
	var profile []float64
	var walk func(n *treeview.Node)
	walk = func(n *treeview.Node) {
		ts := byType[n.Type]
		if ts == nil {
			ts = &typeStats{hist: hdrhistogram.New(0, maxDurationMs, 3)}
			byType[n.Type] = ts
		}
		ts.count++
		if d, ok := treeview.NodeDuration(n, nil); ok {
			ms := d.Milliseconds()
			if ms > maxDurationMs {
				ms = maxDurationMs
			}
			if err := ts.hist.RecordValue(ms); err == nil {
				ts.measured++
				ts.total += d
				profile = append(profile, float64(d)/float64(time.Millisecond))
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	types := make([]string, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}
	slices.Sort(types)

	formatMs := func(v int64) string {
		return humanize.Duration(time.Duration(v) * time.Millisecond)
	}

	tbl := tablewriter.NewWriter(stdout)
	tbl.SetHeader([]string{"Type", "Count", "Total", "Mean", "P50", "P95", "P99", "Max"})
	for _, typ := range types {
		ts := byType[typ]
		row := []string{typ, fmt.Sprintf("%d", ts.count), "-", "-", "-", "-", "-", "-"}
		if ts.measured > 0 {
			row[2] = humanize.Duration(ts.total)
			row[3] = humanize.Millis(ts.hist.Mean())
			row[4] = formatMs(ts.hist.ValueAtPercentile(50))
			row[5] = formatMs(ts.hist.ValueAtPercentile(95))
			row[6] = formatMs(ts.hist.ValueAtPercentile(99))
			row[7] = formatMs(ts.hist.Max())
		}
		tbl.Append(row)
	}
	tbl.Render()

	if s.graph && len(profile) > 0 {
		fmt.Fprintf(stdout, "\nduration profile (ms, document order):\n%s\n",
			asciigraph.Plot(profile, asciigraph.Height(graphHeight)))
	}
}
