// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	runTests(t, "testdata/stats")
}

// The plot layout is asciigraph's concern; assert only that a profile is
// appended after the table.
func TestStatsGraph(t *testing.T) {
	var buf bytes.Buffer
	stdout = &buf
	stderr = &buf
	osExit = func(int) {}
	defer func() {
		stdout = os.Stdout
		stderr = os.Stderr
		osExit = os.Exit
	}()

	c := &cobra.Command{}
	c.AddCommand(New().Commands...)
	c.SetArgs([]string{"stats", "testdata/batch.json", "--graph"})
	c.SetOutput(&buf)
	require.NoError(t, c.Execute())

	out := buf.String()
	require.Contains(t, out, "| db_query  |")
	require.Contains(t, out, "duration profile (ms, document order):")
	require.Contains(t, out, "┤")
}
