// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/logtree"
	"github.com/cockroachdb/logtree/logstore"
	"github.com/cockroachdb/logtree/treeview"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDemoDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "session.json")
	c := demoConfig{out: out, seed: 1, queries: 3, verbose: true}

	var errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&errBuf)
	require.NoError(t, c.runE(cmd, nil))
	require.Contains(t, errBuf.String(), "opened http_request_1 at depth 1")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc, err := logtree.ParseDocument(data)
	require.NoError(t, err)

	root, err := treeview.Build(doc)
	require.NoError(t, err)
	require.Equal(t, "http_request", root.Type)

	var buf bytes.Buffer
	require.NoError(t, treeview.Render(&buf, root, treeview.RenderConfig{FullDepth: true}))
	require.Contains(t, buf.String(), "GET /api/checkout")
	require.Contains(t, buf.String(), "auth")
	require.Contains(t, buf.String(), "query users")
}

func TestDemoStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	c := demoConfig{storeDir: dir, seed: 7, queries: 2}

	var outBuf, errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	require.NoError(t, c.runE(cmd, nil))

	// The document still goes to stdout.
	doc, err := logtree.ParseDocument(outBuf.Bytes())
	require.NoError(t, err)
	require.NotNil(t, doc.Open)

	st, err := logstore.Open(dir, nil)
	require.NoError(t, err)
	defer st.Close()
	infos, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "http_request", infos[0].RootType)
}
