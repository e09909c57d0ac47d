// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// runStore executes one store command, capturing stdout and stderr. Session
// ids are nondeterministic, so these tests assert on the output instead of
// using the golden-file harness.
func runStore(t *testing.T, args ...string) (string, error) {
	t.Helper()
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
	c.SetArgs(append([]string{"store"}, args...))
	c.SetOutput(&buf)
	err := c.Execute()
	return buf.String(), err
}

func TestStorePutListGet(t *testing.T) {
	dir := t.TempDir()

	out, err := runStore(t, "put", dir, "testdata/session.json")
	require.NoError(t, err)
	id, err := ulid.ParseStrict(strings.TrimSpace(out))
	require.NoError(t, err)

	out, err = runStore(t, "ls", dir)
	require.NoError(t, err)
	require.Contains(t, out, id.String())
	require.Contains(t, out, "http_request")
	require.Contains(t, out, "1 event(s)")

	out, err = runStore(t, "get", dir, id.String())
	require.NoError(t, err)
	require.Contains(t, out, `"schemaUrl": "session.schema.json"`)
	require.Contains(t, out, `"id": "http_request_1"`)
}

func TestStoreGetMissing(t *testing.T) {
	out, err := runStore(t, "get", t.TempDir(), ulid.Make().String())
	require.NoError(t, err)
	require.Contains(t, out, "logstore: session not found")
}

func TestStoreGetBadID(t *testing.T) {
	out, err := runStore(t, "get", t.TempDir(), "not-a-ulid")
	require.NoError(t, err)
	require.Contains(t, out, "ulid: ")
}
