// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/logtree/logstore"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

// storeT implements archive-level tools, including both configuration state
// and the commands themselves.
type storeT struct {
	Root *cobra.Command
	Put  *cobra.Command
	List *cobra.Command
	Get  *cobra.Command
}

func newStore() *storeT {
	s := &storeT{}

	s.Root = &cobra.Command{
		Use:   "store",
		Short: "session document archive tools",
	}
	s.Put = &cobra.Command{
		Use:   "put <dir> <file>",
		Short: "archive a session document",
		Long: `
Archive a flushed session document in the store, assigning it a fresh ULID
session id. The id is printed on success.
`,
		Args: cobra.ExactArgs(2),
		Run:  s.runPut,
	}
	s.List = &cobra.Command{
		Use:   "ls <dir>",
		Short: "list archived sessions",
		Long: `
List the archived sessions in id order: session id, archive time, root
operation type, and event count.
`,
		Args: cobra.ExactArgs(1),
		Run:  s.runList,
	}
	s.Get = &cobra.Command{
		Use:   "get <dir> <id>",
		Short: "print an archived session document",
		Long: `
Print the JSON document archived under the given session id.
`,
		Args: cobra.ExactArgs(2),
		Run:  s.runGet,
	}

	s.Root.AddCommand(s.Put, s.List, s.Get)
	return s
}

func (s *storeT) runPut(cmd *cobra.Command, args []string) {
	doc, err := readDocument(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	st, err := logstore.Open(args[0], nil)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	defer st.Close()

	id, err := st.Put(doc)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	fmt.Fprintf(stdout, "%s\n", id)
}

func (s *storeT) runList(cmd *cobra.Command, args []string) {
	st, err := logstore.Open(args[0], nil)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	defer st.Close()

	infos, err := st.List(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	for _, info := range infos {
		rootType := info.RootType
		if rootType == "" {
			rootType = "-"
		}
		fmt.Fprintf(stdout, "%s  %s  %s  %d event(s)\n",
			info.ID, info.Time.UTC().Format(time.RFC3339), rootType, info.Events)
	}
}

func (s *storeT) runGet(cmd *cobra.Command, args []string) {
	id, err := ulid.ParseStrict(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	st, err := logstore.Open(args[0], nil)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	defer st.Close()

	doc, err := st.Get(id)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	fmt.Fprintf(stdout, "%s\n", data)
}
