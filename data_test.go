// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestEngine drives an Engine through datadriven scripts. Supported
// commands:
//
//	define [schema=<url>]
//	  Start a fresh engine.
//
//	open type=<type> [schema=<url>] [fields=(k=v, ...)]
//	  Open an operation; outputs its id.
//
//	event type=<type> [schema=<url>] [fields=(k=v, ...)]
//	  Log an event; outputs its id or an error.
//
//	close id=<id> type=<type> [schema=<url>] [fields=(k=v, ...)]
//	  Close an operation; outputs the close entry id or an error.
//
//	flush
//	  Flush the session; outputs the document JSON or an error.
//
//	reset
//	  Reset the engine.
//
//	metrics
//	  Output the engine metrics.
func TestEngine(t *testing.T) {
	var e *Engine
	datadriven.RunTest(t, "testdata/engine", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "define":
			opts := &Options{}
			td.MaybeScanArgs(t, "schema", &opts.SchemaURL)
			e = NewEngine(opts)
			return ""

		case "open":
			return string(e.Open(scanContext(t, td)))

		case "event":
			id, err := e.Event(scanContext(t, td))
			if err != nil {
				return err.Error()
			}
			return string(id)

		case "close":
			var id string
			td.ScanArgs(t, "id", &id)
			closeID, err := e.Close(scanContext(t, td), OpID(id))
			if err != nil {
				return err.Error()
			}
			return string(closeID)

		case "flush":
			doc, err := e.Flush()
			if err != nil {
				return err.Error()
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				td.Fatalf(t, "%v", err)
			}
			return string(data)

		case "reset":
			e.Reset()
			return ""

		case "metrics":
			return e.Metrics().String()

		default:
			td.Fatalf(t, "unknown command: %s", td.Cmd)
			return ""
		}
	})
}

// scanContext assembles a Context from the type, schema, and fields
// arguments. Field values parse as int, then float, then fall back to
// string, mirroring how JSON numbers round-trip.
func scanContext(t *testing.T, td *datadriven.TestData) Context {
	var ctx Context
	td.ScanArgs(t, "type", &ctx.Type)
	td.MaybeScanArgs(t, "schema", &ctx.SchemaURL)
	for _, arg := range td.CmdArgs {
		if arg.Key != "fields" {
			continue
		}
		ctx.Fields = make(map[string]any, len(arg.Vals))
		for _, kv := range arg.Vals {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				td.Fatalf(t, "malformed field %q", kv)
			}
			if n, err := strconv.Atoi(v); err == nil {
				ctx.Fields[k] = n
			} else if f, err := strconv.ParseFloat(v, 64); err == nil {
				ctx.Fields[k] = f
			} else {
				ctx.Fields[k] = v
			}
		}
	}
	return ctx
}
