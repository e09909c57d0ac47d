// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeview

import (
	"time"
)

// LabelFormatter produces the one-line summary rendered for a node.
type LabelFormatter func(n *Node) string

// DefaultFormatters maps well-known type tags to label formatters. Types
// without a formatter render as the bare type tag.
var DefaultFormatters = map[string]LabelFormatter{
	"http_request": func(n *Node) string {
		method, _ := n.Field("method").(string)
		path, _ := n.Field("path").(string)
		if method == "" || path == "" {
			return n.Type
		}
		return method + " " + path
	},
	"db_query": func(n *Node) string {
		if query, ok := n.Field("query").(string); ok && query != "" {
			return query
		}
		if table, ok := n.Field("table").(string); ok && table != "" {
			return "query " + table
		}
		return n.Type
	},
	"cache": func(n *Node) string {
		op, _ := n.Field("op").(string)
		key, _ := n.Field("key").(string)
		if op == "" || key == "" {
			return n.Type
		}
		s := op + " " + key
		if hit, ok := n.Field("hit").(bool); ok {
			if hit {
				s += " (HIT)"
			} else {
				s += " (MISS)"
			}
		}
		return s
	},
	"log": func(n *Node) string {
		message, _ := n.Field("message").(string)
		if message == "" {
			return n.Type
		}
		if level, ok := n.Field("level").(string); ok && level != "" {
			return level + ": " + message
		}
		return message
	},
}

// DefaultTimingKeys is the ordered list of payload fields recognized as a
// node's measured duration, in milliseconds.
var DefaultTimingKeys = []string{
	"duration_ms",
	"response_time_ms",
	"query_time_ms",
	"processing_time_ms",
	"elapsed_ms",
}

// NodeDuration extracts n's measured duration: the first recognized timing
// key present, with the close payload consulted before the open context
// since timings are usually measured at close. A nil keys uses
// DefaultTimingKeys. Returns false if no timing field is present.
func NodeDuration(n *Node, keys []string) (time.Duration, bool) {
	if keys == nil {
		keys = DefaultTimingKeys
	}
	for _, payload := range []map[string]any{n.CloseInfo, n.Context} {
		for _, key := range keys {
			v, ok := payload[key]
			if !ok {
				continue
			}
			if d, ok := asMillis(v); ok {
				return d, true
			}
		}
	}
	return 0, false
}

// asMillis converts a payload value in milliseconds to a Duration. JSON
// numbers decode as float64; programmatically built contexts may carry Go
// integer types.
func asMillis(v any) (time.Duration, bool) {
	switch x := v.(type) {
	case float64:
		return time.Duration(x * float64(time.Millisecond)), true
	case int:
		return time.Duration(x) * time.Millisecond, true
	case int64:
		return time.Duration(x) * time.Millisecond, true
	}
	return 0, false
}
