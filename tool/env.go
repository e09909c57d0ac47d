// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// treeDefaults holds tree command flag defaults sourced from the LOGTREE_*
// environment variables. Explicit flags win over the environment.
type treeDefaults struct {
	depth     int
	threshold threshold
	expand    []string
}

// loadEnvDefaults reads LOGTREE_DEPTH, LOGTREE_THRESHOLD and LOGTREE_EXPAND
// (comma-separated types). Malformed values are ignored rather than failing
// command startup.
func loadEnvDefaults() treeDefaults {
	d := treeDefaults{depth: 2}

	k := koanf.New(".")
	err := k.Load(env.Provider("LOGTREE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LOGTREE_"))
	}), nil)
	if err != nil {
		return d
	}

	if v := k.Int("depth"); v > 0 {
		d.depth = v
	}
	if v := k.String("threshold"); v != "" {
		_ = d.threshold.Set(v)
	}
	if v := k.String("expand"); v != "" {
		d.expand = strings.Split(v, ",")
	}
	return d
}
