// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeprinter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleNode(t *testing.T) {
	tp := New()
	tp.Child("root")
	require.Equal(t, "root\n", tp.String())
}

func TestNested(t *testing.T) {
	tp := New()
	root := tp.Child("root")
	root.Child("child-1")
	n := root.Child("child-2")
	n.Child("grandchild-1")
	n.Childf("grandchild-%d", 2)
	root.Child("child-3")

	expected := `root
├── child-1
├── child-2
│   ├── grandchild-1
│   └── grandchild-2
└── child-3
`
	require.Equal(t, expected, tp.String())
}

func TestDeepLastChildIndent(t *testing.T) {
	tp := New()
	root := tp.Child("a")
	b := root.Child("b")
	b.Child("c").Child("d")
	root.Child("e")

	expected := `a
├── b
│   └── c
│       └── d
└── e
`
	require.Equal(t, expected, tp.String())
}

func TestStringFromAnyHandle(t *testing.T) {
	tp := New()
	root := tp.Child("root")
	leaf := root.Child("leaf")
	// String renders the whole tree no matter which handle is used.
	require.Equal(t, tp.String(), leaf.String())
}
