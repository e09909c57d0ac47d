// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treeprinter builds trees of single-line text nodes and renders
// them using box-drawing connectors:
//
//	root
//	├── child-1
//	│   └── grandchild
//	└── child-2
//
// Usage:
//
//	tp := treeprinter.New()
//	root := tp.Child("root")
//	root.Child("child-1").Child("grandchild")
//	root.Child("child-2")
//	fmt.Print(tp.String())
package treeprinter

import (
	"bytes"
	"fmt"
)

const (
	edge     = "├── "
	lastEdge = "└── "
	vertical = "│   "
	blank    = "    "
)

type tree struct {
	// nodes[0] is a hidden root; its children render at the left margin.
	nodes []printNode
}

type printNode struct {
	text     string
	children []int
}

// Node is a handle for a node in the tree. Adding a child to a node after
// formatting has started is not supported.
type Node struct {
	t  *tree
	id int
}

// New creates a tree and returns a handle for its hidden root.
func New() Node {
	return Node{t: &tree{nodes: make([]printNode, 1)}}
}

// Child adds a node as a child of n and returns its handle. The text must be
// a single line.
func (n Node) Child(text string) Node {
	t := n.t
	child := len(t.nodes)
	t.nodes = append(t.nodes, printNode{text: text})
	t.nodes[n.id].children = append(t.nodes[n.id].children, child)
	return Node{t: t, id: child}
}

// Childf adds a child with formatted text.
func (n Node) Childf(format string, args ...interface{}) Node {
	return n.Child(fmt.Sprintf(format, args...))
}

// String renders the entire tree (regardless of which node the method is
// invoked on), one line per node, with a trailing newline after every line.
func (n Node) String() string {
	t := n.t
	var buf bytes.Buffer
	for _, c := range t.nodes[0].children {
		t.format(&buf, c, "", "")
	}
	return buf.String()
}

func (t *tree) format(buf *bytes.Buffer, id int, prefix, childIndent string) {
	buf.WriteString(prefix)
	buf.WriteString(t.nodes[id].text)
	buf.WriteByte('\n')
	children := t.nodes[id].children
	for i, c := range children {
		if i == len(children)-1 {
			t.format(buf, c, childIndent+lastEdge, childIndent+blank)
		} else {
			t.format(buf, c, childIndent+edge, childIndent+vertical)
		}
	}
}
