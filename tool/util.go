// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/logtree"
)

var stdout = io.Writer(os.Stdout)
var stderr = io.Writer(os.Stderr)
var osExit = os.Exit

// threshold is a flag value holding a duration cutoff. It accepts Go
// duration syntax ("50ms", "1.5s") and bare numbers, which are read as
// milliseconds to match the unit of document timing fields.
type threshold time.Duration

func (t *threshold) String() string {
	return time.Duration(*t).String()
}

func (t *threshold) Type() string {
	return "duration"
}

func (t *threshold) Set(v string) error {
	if ms, err := strconv.ParseFloat(v, 64); err == nil {
		*t = threshold(time.Duration(ms * float64(time.Millisecond)))
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*t = threshold(d)
	return nil
}

func readDocument(path string) (*logtree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return logtree.ParseDocument(data)
}
