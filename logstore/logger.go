// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logstore

import "github.com/cockroachdb/logtree"

// badgerLogger adapts a logtree.Logger to badger's logging interface.
// Badger's debug chatter is dropped; warnings and errors route through
// Infof since the store never treats them as fatal.
type badgerLogger struct {
	logtree.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.Infof("logstore: "+format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Infof("logstore: "+format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {}
