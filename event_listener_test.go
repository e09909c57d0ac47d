// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logtree

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufferLogger struct {
	buf bytes.Buffer
}

func (l *bufferLogger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteByte('\n')
}

func (l *bufferLogger) Fatalf(format string, args ...interface{}) {
	l.Infof(format, args...)
}

func TestMakeLoggingEventListener(t *testing.T) {
	var logger bufferLogger
	e := NewEngine(&Options{
		EventListener: MakeLoggingEventListener(&logger),
	})

	req := e.Open(Context{Type: "http_request"})
	q := e.Open(Context{Type: "db_query"})
	_, err := e.Event(Context{Type: "log"})
	require.NoError(t, err)
	_, err = e.Close(Context{Type: "db_query"}, q)
	require.NoError(t, err)
	_, err = e.Close(Context{Type: "http_request"}, req)
	require.NoError(t, err)
	_, err = e.Flush()
	require.NoError(t, err)

	require.Equal(t, `[http_request] opened http_request_1 at depth 1
[db_query] opened db_query_1 at depth 2
[log] logged log_1 under db_query_1
[db_query] closed db_query_1 at depth 2
[http_request] closed http_request_1 at depth 1
flushed session (session.schema.json): 2 operation(s), 1 event(s), max depth 2
`, logger.buf.String())
}

func TestFlushFailureNotifiesListener(t *testing.T) {
	var infos []FlushInfo
	e := NewEngine(&Options{
		EventListener: EventListener{
			SessionFlushed: func(info FlushInfo) { infos = append(infos, info) },
		},
	})
	e.Open(Context{Type: "op"})
	_, err := e.Flush()
	require.Error(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, err, infos[0].Err)
}
