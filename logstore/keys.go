// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package logstore

import (
	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid/v2"
)

// Key prefixes for the record kinds in badger.
const (
	prefixDoc  = "d:" // full document JSON: d:<ulid>
	prefixMeta = "m:" // listing record: m:<ulid>

	ulidLen = 26
)

func encodeDocKey(id ulid.ULID) []byte {
	key := make([]byte, 0, len(prefixDoc)+ulidLen)
	key = append(key, prefixDoc...)
	key = append(key, id.String()...)
	return key
}

func encodeMetaKey(id ulid.ULID) []byte {
	key := make([]byte, 0, len(prefixMeta)+ulidLen)
	key = append(key, prefixMeta...)
	key = append(key, id.String()...)
	return key
}

func metaPrefix() []byte {
	return []byte(prefixMeta)
}

func decodeMetaKey(key []byte) (ulid.ULID, error) {
	if len(key) != len(prefixMeta)+ulidLen {
		return ulid.ULID{}, errors.Newf("logstore: malformed meta key %q", key)
	}
	return ulid.ParseStrict(string(key[len(prefixMeta):]))
}
