// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package logstore archives flushed logtree documents in a local badger
// store. Each document is filed under a monotonic ULID session id, so a
// plain key scan lists sessions in the order they were archived.
package logstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtree"
	"github.com/dgraph-io/badger/v4"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrClosed is returned when operating on a closed store.
var ErrClosed = errors.New("logstore: store closed")

// ErrNotFound is returned when no session exists under the requested id.
var ErrNotFound = errors.New("logstore: session not found")

// Options holds the optional parameters for a Store.
type Options struct {
	// Logger receives badger's internal log messages. Nil leaves them
	// disabled.
	Logger logtree.Logger

	// PutLatency, if set, records the latency of Put calls.
	PutLatency prometheus.Histogram
}

// EnsureDefaults ensures that the default values for all options are set if
// a valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	return o
}

// Store is a durable archive of flushed documents.
type Store struct {
	opts  *Options
	db    *badger.DB
	ulids *ulidSource

	mu     sync.RWMutex
	closed bool
}

// SessionInfo summarizes one archived session.
type SessionInfo struct {
	ID ulid.ULID
	// Time is when the session was archived, recovered from the ULID
	// timestamp.
	Time time.Time
	// RootType is the type of the root operation, or "" for a document that
	// never opened one.
	RootType string
	// Events is the number of point-in-time events in the document.
	Events int
}

// sessionMeta is the value stored under the meta key, kept small so listing
// does not deserialize whole documents.
type sessionMeta struct {
	SchemaURL string `json:"schemaUrl"`
	RootType  string `json:"rootType,omitempty"`
	Events    int    `json:"events"`
}

// Open creates or opens a store in the given directory.
func Open(dir string, opts *Options) (*Store, error) {
	opts = opts.EnsureDefaults()
	bopts := badger.DefaultOptions(dir)
	bopts.Logger = nil
	if opts.Logger != nil {
		bopts.Logger = badgerLogger{opts.Logger}
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrapf(err, "logstore: opening %s", dir)
	}
	return &Store{opts: opts, db: db, ulids: newULIDSource()}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.db.Close()
}

// Put archives doc and returns its assigned session id. The document and a
// small listing record are written in a single transaction.
func (s *Store) Put(doc *logtree.Document) (ulid.ULID, error) {
	if err := s.check(); err != nil {
		return ulid.ULID{}, err
	}
	if doc == nil {
		return ulid.ULID{}, errors.New("logstore: nil document")
	}
	start := crtime.NowMono()

	id := s.ulids.Now()
	data, err := json.Marshal(doc)
	if err != nil {
		return ulid.ULID{}, errors.Wrap(err, "logstore: encoding document")
	}
	meta := sessionMeta{SchemaURL: doc.SchemaURL, Events: len(doc.Events)}
	if doc.Open != nil {
		meta.RootType = doc.Open.Type
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return ulid.ULID{}, errors.Wrap(err, "logstore: encoding session meta")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(encodeDocKey(id), data); err != nil {
			return errors.Wrapf(err, "logstore: writing session %s", id)
		}
		if err := txn.Set(encodeMetaKey(id), metaData); err != nil {
			return errors.Wrapf(err, "logstore: writing session meta %s", id)
		}
		return nil
	})
	if err != nil {
		return ulid.ULID{}, err
	}

	if s.opts.PutLatency != nil {
		s.opts.PutLatency.Observe(start.Elapsed().Seconds())
	}
	return id, nil
}

// Get retrieves the document archived under id.
func (s *Store) Get(id ulid.ULID) (*logtree.Document, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	var doc *logtree.Document
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeDocKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var parseErr error
			doc, parseErr = logtree.ParseDocument(val)
			return parseErr
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns all archived sessions in archive order (ULID keys sort
// chronologically).
func (s *Store) List(ctx context.Context) ([]SessionInfo, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	var infos []SessionInfo
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := metaPrefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id, err := decodeMetaKey(item.Key())
			if err != nil {
				return err
			}
			var meta sessionMeta
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &meta)
			}); err != nil {
				return errors.Wrapf(err, "logstore: decoding session meta %s", id)
			}
			infos = append(infos, SessionInfo{
				ID:       id,
				Time:     ulid.Time(id.Time()),
				RootType: meta.RootType,
				Events:   meta.Events,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *Store) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}
