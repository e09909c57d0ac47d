// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/logtree"
	"github.com/cockroachdb/logtree/logstore"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func initDemoCmd() *cobra.Command {
	c := demoConfig{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "generate a synthetic request session document",
		Long: `
Run a synthetic nested request (an auth span wrapping a handler that issues
queries), record it through the logging engine with measured timings, and
write the flushed document as JSON to --out or stdout.
`,
		Args: cobra.NoArgs,
		RunE: c.runE,
	}
	cmd.Flags().StringVarP(
		&c.out, "out", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().StringVar(
		&c.storeDir, "store", "", "also archive the document in this store directory")
	cmd.Flags().Uint64Var(
		&c.seed, "seed", 0, "randomization seed (0 derives one from the clock)")
	cmd.Flags().IntVar(
		&c.queries, "queries", 3, "number of queries the handler issues")
	cmd.Flags().BoolVarP(
		&c.verbose, "verbose", "v", false, "log engine activity while recording")
	return cmd
}

type demoConfig struct {
	out      string
	storeDir string
	seed     uint64
	queries  int
	verbose  bool
}

// zerologLogger adapts a zerolog logger to the logtree.Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

func (l zerologLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l zerologLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}

func (c *demoConfig) runE(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Logger()

	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	opts := &logtree.Options{}
	if c.verbose {
		opts.EventListener = logtree.MakeLoggingEventListener(zerologLogger{log: logger})
	}
	engine := logtree.NewEngine(opts)

	doc, err := c.record(engine, rng)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if c.storeDir != "" {
		st, err := logstore.Open(c.storeDir, nil)
		if err != nil {
			return err
		}
		id, err := st.Put(doc)
		if err != nil {
			_ = st.Close()
			return err
		}
		if err := st.Close(); err != nil {
			return err
		}
		logger.Info().Str("id", id.String()).Msg("archived session")
	}

	if c.out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(c.out, data, 0644); err != nil {
		return err
	}
	logger.Info().Str("path", c.out).Msg("wrote session document")
	return nil
}

// recorder accumulates the first engine error so the session body reads
// straight through.
type recorder struct {
	engine *logtree.Engine
	err    error
}

func (r *recorder) event(ctx logtree.Context) {
	if r.err != nil {
		return
	}
	_, r.err = r.engine.Event(ctx)
}

func (r *recorder) close(ctx logtree.Context, id logtree.OpID) {
	if r.err != nil {
		return
	}
	_, r.err = r.engine.Close(ctx, id)
}

// record runs the synthetic session. Spans sleep for randomized intervals
// and report measured durations in milliseconds, so the document renders
// with realistic, strictly nested timings.
func (c *demoConfig) record(engine *logtree.Engine, rng *rand.Rand) (*logtree.Document, error) {
	r := &recorder{engine: engine}
	ms := func(d time.Duration) float64 {
		return float64(d) / float64(time.Millisecond)
	}
	work := func(maxMs int) float64 {
		start := crtime.NowMono()
		time.Sleep(time.Duration(rng.Intn(maxMs*1000)) * time.Microsecond)
		return ms(start.Elapsed())
	}

	reqStart := crtime.NowMono()
	reqID := engine.Open(logtree.Context{
		Type:   "http_request",
		Fields: map[string]any{"method": "GET", "path": "/api/checkout"},
	})
	r.event(logtree.Context{
		Type:   "log",
		Fields: map[string]any{"level": "info", "message": "request received"},
	})

	authStart := crtime.NowMono()
	authID := engine.Open(logtree.Context{
		Type:   "auth",
		Fields: map[string]any{"user_id": 1000 + rng.Intn(9000)},
	})
	r.event(logtree.Context{
		Type: "cache",
		Fields: map[string]any{
			"op":          "get",
			"key":         "session:42",
			"hit":         rng.Intn(4) != 0,
			"duration_ms": work(1),
		},
	})

	handlerStart := crtime.NowMono()
	handlerID := engine.Open(logtree.Context{
		Type:   "handler",
		Fields: map[string]any{"name": "checkout"},
	})
	tables := []string{"users", "orders", "items", "sessions", "carts"}
	for i := 0; i < c.queries; i++ {
		r.event(logtree.Context{
			Type: "db_query",
			Fields: map[string]any{
				"table":         tables[i%len(tables)],
				"rows":          rng.Intn(500),
				"query_time_ms": work(20),
			},
		})
	}
	r.close(logtree.Context{
		Type:   "handler",
		Fields: map[string]any{"duration_ms": ms(handlerStart.Elapsed())},
	}, handlerID)

	r.close(logtree.Context{
		Type:   "auth",
		Fields: map[string]any{"ok": true, "duration_ms": ms(authStart.Elapsed())},
	}, authID)
	r.event(logtree.Context{
		Type:   "log",
		Fields: map[string]any{"level": "info", "message": "response written"},
	})
	r.close(logtree.Context{
		Type:   "http_request",
		Fields: map[string]any{"status": 200, "duration_ms": ms(reqStart.Elapsed())},
	}, reqID)

	if r.err != nil {
		return nil, r.err
	}
	return engine.Flush()
}
