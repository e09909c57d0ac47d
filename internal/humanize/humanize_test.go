// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package humanize

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
)

func TestHumanize(t *testing.T) {
	datadriven.RunTest(t, "testdata/duration", func(t *testing.T, td *datadriven.TestData) string {
		var buf bytes.Buffer
		for row := range crstrings.LinesSeq(td.Input) {
			switch td.Cmd {
			case "duration":
				d, err := time.ParseDuration(row)
				if err != nil {
					td.Fatalf(t, "error parsing %q: %v", row, err)
				}
				fmt.Fprintf(&buf, "%s\n", Duration(d))
			case "millis":
				ms, err := strconv.ParseFloat(row, 64)
				if err != nil {
					td.Fatalf(t, "error parsing %q: %v", row, err)
				}
				fmt.Fprintf(&buf, "%s\n", Millis(ms))
			default:
				td.Fatalf(t, "invalid command %q", td.Cmd)
			}
		}
		return buf.String()
	})
}
