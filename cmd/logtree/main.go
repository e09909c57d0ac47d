// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/logtree/tool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "logtree [command] (flags)",
	Short: "session document tooling",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	// A .env file can supply the LOGTREE_* flag defaults; it is optional.
	// Load it before tool.New reads the environment.
	_ = godotenv.Load()

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(tool.New().Commands...)
	rootCmd.AddCommand(initDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
