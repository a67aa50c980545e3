// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spanlay exercises the annotation engine over the simulated
// surface: it loads an annotated document from a TOML file, runs a
// full layout and highlight pass, and prints the computed label
// positions and highlight groups.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spanlay",
	Short: "Overlap-aware text span layout engine",
	Long:  `spanlay renders labeled, possibly-overlapping text spans over a read-only text surface and keeps their stacking collision-free.`,
}

func main() {
	rootCmd.AddCommand(layoutCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
