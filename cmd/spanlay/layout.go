// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"spanlay/annotator"
	"spanlay/geom"
	"spanlay/span"
	"spanlay/surface"
	"spanlay/surface/sim"
)

// document is the TOML shape of an annotated document.
type document struct {
	Text     string `toml:"text"`
	Entities []struct {
		ID   string `toml:"id"`
		Name string `toml:"name"`
	} `toml:"entities"`
	Spans []struct {
		From   int    `toml:"from"`
		To     int    `toml:"to"`
		Entity string `toml:"entity"`
	} `toml:"spans"`
}

var (
	optionsFile string
	wrapWidth   int
)

var layoutCmd = &cobra.Command{
	Use:   "layout <document.toml>",
	Short: "Run a layout pass over a document and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&optionsFile, "options", "", "engine options TOML file")
	layoutCmd.Flags().IntVar(&wrapWidth, "wrap", 80, "characters per line of the simulated surface")
}

func runLayout(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}
	opts := annotator.DefaultOptions()
	if optionsFile != "" {
		if opts, err = annotator.OpenOptions(optionsFile); err != nil {
			return err
		}
	}

	surf := sim.NewSurface()
	surf.WrapWidth = wrapWidth
	host := sim.NewNode("doc", doc.Text)
	host.SetRect(geom.R(0, 0, float32(wrapWidth)*surf.CellWidth, surf.CellHeight))
	surf.AddNode(host)

	entities := make(map[string]*span.Entity, len(doc.Entities))
	for _, e := range doc.Entities {
		entities[e.ID] = &span.Entity{ID: e.ID, Name: e.Name}
	}
	txt := []rune(doc.Text)
	spans := make([]*span.Span, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		e, ok := entities[s.Entity]
		if !ok {
			return fmt.Errorf("span [%d,%d): unknown entity %q", s.From, s.To, s.Entity)
		}
		if s.From < 0 || s.To > len(txt) || s.From >= s.To {
			return fmt.Errorf("span [%d,%d): offsets out of range for %d-character text", s.From, s.To, len(txt))
		}
		spans = append(spans, &span.Span{From: s.From, To: s.To, Entity: e, Node: host})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	factory := func(sp *span.Span, pos annotator.Position, hover func(bool), remove func(), replace func(*span.Entity)) surface.Widget {
		fmt.Fprintf(tw, "%q\t%s\t[%d,%d)\ttop=%g left=%g width=%g\n",
			string(txt[sp.From:sp.To]), sp.Entity.Name, sp.From, sp.To, pos.Top, pos.Left, pos.Width)
		return sp.ID
	}

	store := span.NewStore()
	en := annotator.New(surf, surf, store, factory)
	en.SetOptions(opts)
	if err := en.Mount("doc", spans); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nhighlight groups:")
	hl := surf.Highlights()
	for _, key := range hl.Keys() {
		fmt.Fprintf(out, "  %s:", key)
		for _, r := range hl.Ranges(key) {
			fmt.Fprintf(out, " [%d,%d)", r.From, r.To)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\nline height: %g\n", host.LineHeight())
	en.Unmount()
	return nil
}

func readDocument(filename string) (*document, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.Text == "" {
		return nil, fmt.Errorf("%s: document has no text", filename)
	}
	return &doc, nil
}
