// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"spanlay/span"
)

// Options are the tunable settings of an annotation engine, loadable
// from a TOML file. The zero value is not useful; start from
// [DefaultOptions].
type Options struct {
	// AllowOverlap permits committing spans that intersect existing
	// ones.
	AllowOverlap bool `toml:"allow-overlap"`

	// AllowCharacter permits character-level annotation; when off,
	// committed offsets snap to word boundaries.
	AllowCharacter bool `toml:"allow-character"`

	// LineHeight is the initial host text line height in pixels.
	LineHeight float32 `toml:"line-height"`

	// EntitiesGap is the vertical distance in pixels between stacked
	// labels of overlapping spans.
	EntitiesGap float32 `toml:"entities-gap"`

	// HighlightPrefix prefixes the per-entity native highlight style
	// keys.
	HighlightPrefix string `toml:"highlight-prefix"`
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		AllowOverlap:    true,
		AllowCharacter:  false,
		LineHeight:      baseLineHeight,
		EntitiesGap:     12,
		HighlightPrefix: "hl",
	}
}

// OpenOptions reads options from the given TOML file, with defaults
// for any field the file omits.
func OpenOptions(filename string) (Options, error) {
	o := DefaultOptions()
	b, err := os.ReadFile(filename)
	if err != nil {
		return o, err
	}
	if err := toml.Unmarshal(b, &o); err != nil {
		return o, err
	}
	return o, nil
}

// Save writes the options to the given file as TOML.
func (o Options) Save(filename string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// config projects the options onto the per-commit policy the store
// reads.
func (o Options) config() span.Config {
	return span.Config{
		AllowOverlap:   o.AllowOverlap,
		AllowCharacter: o.AllowCharacter,
		LineHeight:     o.LineHeight,
	}
}
