// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.True(t, o.AllowOverlap)
	assert.False(t, o.AllowCharacter)
	assert.Equal(t, float32(baseLineHeight), o.LineHeight)
	assert.Equal(t, float32(12), o.EntitiesGap)
	assert.Equal(t, "hl", o.HighlightPrefix)
}

func TestOptionsSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "options.toml")
	o := DefaultOptions()
	o.AllowCharacter = true
	o.EntitiesGap = 9
	require.NoError(t, o.Save(fn))

	got, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestOpenOptionsPartialFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(fn, []byte("entities-gap = 20\n"), 0o644))

	got, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(20), got.EntitiesGap)
	// omitted fields keep their defaults
	assert.Equal(t, "hl", got.HighlightPrefix)
	assert.True(t, got.AllowOverlap)
}

func TestOpenOptionsMissingFile(t *testing.T) {
	_, err := OpenOptions(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
