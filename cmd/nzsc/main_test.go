package main

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestKeyRune(t *testing.T) {
	r, ok := keyRune(core.Key7)
	assert.True(t, ok)
	assert.Equal(t, '7', r)

	r, ok = keyRune(core.KeyBackspace)
	assert.True(t, ok)
	assert.Equal(t, '\b', r)

	_, ok = keyRune(core.KeySpace)
	assert.False(t, ok)
}

func TestTerminalRune(t *testing.T) {
	r, ok := terminalRune(tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, '5', r)

	r, ok = terminalRune(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, '\r', r)

	_, ok = terminalRune(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestSpriteKeysCoverRenderKeys(t *testing.T) {
	keys := spriteKeys()
	assert.Contains(t, keys, "ui/heart")
	assert.NotEmpty(t, keys)
}
