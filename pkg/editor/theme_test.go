package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nodecanvas/pkg/draw"
)

func TestThemeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, WriteDefaultTheme(path))

	style, settings, err := LoadTheme(path)
	require.NoError(t, err)

	want := DefaultStyle()
	assert.Equal(t, want.Colors, style.Colors)
	assert.Equal(t, want.PinColors, style.PinColors)
	assert.Equal(t, want.NodeRounding, style.NodeRounding)
	assert.Equal(t, want.GridPrimaryStep, style.GridPrimaryStep)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestThemePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	toml := `
[node]
rounding = 2.0
background = "#FF0000"

[zoom]
max = 4.0
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	style, settings, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, float32(2), style.NodeRounding)
	assert.Equal(t, draw.RGB(0xFF, 0, 0), style.Colors[ColorNodeBackground])
	assert.Equal(t, float32(4), settings.ZoomMax)

	// Everything not mentioned keeps its default.
	def := DefaultStyle()
	assert.Equal(t, def.NodePadding, style.NodePadding)
	assert.Equal(t, def.Colors[ColorNodeOutline], style.Colors[ColorNodeOutline])
	assert.Equal(t, DefaultSettings().ZoomMin, settings.ZoomMin)
}

func TestThemeMissingFile(t *testing.T) {
	style, settings, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrThemeNotFound)

	// Defaults come back even on error so callers can keep rendering.
	assert.Equal(t, DefaultStyle().Colors, style.Colors)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestThemePinTypeColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	toml := `
[pin]
type_colors = ["#FF0000", "#00FF00", "#0000FFAA"]
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	style, _, err := LoadTheme(path)
	require.NoError(t, err)

	require.Len(t, style.PinColors, 3)
	assert.Equal(t, draw.RGBA(0, 0, 0xFF, 0xAA), style.PinColor(2))
	// Types past the table fall back to the last entry.
	assert.Equal(t, style.PinColors[2], style.PinColor(9))
}
