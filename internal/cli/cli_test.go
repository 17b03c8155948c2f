package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "demo")
	assert.Contains(t, names, "theme")
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetLogLevel(LogDebug)
	assert.Equal(t, LogDebug, c.Logger.GetLevel())
}

func TestThemeInitAndCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"theme", "init", path})
	require.NoError(t, root.Execute())

	_, err := os.Stat(path)
	require.NoError(t, err)

	root = c.RootCommand()
	root.SetArgs([]string{"theme", "check", path})
	assert.NoError(t, root.Execute())
}

func TestThemeInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("# existing"), 0o644))

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"theme", "init", path})
	assert.Error(t, root.Execute())

	root = c.RootCommand()
	root.SetArgs([]string{"theme", "init", "--force", path})
	assert.NoError(t, root.Execute())
}

func TestThemeCheckMissingFile(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"theme", "check", filepath.Join(t.TempDir(), "nope.toml")})
	assert.Error(t, root.Execute())
}

func TestResolveThemePathDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, defaultThemeFile), resolveThemePath(dir))
	assert.Equal(t, "some/file.toml", resolveThemePath("some/file.toml"))
}
