package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVault(t *testing.T) *Vault {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "drafts"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".obsidian"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "drafts", "style.md"), []byte("my voice"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".obsidian", "style.md"), []byte("hidden"), 0644))
	return &Vault{Root: root}
}

func TestFindByBaseName(t *testing.T) {
	v := newVault(t)

	path, err := v.Find("style.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(v.Root, "drafts", "style.md"), path)
}

func TestFindByRelativePath(t *testing.T) {
	v := newVault(t)

	path, err := v.Find("drafts/style.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(v.Root, "drafts", "style.md"), path)
}

func TestFindMissing(t *testing.T) {
	v := newVault(t)

	_, err := v.Find("nope.md")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope.md", notFound.Name)
}

func TestLoadStyle(t *testing.T) {
	v := newVault(t)

	style, ok := v.LoadStyle("style.md")
	assert.True(t, ok)
	assert.Equal(t, "my voice", style)
}

func TestLoadStyleDegradesGracefully(t *testing.T) {
	v := newVault(t)

	style, ok := v.LoadStyle("missing.md")
	assert.False(t, ok)
	assert.Empty(t, style)

	style, ok = v.LoadStyle("")
	assert.False(t, ok)
	assert.Empty(t, style)
}
