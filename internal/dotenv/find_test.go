package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUpwards_FindsNearest(t *testing.T) {
	// root/
	//   .env
	//   a/
	//     .env
	//     b/
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("ROOT=1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", ".env"), []byte("A=1"), 0o644))

	found, ok := FindUpwards(filepath.Join(root, "a", "b"), ".env")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a", ".env"), found)
}

func TestFindUpwards_InStartDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("ROOT=1"), 0o644))

	found, ok := FindUpwards(root, ".env")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".env"), found)
}

func TestFindUpwards_NotFound(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "x", "y")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	found, ok := FindUpwards(deep, "smoke-env-does-not-exist-4b1f.env")
	assert.False(t, ok)
	assert.Empty(t, found)
}

func TestFindUpwards_RelativeStart(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("A=1"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	found, ok := FindUpwards("sub", ".env")
	require.True(t, ok)

	// On macOS, /var is a symlink to /private/var, so resolve symlinks for comparison
	expected, _ := filepath.EvalSymlinks(filepath.Join(root, ".env"))
	actual, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, expected, actual)
}
