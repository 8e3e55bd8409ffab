package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	bin := filepath.Join(root, "bin")
	require.NoError(t, fsys.MkdirAll(bin, 0755))

	stub := filepath.Join(bin, "backup")
	require.NoError(t, fsys.WriteFile(stub, []byte("#!/bin/sh\n"), 0644))
	require.NoError(t, fsys.Chmod(stub, 0744))

	info, err := fsys.Stat(stub)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0744), info.Mode().Perm())

	rc := filepath.Join(root, ".zshrc")
	require.NoError(t, fsys.AppendFile(rc, []byte("one\n"), 0644))
	require.NoError(t, fsys.AppendFile(rc, []byte("two\n"), 0644))
	content, err := fsys.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))

	require.NoError(t, fsys.WriteFile(filepath.Join(bin, "alpha"), nil, 0644))
	entries, err := fsys.ReadDir(bin)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name())
	assert.Equal(t, "backup", entries[1].Name())

	link := filepath.Join(root, "link")
	require.NoError(t, fsys.Symlink(stub, link))
	target, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, stub, target)
	assert.Error(t, fsys.Symlink(stub, link), "symlink over an existing path must fail")

	require.NoError(t, fsys.RemoveAll(bin))
	_, err = fsys.Stat(stub)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestMemoryFS(t *testing.T) {
	exerciseFS(t, NewMemory(), "/home/user")
}

func TestMemoryFS_ReadFileOnDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/data", 0755))

	_, err := fsys.ReadFile("/data")
	assert.Error(t, err)
}
