package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	tmp := t.TempDir()
	script := filepath.Join(tmp, "scripts", "work.zsh")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0755))
	require.NoError(t, os.WriteFile(script, []byte("# zshrc: true\nalias k=kubectl\n"), 0644))

	m := NewManager(filesystem.NewOS(), filepath.Join(tmp, "zshrc"))
	require.NoError(t, m.Clear())

	sb, err := m.Create("work", script)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmp, "zshrc", "work"), sb.Dir)
	assert.Equal(t, filepath.Join(sb.Dir, ".zshrc"), sb.Link)

	target, err := os.Readlink(sb.Link)
	require.NoError(t, err)
	assert.Equal(t, script, target)

	content, err := os.ReadFile(sb.Link)
	require.NoError(t, err)
	assert.Contains(t, string(content), "alias k=kubectl")
}

func TestCreate_ExistingLinkFails(t *testing.T) {
	tmp := t.TempDir()
	m := NewManager(filesystem.NewOS(), tmp)

	_, err := m.Create("dup", "/scripts/dup.sh")
	require.NoError(t, err)

	_, err = m.Create("dup", "/scripts/dup.zsh")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSymlinkCreate))
}

func TestClear(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "zshrc")
	m := NewManager(filesystem.NewOS(), root)

	_, err := m.Create("old", "/scripts/old.zsh")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, m.Clear())

	_, err = os.Lstat(filepath.Join(root, "old"))
	assert.True(t, os.IsNotExist(err), "stale sandbox should be removed")
	_, err = os.Stat(filepath.Join(root, "keep.txt"))
	assert.NoError(t, err, "plain files in the root are left alone")
}

func TestClear_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b", "zshrc")
	m := NewManager(filesystem.NewOS(), root)

	require.NoError(t, m.Clear())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
