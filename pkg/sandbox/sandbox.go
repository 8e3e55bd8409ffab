// Package sandbox manages the per-script zsh configuration directories used
// by scripts that opt into zshrc mode.
//
// Each sandbox is a directory named after the stub holding a single .zshrc
// symlink back to the script. Starting zsh with ZDOTDIR pointed at that
// directory makes the script the shell's profile.
package sandbox

import (
	"path/filepath"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
)

// ProfileFileName is the file zsh reads from ZDOTDIR for interactive shells.
const ProfileFileName = ".zshrc"

// Sandbox is one created profile directory.
type Sandbox struct {
	Dir  string
	Link string
}

// Manager creates and clears sandboxes under a root directory.
type Manager struct {
	fs   types.FS
	root string
}

// NewManager returns a manager for sandboxes under root.
func NewManager(fsys types.FS, root string) *Manager {
	return &Manager{fs: fsys, root: root}
}

// Root returns the directory holding all sandboxes.
func (m *Manager) Root() string {
	return m.root
}

// Clear makes sure the root exists and removes every sandbox directory in it.
func (m *Manager) Clear() error {
	logger := logging.GetLogger("sandbox")

	if err := m.fs.MkdirAll(m.root, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create sandbox root %s", m.root)
	}

	entries, err := m.fs.ReadDir(m.root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list sandbox root %s", m.root)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(m.root, entry.Name())
		if err := m.fs.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove sandbox %s", dir)
		}
		logger.Trace().Str("dir", dir).Msg("Removed stale sandbox")
	}
	return nil
}

// Create makes the sandbox for stubName with its profile linked to scriptPath.
func (m *Manager) Create(stubName, scriptPath string) (Sandbox, error) {
	target, err := filepath.Abs(scriptPath)
	if err != nil {
		return Sandbox{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", scriptPath)
	}

	dir := filepath.Join(m.root, stubName)
	if err := m.fs.MkdirAll(dir, 0755); err != nil {
		return Sandbox{}, errors.Wrapf(err, errors.ErrDirCreate, "failed to create sandbox %s", dir)
	}

	link := filepath.Join(dir, ProfileFileName)
	if err := m.fs.Symlink(target, link); err != nil {
		return Sandbox{}, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s to %s", link, target)
	}

	logger := logging.GetLogger("sandbox")
	logger.Debug().
		Str("dir", dir).
		Str("target", target).
		Msg("Created shell profile sandbox")

	return Sandbox{Dir: dir, Link: link}, nil
}
