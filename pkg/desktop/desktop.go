// Package desktop writes freedesktop launcher entries for scripts that ask
// for one. Every generated file carries the Prefix so that a rebuild can
// remove its own entries without touching anything else in the
// applications directory.
package desktop

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
)

const (
	// Prefix starts the file name of every generated entry.
	Prefix = "lazy-scripts-"

	// Extension is the freedesktop entry suffix.
	Extension = ".desktop"

	// Icon is the themed icon shown for every launcher.
	Icon = "utilities-terminal"
)

// FileName returns the entry file name for a stub.
func FileName(stubName string) string {
	return Prefix + stubName + Extension
}

// Generate renders the entry launching stubPath in a terminal.
func Generate(stubName, stubPath string, meta types.Metadata) string {
	lines := []string{
		"[Desktop Entry]",
		"Type=Application",
		"Terminal=true",
		"Name=" + meta.Name(stubName),
		"Icon=" + Icon,
		"Exec=" + stubPath,
		"Categories=Application;",
	}
	return strings.Join(lines, "\n") + "\n"
}

// Entry is a written desktop file.
type Entry struct {
	Name string
	Path string
}

// Writer manages the generated entries in an applications directory.
type Writer struct {
	fs  types.FS
	dir string
}

// NewWriter returns a writer for dir.
func NewWriter(fsys types.FS, dir string) *Writer {
	return &Writer{fs: fsys, dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// EnsureDir creates the applications directory if it does not exist yet.
func (w *Writer) EnsureDir() error {
	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create applications directory %s", w.dir)
	}
	return nil
}

// Clear removes the entries previously generated by lazy-scripts.
func (w *Writer) Clear() error {
	logger := logging.GetLogger("desktop")

	entries, err := w.fs.ReadDir(w.dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list applications directory %s", w.dir)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), Prefix) {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if err := w.fs.RemoveAll(path); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove desktop entry %s", path)
		}
		logger.Trace().Str("path", path).Msg("Removed stale desktop entry")
	}
	return nil
}

// Write generates and writes the entry for a stub.
func (w *Writer) Write(stubName, stubPath string, meta types.Metadata) (Entry, error) {
	name := FileName(stubName)
	path := filepath.Join(w.dir, name)

	if err := w.fs.WriteFile(path, []byte(Generate(stubName, stubPath, meta)), 0644); err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to write desktop entry %s", path)
	}

	logger := logging.GetLogger("desktop")
	logger.Debug().Str("path", path).Msg("Wrote desktop entry")
	return Entry{Name: name, Path: path}, nil
}
