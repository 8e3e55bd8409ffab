// Package shellrc knows which login shells lazy-scripts supports and puts
// the stub directory on PATH by appending a labeled section to the shell's
// startup file.
package shellrc

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
)

// SectionHeader labels the block appended to a startup file.
const SectionHeader = "# lazy-scripts"

// supportedShells maps a login shell path to its startup file in $HOME.
var supportedShells = map[string]string{
	"/usr/bin/zsh": ".zshrc",
	"/bin/bash":    ".bashrc",
}

// SupportedShells returns the shell paths lazy-scripts can register with.
func SupportedShells() []string {
	shells := make([]string, 0, len(supportedShells))
	for shell := range supportedShells {
		shells = append(shells, shell)
	}
	sort.Strings(shells)
	return shells
}

// Profile describes how to add the bin directory to one shell's PATH.
type Profile struct {
	Shell      string
	RCFile     string
	ExportLine string
}

// Lookup resolves the startup file and export line for shellPath.
func Lookup(shellPath, homeDir, binDir string) (Profile, error) {
	rc, ok := supportedShells[shellPath]
	if !ok {
		return Profile{}, errors.Newf(errors.ErrUnsupportedShell, "shell %q is not supported", shellPath).
			WithDetail("shell", shellPath).
			WithDetail("supported", strings.Join(SupportedShells(), ", "))
	}
	return Profile{
		Shell:      shellPath,
		RCFile:     filepath.Join(homeDir, rc),
		ExportLine: ExportLine(binDir),
	}, nil
}

// ExportLine is the statement prepending binDir to PATH.
func ExportLine(binDir string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, binDir)
}

// Section is the full text appended to a startup file.
func (p Profile) Section() string {
	return "\n" + SectionHeader + "\n" + p.ExportLine + "\n"
}

// Register appends the PATH section to the startup file unless the export
// line is already present anywhere in it. A missing startup file is created.
// It reports whether the file was changed.
func Register(fsys types.FS, p Profile) (bool, error) {
	logger := logging.GetLogger("shellrc")

	content, err := fsys.ReadFile(p.RCFile)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrPathRegister, "failed to read %s", p.RCFile)
	}

	if strings.Contains(string(content), p.ExportLine) {
		logger.Debug().Str("file", p.RCFile).Msg("PATH already registered")
		return false, nil
	}

	if err := fsys.AppendFile(p.RCFile, []byte(p.Section()), fs.FileMode(0644)); err != nil {
		return false, errors.Wrapf(err, errors.ErrPathRegister, "failed to update %s", p.RCFile)
	}

	logger.Info().Str("file", p.RCFile).Str("line", p.ExportLine).Msg("Registered bin directory on PATH")
	return true, nil
}
