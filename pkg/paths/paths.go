package paths

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/lazy-scripts/pkg/errors"
)

// Environment variable names
const (
	// EnvScriptsDir points at the directory holding the user's scripts
	EnvScriptsDir = "LAZY_SCRIPTS_DIR"

	// EnvDataDir overrides the XDG data directory for lazy-scripts
	EnvDataDir = "LAZY_SCRIPTS_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for lazy-scripts
	EnvConfigDir = "LAZY_SCRIPTS_CONFIG_DIR"

	// EnvApplicationsDir overrides the desktop entries directory
	EnvApplicationsDir = "LAZY_SCRIPTS_APPLICATIONS_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory layout under the data root. These are not user-configurable:
// previously generated artifacts are found again by these names.
const (
	AppDirName      = "lazy-scripts"
	BinDirName      = "bin"
	SandboxDirName  = "zshrc"
	ApplicationsDir = "applications"
	ConfigFileName  = "config.toml"
)

// Options overrides path discovery. Empty fields fall back to the
// environment, then to XDG defaults.
type Options struct {
	ScriptsDir      string
	ApplicationsDir string
}

// Paths provides the directories lazy-scripts reads from and writes to
type Paths interface {
	ScriptsDir() string
	UsedFallback() bool
	DataDir() string
	BinDir() string
	SandboxRoot() string
	ApplicationsDir() string
	StubPath(stubName string) string
	SandboxDir(stubName string) string
}

type paths struct {
	scriptsDir      string
	usedFallback    bool
	dataDir         string
	applicationsDir string
}

// New resolves all lazy-scripts directories.
func New(opts Options) (Paths, error) {
	p := &paths{}

	switch {
	case os.Getenv(EnvScriptsDir) != "":
		p.scriptsDir = expandHome(os.Getenv(EnvScriptsDir))
	case opts.ScriptsDir != "":
		p.scriptsDir = expandHome(opts.ScriptsDir)
	default:
		root, usedFallback, err := findScriptsRoot()
		if err != nil {
			return nil, err
		}
		p.scriptsDir = root
		p.usedFallback = usedFallback
	}

	absRoot, err := filepath.Abs(p.scriptsDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for scripts directory")
	}
	p.scriptsDir = absRoot

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.dataDir = expandHome(dataDir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	switch {
	case os.Getenv(EnvApplicationsDir) != "":
		p.applicationsDir = expandHome(os.Getenv(EnvApplicationsDir))
	case opts.ApplicationsDir != "":
		p.applicationsDir = expandHome(opts.ApplicationsDir)
	default:
		p.applicationsDir = filepath.Join(xdg.DataHome, ApplicationsDir)
	}

	// The bin directory is written into shell startup files and desktop
	// entries, so every directory must be absolute.
	if p.dataDir, err = filepath.Abs(p.dataDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for data directory")
	}
	if p.applicationsDir, err = filepath.Abs(p.applicationsDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for applications directory")
	}

	return p, nil
}

// ConfigFilePath returns the location of the optional config file
func ConfigFilePath() string {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		return filepath.Join(expandHome(configDir), ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// findScriptsRoot determines the scripts directory when nothing was
// configured: the git top-level of the working directory, else the working
// directory itself (reported as a fallback).
func findScriptsRoot() (string, bool, error) {
	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is left alone
	return path
}

// ExpandHome expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) ScriptsDir() string {
	return p.scriptsDir
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) DataDir() string {
	return p.dataDir
}

// BinDir is where generated stubs live; it is the directory added to PATH.
func (p *paths) BinDir() string {
	return filepath.Join(p.dataDir, BinDirName)
}

// SandboxRoot holds one directory per zshrc-mode script.
func (p *paths) SandboxRoot() string {
	return filepath.Join(p.dataDir, SandboxDirName)
}

func (p *paths) ApplicationsDir() string {
	return p.applicationsDir
}

func (p *paths) StubPath(stubName string) string {
	return filepath.Join(p.BinDir(), stubName)
}

func (p *paths) SandboxDir(stubName string) string {
	return filepath.Join(p.SandboxRoot(), stubName)
}

// String is used in debug logging.
func (p *paths) String() string {
	return fmt.Sprintf("scripts=%s data=%s applications=%s", p.scriptsDir, p.dataDir, p.applicationsDir)
}
