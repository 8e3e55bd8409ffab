// Package stub renders and writes the executable wrappers placed in the
// lazy-scripts bin directory.
//
// A regular stub collects arguments (optionally prompting for them), runs
// the script through its interpreter, and can then notify and pause:
//
//	#!/bin/sh
//	arguments="$*"
//	sudo python3 '/home/me/scripts/menu.py' "$arguments"
//
// Scripts in zshrc mode get a profile launcher instead, which starts an
// interactive zsh whose ZDOTDIR is the script's sandbox directory.
//
// Every interpolated value is shell-quoted, and each rendered stub is
// parsed as POSIX shell before it is written.
package stub

import (
	"bytes"
	_ "embed"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/scripttypes"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"mvdan.cc/sh/v3/syntax"
)

// Mode is the permission every stub is given.
const Mode fs.FileMode = 0744

// NotifyTitlePrefix starts the title of every desktop notification.
const NotifyTitlePrefix = "lazy-scripts: "

//go:embed stub.sh.tmpl
var stubTemplateText string

//go:embed profile.sh.tmpl
var profileTemplateText string

var (
	stubTemplate    = template.Must(template.New("stub").Parse(stubTemplateText))
	profileTemplate = template.Must(template.New("profile").Parse(profileTemplateText))
)

// Stub is a generated wrapper on disk.
type Stub struct {
	Name string
	Path string
}

type stubData struct {
	Title       string
	Query       string
	Sudo        bool
	Interpreter string
	ScriptPath  string
	Notify      string
	Pause       bool
}

type profileData struct {
	SandboxDir string
}

// Render produces the stub body for the script at scriptPath.
func Render(scriptPath string, st scripttypes.ScriptType, meta types.Metadata) (string, error) {
	name := scripttypes.StubName(scriptPath)

	data := stubData{
		Sudo:        meta.Sudo(),
		Interpreter: st.Interpreter,
		Pause:       meta.Pause(),
	}

	var err error
	if data.Title, err = quote(NotifyTitlePrefix + name); err != nil {
		return "", err
	}
	if data.ScriptPath, err = quote(scriptPath); err != nil {
		return "", err
	}
	if prompt, ok := meta.Query(); ok {
		if data.Query, err = quote(prompt); err != nil {
			return "", err
		}
	}
	if message, ok := meta.Notify(); ok {
		if data.Notify, err = quote(message); err != nil {
			return "", err
		}
	}

	return execute(stubTemplate, data, name)
}

// RenderProfileLauncher produces the stub body for a zshrc-mode script.
func RenderProfileLauncher(stubName, sandboxDir string) (string, error) {
	dir, err := quote(sandboxDir)
	if err != nil {
		return "", err
	}
	return execute(profileTemplate, profileData{SandboxDir: dir}, stubName)
}

func execute(tmpl *template.Template, data interface{}, name string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrStubRender, "failed to render stub %s", name)
	}

	out := buf.String()
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(out), name); err != nil {
		return "", errors.Wrapf(err, errors.ErrStubInvalid, "generated stub %s is not valid shell", name)
	}
	return out, nil
}

// quote wraps s in single quotes. POSIX single quotes hold any byte but NUL,
// newlines included; an embedded quote is closed, escaped and reopened.
func quote(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", errors.Newf(errors.ErrStubRender, "cannot quote %q for the shell: contains a NUL byte", s)
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'", nil
}

// Generator writes stubs into a bin directory.
type Generator struct {
	fs     types.FS
	binDir string
}

// NewGenerator creates a generator writing into binDir.
func NewGenerator(fsys types.FS, binDir string) *Generator {
	return &Generator{fs: fsys, binDir: binDir}
}

// BinDir returns the directory stubs are written to.
func (g *Generator) BinDir() string {
	return g.binDir
}

// EnsureDir creates the bin directory if needed.
func (g *Generator) EnsureDir() error {
	if err := g.fs.MkdirAll(g.binDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create bin directory %s", g.binDir)
	}
	return nil
}

// Clear removes every entry in the bin directory.
func (g *Generator) Clear() error {
	logger := logging.GetLogger("stub")

	entries, err := g.fs.ReadDir(g.binDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list bin directory %s", g.binDir)
	}
	for _, entry := range entries {
		path := filepath.Join(g.binDir, entry.Name())
		if err := g.fs.RemoveAll(path); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove stale stub %s", path)
		}
		logger.Trace().Str("path", path).Msg("Removed stale stub")
	}
	return nil
}

// Write renders and writes the stub for scriptPath.
func (g *Generator) Write(scriptPath string, st scripttypes.ScriptType, meta types.Metadata) (Stub, error) {
	name := scripttypes.StubName(scriptPath)
	body, err := Render(scriptPath, st, meta)
	if err != nil {
		return Stub{}, err
	}
	return g.write(name, body)
}

// WriteProfileLauncher writes the zshrc-mode stub for stubName.
func (g *Generator) WriteProfileLauncher(stubName, sandboxDir string) (Stub, error) {
	body, err := RenderProfileLauncher(stubName, sandboxDir)
	if err != nil {
		return Stub{}, err
	}
	return g.write(stubName, body)
}

func (g *Generator) write(name, body string) (Stub, error) {
	path := filepath.Join(g.binDir, name)
	if err := g.fs.WriteFile(path, []byte(body), Mode); err != nil {
		return Stub{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to write stub %s", path)
	}
	// WriteFile is subject to the umask
	if err := g.fs.Chmod(path, Mode); err != nil {
		return Stub{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to make stub %s executable", path)
	}

	logger := logging.GetLogger("stub")
	logger.Debug().Str("stub", name).Str("path", path).Msg("Wrote stub")
	return Stub{Name: name, Path: path}, nil
}
