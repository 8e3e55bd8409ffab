// Package installer runs a full lazy-scripts installation: it registers the
// stub directory on PATH, wipes every previously generated artifact and
// regenerates stubs, sandboxes and desktop entries from the scripts that are
// currently in the scripts directory.
//
// A run is a clear-and-rebuild. There is no incremental mode and no rollback:
// the first filesystem error aborts the run and leaves whatever was already
// written in place. A script whose metadata cannot be rendered into a stub is
// skipped instead. Runs are not locked against each other.
package installer

import (
	"os"

	"github.com/arthur-debert/lazy-scripts/pkg/config"
	"github.com/arthur-debert/lazy-scripts/pkg/desktop"
	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/filesystem"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/paths"
	"github.com/arthur-debert/lazy-scripts/pkg/sandbox"
	"github.com/arthur-debert/lazy-scripts/pkg/shellrc"
	"github.com/arthur-debert/lazy-scripts/pkg/stub"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
)

// scriptMode is added to every recognized script so stubs can exec it.
const scriptMode os.FileMode = 0744

// Options holds the inputs of a run.
type Options struct {
	FS     types.FS
	Paths  paths.Paths
	Config config.Config

	// ShellPath is the user's login shell, usually $SHELL.
	ShellPath string

	// HomeDir holds the shell startup files.
	HomeDir string

	Reporter Reporter
}

// Result summarizes a completed run.
type Result struct {
	ScriptsDir     string
	Profile        shellrc.Profile
	PathRegistered bool
	Stubs          []stub.Stub
	Sandboxes      []sandbox.Sandbox
	DesktopEntries []desktop.Entry
	Skipped        int
}

// Run performs the installation described by opts.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("installer")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInvalidInput, "paths are required")
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reporter := &countingReporter{Reporter: orNop(opts.Reporter)}

	// Resolved before anything is touched so that an unsupported shell
	// leaves the filesystem as it was.
	profile, err := shellrc.Lookup(opts.ShellPath, opts.HomeDir, opts.Paths.BinDir())
	if err != nil {
		return nil, err
	}

	result := &Result{
		ScriptsDir: opts.Paths.ScriptsDir(),
		Profile:    profile,
	}

	stubs := stub.NewGenerator(fsys, opts.Paths.BinDir())
	sandboxes := sandbox.NewManager(fsys, opts.Paths.SandboxRoot())
	entries := desktop.NewWriter(fsys, opts.Paths.ApplicationsDir())

	if err := stubs.EnsureDir(); err != nil {
		return nil, err
	}

	changed, err := shellrc.Register(fsys, profile)
	if err != nil {
		return nil, err
	}
	result.PathRegistered = changed
	reporter.PathRegistered(profile, changed)

	if err := stubs.Clear(); err != nil {
		return nil, err
	}
	if err := sandboxes.Clear(); err != nil {
		return nil, err
	}
	if err := entries.EnsureDir(); err != nil {
		return nil, err
	}
	if err := entries.Clear(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("scripts", result.ScriptsDir).
		Str("bin", stubs.BinDir()).
		Msg("Generating stubs")

	err = walk(fsys, result.ScriptsDir, opts.Config, reporter, func(s Script) error {
		if err := makeExecutable(fsys, s.Path); err != nil {
			return err
		}

		if !s.Metadata.IsEmpty() {
			reporter.Configuration(s)
		}

		var written stub.Stub
		if s.Metadata.Zshrc() {
			sb, err := sandboxes.Create(s.StubName, s.Path)
			if err != nil {
				return err
			}
			result.Sandboxes = append(result.Sandboxes, sb)
			reporter.SandboxCreated(s.StubName, sb)

			if written, err = stubs.WriteProfileLauncher(s.StubName, sb.Dir); err != nil {
				return err
			}
		} else {
			var err error
			written, err = stubs.Write(s.Path, s.Type, s.Metadata)
			if errors.IsErrorCode(err, errors.ErrStubRender) || errors.IsErrorCode(err, errors.ErrStubInvalid) {
				logger.Warn().Err(err).Str("script", s.Path).Msg("Skipping script with unusable metadata")
				reporter.Skipped(s.FileName, SkipInvalidStub)
				return nil
			}
			if err != nil {
				return err
			}
		}
		result.Stubs = append(result.Stubs, written)
		reporter.StubWritten(written)

		if s.Metadata.Desktop() {
			entry, err := entries.Write(s.StubName, written.Path, s.Metadata)
			if err != nil {
				return err
			}
			result.DesktopEntries = append(result.DesktopEntries, entry)
			reporter.DesktopEntryWritten(entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Skipped = reporter.skipped
	logger.Info().
		Int("stubs", len(result.Stubs)).
		Int("desktop_entries", len(result.DesktopEntries)).
		Int("sandboxes", len(result.Sandboxes)).
		Int("skipped", result.Skipped).
		Msg("Install complete")

	return result, nil
}

func makeExecutable(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if err := fsys.Chmod(path, info.Mode().Perm()|scriptMode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to make %s executable", path)
	}
	return nil
}

type countingReporter struct {
	Reporter
	skipped int
}

func (r *countingReporter) Skipped(fileName, reason string) {
	r.skipped++
	r.Reporter.Skipped(fileName, reason)
}
