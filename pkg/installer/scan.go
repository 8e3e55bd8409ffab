package installer

import (
	"path/filepath"

	"github.com/arthur-debert/lazy-scripts/pkg/config"
	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/frontmatter"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/scripttypes"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
)

// Skip reasons reported for entries of the scripts directory.
const (
	SkipDirectory        = "directory"
	SkipUnknownExtension = "unknown extension"
	SkipIgnored          = "ignored by config"
	SkipInvalidStub      = "invalid metadata"
)

// Script is a recognized file of the scripts directory.
type Script struct {
	FileName string
	Path     string
	StubName string
	Type     scripttypes.ScriptType
	Metadata types.Metadata
}

// Scan lists the recognized scripts in dir without writing anything.
// Skipped entries are reported to reporter, which may be nil.
func Scan(fsys types.FS, dir string, cfg config.Config, reporter Reporter) ([]Script, error) {
	var scripts []Script
	err := walk(fsys, dir, cfg, orNop(reporter), func(s Script) error {
		scripts = append(scripts, s)
		return nil
	})
	return scripts, err
}

// walk calls fn for every recognized script in directory listing order.
func walk(fsys types.FS, dir string, cfg config.Config, reporter Reporter, fn func(Script) error) error {
	logger := logging.GetLogger("installer")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list scripts directory %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			logger.Trace().Str("entry", name).Msg("Skipping directory")
			reporter.Skipped(name, SkipDirectory)
			continue
		}
		if cfg.IsIgnored(name) {
			reporter.Skipped(name, SkipIgnored)
			continue
		}

		st, ok := scripttypes.ForFile(name)
		if !ok {
			reporter.Skipped(name, SkipUnknownExtension)
			continue
		}

		path := filepath.Join(dir, name)
		meta, err := frontmatter.ExtractFile(fsys, path, st)
		if err != nil {
			return err
		}

		if err := fn(Script{
			FileName: name,
			Path:     path,
			StubName: scripttypes.StubName(name),
			Type:     st,
			Metadata: meta,
		}); err != nil {
			return err
		}
	}
	return nil
}
