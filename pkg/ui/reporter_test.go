package ui_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/lazy-scripts/pkg/desktop"
	"github.com/arthur-debert/lazy-scripts/pkg/installer"
	"github.com/arthur-debert/lazy-scripts/pkg/sandbox"
	"github.com/arthur-debert/lazy-scripts/pkg/shellrc"
	"github.com/arthur-debert/lazy-scripts/pkg/stub"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"github.com/arthur-debert/lazy-scripts/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestReporter_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatText)

	profile := shellrc.Profile{RCFile: "/home/me/.zshrc", ExportLine: `export PATH="/d/bin:$PATH"`}
	r.PathRegistered(profile, true)
	r.PathRegistered(profile, false)
	r.Skipped("notes.txt", installer.SkipUnknownExtension)
	r.Configuration(installer.Script{FileName: "backup.sh", Metadata: types.Metadata{"sudo": true, "name": "Backup"}})
	r.SandboxCreated("work", sandbox.Sandbox{Dir: "/d/zshrc/work"})
	r.StubWritten(stub.Stub{Name: "backup"})
	r.DesktopEntryWritten(desktop.Entry{Name: "lazy-scripts-menu.desktop"})

	want := "" +
		"path     added export PATH=\"/d/bin:$PATH\" to /home/me/.zshrc\n" +
		"path     already registered in /home/me/.zshrc\n" +
		"skip     notes.txt (unknown extension)\n" +
		"config   backup.sh {name=Backup, sudo=true}\n" +
		"zshrc    work -> /d/zshrc/work\n" +
		"stub     backup\n" +
		"desktop  lazy-scripts-menu.desktop\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatAuto)

	r.Summary(&installer.Result{
		Stubs:          []stub.Stub{{Name: "a"}, {Name: "b"}},
		DesktopEntries: []desktop.Entry{{Name: "lazy-scripts-a.desktop"}},
		Skipped:        3,
	})

	assert.Equal(t, "2 stubs, 1 desktop entry, 3 skipped\n", buf.String())
}

func TestFormatError(t *testing.T) {
	err := fmt.Errorf("install failed: %w", errors.New("boom"))
	assert.Equal(t, "Error: install failed: boom", ui.FormatError(err, ui.FormatText))
	assert.Contains(t, ui.FormatError(err, ui.FormatTerminal), "install failed: boom")
}
