package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/lazy-scripts/pkg/installer"
	"github.com/arthur-debert/lazy-scripts/pkg/scripttypes"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"github.com/arthur-debert/lazy-scripts/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScripts(t *testing.T) []installer.Script {
	t.Helper()
	sh, ok := scripttypes.ForFile("backup.sh")
	require.True(t, ok)
	py, ok := scripttypes.ForFile("menu.py")
	require.True(t, ok)

	return []installer.Script{
		{FileName: "backup.sh", StubName: "backup", Type: sh, Metadata: types.Metadata{"name": "Backup", "sudo": true}},
		{FileName: "menu.py", StubName: "menu", Type: py, Metadata: types.Metadata{"desktop": true, "query": "Pick:"}},
		{FileName: "plain.sh", StubName: "plain", Type: sh},
	}
}

func TestRenderScripts(t *testing.T) {
	var buf bytes.Buffer
	ui.RenderScripts(&buf, sampleScripts(t), ui.FormatText)

	out := buf.String()
	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "STUB")
	assert.Contains(t, out, "backup.sh")
	assert.Contains(t, out, "Backup")
	assert.Contains(t, out, "sudo")
	assert.Contains(t, out, "desktop, query")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "TOTAL")
}

func TestRenderScripts_Formats(t *testing.T) {
	var term, auto bytes.Buffer
	ui.RenderScripts(&term, sampleScripts(t), ui.FormatTerminal)
	ui.RenderScripts(&auto, sampleScripts(t), ui.FormatAuto)

	assert.Contains(t, term.String(), "\x1b[")
	assert.Contains(t, term.String(), "backup.sh")
	assert.NotContains(t, auto.String(), "\x1b", "buffers resolve to plain text")
}
