package frontmatter

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/filesystem"
	"github.com/arthur-debert/lazy-scripts/pkg/scripttypes"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptType(t *testing.T, filename string) scripttypes.ScriptType {
	t.Helper()
	st, ok := scripttypes.ForFile(filename)
	require.True(t, ok, "no script type for %s", filename)
	return st
}

func TestExtract_LineComments(t *testing.T) {
	sh := scriptType(t, "x.sh")

	tests := []struct {
		name    string
		content string
		want    types.Metadata
	}{
		{
			name:    "backup scenario",
			content: "# name: Backup\n# sudo: true\n# notify: \"Backup complete\"\n\nrsync -a ~ /mnt/backup\n",
			want:    types.Metadata{"name": "Backup", "sudo": true, "notify": "Backup complete"},
		},
		{
			name:    "shebang is skipped",
			content: "#!/bin/sh\n# pause: true\necho hi\n",
			want:    types.Metadata{"pause": true},
		},
		{
			name:    "blank lines do not stop the scan",
			content: "# name: Spaced\n\n   \n# desktop: true\necho hi\n",
			want:    types.Metadata{"name": "Spaced", "desktop": true},
		},
		{
			name:    "code stops the scan",
			content: "# name: Early\necho hi\n# sudo: true\n",
			want:    types.Metadata{"name": "Early"},
		},
		{
			name:    "no leading space after marker",
			content: "#name: Tight\n#pause: yes\n",
			want:    types.Metadata{"name": "Tight", "pause": true},
		},
		{
			name:    "boolean words turn switches off",
			content: "# sudo: no\n# pause: off\n# desktop: N\n# zshrc: False\n",
			want:    types.Metadata{"sudo": false, "pause": false, "desktop": false, "zshrc": false},
		},
		{
			name:    "tab indented comments",
			content: "#\t name: Tabbed\n#\t sudo: true\n",
			want:    types.Metadata{"name": "Tabbed", "sudo": true},
		},
		{
			name:    "multiline notify",
			content: "# notify: |-\n#   line one\n#   line two\necho\n",
			want:    types.Metadata{"notify": "line one\nline two"},
		},
		{
			name:    "comments only file",
			content: "# query: \"Which host?\"\n",
			want:    types.Metadata{"query": "Which host?"},
		},
		{
			name:    "no comments",
			content: "echo hi\n",
			want:    types.Metadata{},
		},
		{
			name:    "empty file",
			content: "",
			want:    types.Metadata{},
		},
		{
			name:    "prose comment is not a mapping",
			content: "# Backs up the home directory\necho hi\n",
			want:    types.Metadata{},
		},
		{
			name:    "malformed yaml",
			content: "# name: [unclosed\n# sudo: true\n",
			want:    types.Metadata{},
		},
		{
			name:    "empty comment block",
			content: "#\n#\necho hi\n",
			want:    types.Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.content, sh))
		})
	}
}

func TestExtract_BlockComments(t *testing.T) {
	py := scriptType(t, "x.py")

	tests := []struct {
		name    string
		content string
		want    types.Metadata
	}{
		{
			name:    "menu scenario",
			content: "'''\nquery: \"Pick an option:\"\ndesktop: true\nname: \"Menu\"\n'''\nimport sys\n",
			want:    types.Metadata{"query": "Pick an option:", "desktop": true, "name": "Menu"},
		},
		{
			name:    "double quoted docstring",
			content: "\"\"\"\npause: true\n\"\"\"\n",
			want:    types.Metadata{"pause": true},
		},
		{
			name:    "shebang before docstring",
			content: "#!/usr/bin/env python3\n'''\nsudo: true\n'''\n",
			want:    types.Metadata{"sudo": true},
		},
		{
			name:    "line comments when no docstring",
			content: "# zshrc: false\n# name: Lines\nimport os\n",
			want:    types.Metadata{"zshrc": false, "name": "Lines"},
		},
		{
			name:    "docstring prose",
			content: "'''Print the weather.'''\n",
			want:    types.Metadata{},
		},
		{
			name:    "list is not a mapping",
			content: "'''\n- a\n- b\n'''\n",
			want:    types.Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.content, py))
		})
	}
}

func TestCommentBlock(t *testing.T) {
	sh := scriptType(t, "x.sh")

	block, ok := CommentBlock("#!/bin/sh\n# name: Backup\n#   nested: 1\necho\n", sh)
	require.True(t, ok)
	assert.Equal(t, "name: Backup\n  nested: 1", block)

	_, ok = CommentBlock("echo hi\n", sh)
	assert.False(t, ok)
}

func TestCommentBlock_MixedIndentation(t *testing.T) {
	sh := scriptType(t, "x.sh")

	block, ok := CommentBlock("#\t name: x\n#\t sudo: true\n", sh)
	require.True(t, ok)
	assert.Equal(t, "name: x\nsudo: true", block)
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"shared space", []string{" a", "   b"}, []string{"a", "  b"}},
		{"shared tab", []string{"\ta", "\t\tb"}, []string{"a", "\tb"}},
		{"tab and space differ", []string{" \ta", "\t b"}, []string{" \ta", "\t b"}},
		{"partial match", []string{" \ta", "  b"}, []string{"\ta", " b"}},
		{"blank lines ignored", []string{"  a", "", "  b"}, []string{"a", "", "b"}},
		{"all blank", []string{"", " "}, []string{"", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedent(tt.lines))
		})
	}
}

func TestExtract_BooleanWordsDisableStubFeatures(t *testing.T) {
	meta := Extract("# sudo: no\n# pause: off\necho\n", scriptType(t, "x.sh"))
	assert.False(t, meta.Sudo())
	assert.False(t, meta.Pause())
}

func TestParse_NonStringKeys(t *testing.T) {
	got := Parse("1: one\ntrue: yes\n")
	assert.Equal(t, "one", got["1"])
	assert.Equal(t, "yes", got["true"])
}

func TestExtractFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	sh := scriptType(t, "x.sh")
	path := filepath.Join("/scripts", "backup.sh")
	require.NoError(t, fsys.WriteFile(path, []byte("# sudo: true\n"), 0644))

	meta, err := ExtractFile(fsys, path, sh)
	require.NoError(t, err)
	assert.True(t, meta.Sudo())

	_, err = ExtractFile(fsys, "/scripts/missing.sh", sh)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptRead))
}
