// Package scripttypes is the fixed table of script kinds lazy-scripts
// understands, keyed by file extension.
package scripttypes

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Kind identifies one supported script kind.
type Kind int

const (
	Python Kind = iota
	Shell
	Zsh
)

func (k Kind) String() string {
	switch k {
	case Python:
		return "python"
	case Shell:
		return "sh"
	case Zsh:
		return "zsh"
	default:
		return "unknown"
	}
}

// ScriptType describes how to read a script's frontmatter and how to invoke it.
type ScriptType struct {
	Kind        Kind
	Extension   string
	LineComment string

	// BlockComment, when set, must match at the start of the file; the first
	// non-empty capture group is the frontmatter body.
	BlockComment *regexp.Regexp

	// Interpreter is prepended to the script path in stubs. Empty means the
	// script is executed directly.
	Interpreter string
}

// HasBlockComment reports whether the type supports block frontmatter.
func (s ScriptType) HasBlockComment() bool {
	return s.BlockComment != nil
}

// MatchBlockComment returns the interior of a leading block comment.
func (s ScriptType) MatchBlockComment(content string) (string, bool) {
	if s.BlockComment == nil {
		return "", false
	}
	m := s.BlockComment.FindStringSubmatchIndex(content)
	if m == nil {
		return "", false
	}
	for group := 1; group*2+1 < len(m); group++ {
		if m[group*2] >= 0 {
			return content[m[group*2]:m[group*2+1]], true
		}
	}
	return "", false
}

// RE2 has no backreferences, so each docstring quote style gets its own branch.
var pythonDocstring = regexp.MustCompile(`^\s*(?:'''([\s\S]*?)'''|"""([\s\S]*?)""")`)

var all = []ScriptType{
	{
		Kind:         Python,
		Extension:    ".py",
		LineComment:  "#",
		BlockComment: pythonDocstring,
		Interpreter:  "python3 ",
	},
	{
		Kind:        Shell,
		Extension:   ".sh",
		LineComment: "#",
	},
	{
		Kind:        Zsh,
		Extension:   ".zsh",
		LineComment: "#",
	},
}

// All returns every supported script type.
func All() []ScriptType {
	out := make([]ScriptType, len(all))
	copy(out, all)
	return out
}

// ForFile returns the script type for filename based on its extension.
func ForFile(filename string) (ScriptType, bool) {
	for _, st := range all {
		if strings.HasSuffix(filename, st.Extension) {
			return st, true
		}
	}
	return ScriptType{}, false
}

// StubName is the script's base name without its last extension.
// A leading dot does not start an extension.
func StubName(scriptPath string) string {
	base := filepath.Base(scriptPath)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
