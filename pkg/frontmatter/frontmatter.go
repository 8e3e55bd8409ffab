// Package frontmatter reads the metadata a script declares in its leading
// comment block.
//
// A script either opens with a block comment (for types that have one, such
// as a Python docstring) or with a run of line comments. The comment text is
// parsed as YAML. Anything that does not produce a mapping is treated as "no
// configuration": extraction never fails because of what a script contains.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	"github.com/arthur-debert/lazy-scripts/pkg/scripttypes"
	"github.com/arthur-debert/lazy-scripts/pkg/types"
	"gopkg.in/yaml.v3"
)

// Extract returns the metadata declared at the top of content.
func Extract(content string, st scripttypes.ScriptType) types.Metadata {
	block, ok := CommentBlock(content, st)
	if !ok {
		return types.Metadata{}
	}
	return Parse(block)
}

// ExtractFile reads path and extracts its metadata. Only read failures are
// returned as errors.
func ExtractFile(fsys types.FS, path string, st scripttypes.ScriptType) (types.Metadata, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScriptRead, "failed to read script %s", path)
	}
	return Extract(string(data), st), nil
}

// CommentBlock isolates the leading comment block of content, with comment
// markers removed. It reports false when the script has none.
func CommentBlock(content string, st scripttypes.ScriptType) (string, bool) {
	content = stripShebang(content)

	if block, ok := st.MatchBlockComment(content); ok {
		return block, true
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		idx := strings.Index(line, st.LineComment)
		if idx == -1 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			break
		}
		lines = append(lines, line[idx+len(st.LineComment):])
	}

	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(dedent(lines), "\n"), true
}

// Parse decodes block as YAML. Errors and non-mapping documents yield empty
// metadata.
func Parse(block string) types.Metadata {
	logger := logging.GetLogger("frontmatter")

	var doc interface{}
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		logger.Debug().Err(err).Msg("Frontmatter is not valid YAML, ignoring")
		return types.Metadata{}
	}

	var meta types.Metadata
	switch m := doc.(type) {
	case map[string]interface{}:
		meta = types.Metadata(m)
	case map[interface{}]interface{}:
		meta = make(types.Metadata, len(m))
		for k, v := range m {
			meta[fmt.Sprint(k)] = v
		}
	default:
		logger.Debug().Str("type", fmt.Sprintf("%T", doc)).Msg("Frontmatter is not a mapping, ignoring")
		return types.Metadata{}
	}

	normalizeFlags(meta)
	return meta
}

// flagKeys are the keys whose values are on/off switches.
var flagKeys = []string{types.KeyDesktop, types.KeyPause, types.KeySudo, types.KeyZshrc}

// normalizeFlags turns YAML 1.1 boolean words on switch keys into bools.
// yaml.v3 follows YAML 1.2 and decodes "yes" or "off" as strings.
func normalizeFlags(meta types.Metadata) {
	for _, key := range flagKeys {
		s, ok := meta[key].(string)
		if !ok {
			continue
		}
		if b, isWord := types.BoolWord(s); isWord {
			meta[key] = b
		}
	}
}

// stripShebang drops an interpreter line so it is neither read as
// frontmatter nor stops the scan.
func stripShebang(content string) string {
	if !strings.HasPrefix(content, "#!") {
		return content
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[i+1:]
	}
	return ""
}

// dedent strips the leading whitespace shared by every non-blank line, so
// "# key: value" comments decode the same as unindented YAML. The shared
// prefix is compared byte for byte: a tab never matches a space.
func dedent(lines []string) []string {
	var prefix string
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	if prefix == "" {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			out[i] = line[len(prefix):]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
