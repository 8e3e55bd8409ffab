package types

import (
	"fmt"
	"sort"
	"strings"
)

// Recognized frontmatter keys
const (
	KeyName    = "name"
	KeyDesktop = "desktop"
	KeyPause   = "pause"
	KeySudo    = "sudo"
	KeyNotify  = "notify"
	KeyQuery   = "query"
	KeyZshrc   = "zshrc"
)

// RecognizedKeys lists the frontmatter keys lazy-scripts acts on, in
// documentation order.
var RecognizedKeys = []string{KeyName, KeyDesktop, KeyPause, KeySudo, KeyNotify, KeyQuery, KeyZshrc}

// DefaultQueryPrompt is shown when query is set to a bare true.
const DefaultQueryPrompt = "Enter arguments:"

// Metadata is the parsed frontmatter of a script. A nil or empty Metadata
// means the script carries no configuration.
type Metadata map[string]interface{}

// IsEmpty reports whether the metadata has no keys at all.
func (m Metadata) IsEmpty() bool {
	return len(m) == 0
}

// Name returns the display name, or fallback when name is absent or empty.
func (m Metadata) Name(fallback string) string {
	v, ok := m[KeyName]
	if !ok || v == nil {
		return fallback
	}
	name := fmt.Sprint(v)
	if name == "" {
		return fallback
	}
	return name
}

func (m Metadata) Desktop() bool { return truthy(m[KeyDesktop]) }
func (m Metadata) Pause() bool   { return truthy(m[KeyPause]) }
func (m Metadata) Sudo() bool    { return truthy(m[KeySudo]) }
func (m Metadata) Zshrc() bool   { return truthy(m[KeyZshrc]) }

// Notify returns the notification message and whether one was requested.
func (m Metadata) Notify() (string, bool) {
	v := m[KeyNotify]
	if !truthy(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Query returns the argument prompt and whether prompting was requested.
// A boolean true, or a true boolean word, yields DefaultQueryPrompt.
func (m Metadata) Query() (string, bool) {
	v := m[KeyQuery]
	if !truthy(v) {
		return "", false
	}
	if _, isBool := v.(bool); isBool {
		return DefaultQueryPrompt, true
	}
	if s, ok := v.(string); ok {
		if _, isWord := BoolWord(s); isWord {
			return DefaultQueryPrompt, true
		}
	}
	return fmt.Sprint(v), true
}

// BoolWord maps the YAML 1.1 boolean words (y, yes, on, true and n, no, off,
// false, in any case) to their value. ok is false for any other string.
func BoolWord(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true":
		return true, true
	case "n", "no", "off", "false":
		return false, true
	default:
		return false, false
	}
}

// ActiveKeys returns the recognized keys that are set to a truthy value.
func (m Metadata) ActiveKeys() []string {
	var keys []string
	for _, key := range RecognizedKeys {
		if key == KeyName {
			continue
		}
		if truthy(m[key]) {
			keys = append(keys, key)
		}
	}
	return keys
}

// String renders the metadata as sorted key=value pairs.
func (m Metadata) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		if b, ok := BoolWord(val); ok {
			return b
		}
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint64:
		return val != 0
	case float64:
		return val != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	default:
		return true
	}
}
