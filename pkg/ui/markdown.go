package ui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed keys.md
var keysReference string

// KeysReference returns the frontmatter key documentation as markdown.
func KeysReference() string {
	return keysReference
}

// RenderMarkdown renders content for a terminal. Text output, and any
// rendering failure, return the markdown unchanged.
func RenderMarkdown(content string, format Format, width int) string {
	if format != FormatTerminal {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
