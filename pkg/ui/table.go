package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lazy-scripts/pkg/installer"
	"github.com/olekukonko/tablewriter"
)

var scriptColumns = []string{"Stub", "Script", "Type", "Name", "Keys"}

// RenderScripts writes a table of the recognized scripts and the frontmatter
// keys each one enables. Terminal output gets a colored header.
func RenderScripts(w io.Writer, scripts []installer.Script, format Format) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(scriptColumns)
	if Resolve(format, w) == FormatTerminal {
		colors := make([]tablewriter.Colors, len(scriptColumns))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
		}
		table.SetHeaderColor(colors...)
	}
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, s := range scripts {
		keys := "-"
		if active := s.Metadata.ActiveKeys(); len(active) > 0 {
			keys = strings.Join(active, ", ")
		}
		table.Append([]string{
			s.StubName,
			s.FileName,
			s.Type.Kind.String(),
			s.Metadata.Name(s.StubName),
			keys,
		})
	}

	table.SetFooter([]string{"", "", "", "Total", fmt.Sprintf("%d", len(scripts))})
	table.Render()
}
