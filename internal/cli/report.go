package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/observability"
)

// Resolution is one row of a layout resolution report.
type Resolution struct {
	Path   string `json:"path"`
	Title  string `json:"title"`
	Layout string `json:"layout"`
	Source string `json:"source"`
}

// Resolve resolves every page's layout. When metrics is non-nil each
// resolution is recorded.
func Resolve(pages []*layout.Page, metrics *observability.Metrics) []Resolution {
	rows := make([]Resolution, 0, len(pages))
	for _, p := range pages {
		var l layout.Layout
		if metrics != nil {
			l = metrics.ObservePage(p)
		} else {
			l = layout.Resolve(p)
		}
		source := observability.SourceDefault
		if p.Explicit() {
			source = observability.SourceExplicit
		}
		rows = append(rows, Resolution{
			Path:   p.Path(),
			Title:  p.Title(),
			Layout: l.Name(),
			Source: source,
		})
	}
	return rows
}

// MarkdownTable renders rows as a Markdown table.
func MarkdownTable(rows []Resolution) string {
	var sb strings.Builder
	sb.WriteString("| Path | Title | Layout | Source |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			escapeCell(r.Path), escapeCell(r.Title), escapeCell(r.Layout), r.Source)
	}
	return sb.String()
}

// WritePlain writes rows as aligned columns.
func WritePlain(w io.Writer, rows []Resolution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTITLE\tLAYOUT\tSOURCE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Path, r.Title, r.Layout, r.Source)
	}
	return tw.Flush()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
