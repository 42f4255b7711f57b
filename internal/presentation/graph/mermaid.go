package graph

import (
	"fmt"
	"strings"
)

// PageEdge links a page to the layout it resolves to.
type PageEdge struct {
	Page     string
	Layout   string
	Explicit bool
}

// GenerateMermaid produces a Mermaid flowchart of pages and the layouts they
// render inside. It applies semantic styling:
// - Default layout: ((Circle))
// - Other layouts: [[Subroutine]]
// - Pages: [Rectangle]
// Explicit layouts use a solid arrow; inherited defaults a dotted one.
func GenerateMermaid(layouts []string, defaultLayout string, pages []PageEdge) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, name := range layouts {
		opener, closer := "[[", "]]"
		if name == defaultLayout {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", layoutID(name), opener, escapeLabel(name), closer)
	}

	for _, p := range pages {
		arrow := "-.->"
		if p.Explicit {
			arrow = "-->"
		}
		fmt.Fprintf(&sb, "    %s[\"%s\"] %s %s\n", pageID(p.Page), escapeLabel(p.Page), arrow, layoutID(p.Layout))
	}

	if defaultLayout != "" {
		sb.WriteString("\n    %% Default layout\n")
		// Force black text (color:#000) for contrast on light backgrounds regardless of theme
		sb.WriteString("    classDef fallback fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s fallback;\n", layoutID(defaultLayout))
	}

	return sb.String()
}

func layoutID(name string) string { return "layout_" + sanitizeMermaidID(name) }

func pageID(path string) string { return "page_" + sanitizeMermaidID(path) }

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
