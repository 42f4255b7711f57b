package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/internal/presentation/graph"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/aretw0/folio/pkg/observability"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show which layout each page resolves to",
	Long:  `Lists every content page with the layout it will be rendered inside and whether that layout was chosen by the page or inherited from the site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSite(cmd)
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("content")
		pages, err := cli.LoadPages(cmd.Context(), dir, s)
		if err != nil {
			return err
		}
		rows := cli.Resolve(pages, nil)

		format, _ := cmd.Flags().GetString("format")
		if format == "auto" {
			format = "plain"
			if tui.IsTerminal(os.Stdout) {
				format = "markdown"
			}
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		case "mermaid":
			edges := make([]graph.PageEdge, 0, len(rows))
			for _, r := range rows {
				edges = append(edges, graph.PageEdge{
					Page:     r.Path,
					Layout:   r.Layout,
					Explicit: r.Source == observability.SourceExplicit,
				})
			}
			fmt.Fprint(out, graph.GenerateMermaid(s.Layouts().Names(), s.DefaultLayout().Name(), edges))
			return nil
		case "plain":
			return cli.WritePlain(out, rows)
		case "markdown":
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			text, err := render("# Layout resolution\n\n" + cli.MarkdownTable(rows))
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		}
		return fmt.Errorf("unknown format %q", format)
	},
}

func init() {
	resolveCmd.Flags().String("format", "auto", "Output format: auto, markdown, plain, json, mermaid")
	rootCmd.AddCommand(resolveCmd)
}
