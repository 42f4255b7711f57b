package main

import (
	"fmt"

	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <path>",
	Short: "Preview a page body in the terminal",
	Args:  cobra.ExactArgs(1),
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

		for _, p := range pages {
			if p.Path() != args[0] {
				continue
			}
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			text, err := render(p.Body().Render().String())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (layout: %s)\n%s", p.Title(), p.Layout().Name(), text)
			return nil
		}
		return fmt.Errorf("page not found: %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
