package main

import (
	"fmt"

	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the site configuration and content pages",
	Long:  `Loads the site configuration, resolves the default layout and verifies that every page names a known layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		s, _, err := loadSite(cmd)
		if err != nil {
			fmt.Fprintln(out, tui.Status(false, "site configuration"))
			return err
		}
		fmt.Fprintln(out, tui.Status(true, fmt.Sprintf("site configuration (default layout %q)", s.DefaultLayout().Name())))

		dir, _ := cmd.Flags().GetString("content")
		pages, err := cli.LoadPages(cmd.Context(), dir, s)
		if err != nil {
			fmt.Fprintln(out, tui.Status(false, "content pages"))
			return err
		}
		fmt.Fprintln(out, tui.Status(true, fmt.Sprintf("%d content pages", len(pages))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
