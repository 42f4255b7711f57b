package main

import (
	"fmt"

	"github.com/aretw0/folio/pkg/site"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the layouts declared by the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSite(cmd)
		if err != nil {
			return err
		}

		def := s.DefaultLayout().Name()
		for _, name := range s.Layouts().Names() {
			marker := " "
			if name == def {
				marker = "*"
			}
			line := fmt.Sprintf("%s %s", marker, name)
			if l, err := s.Lookup(name); err == nil {
				if d, ok := l.(site.Layout); ok && d.Description() != "" {
					line += " - " + d.Description()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
