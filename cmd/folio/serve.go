package main

import (
	"net/http"
	"os"
	"time"

	folioHTTP "github.com/aretw0/folio/internal/adapters/http"
	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve layout and page resolution data over HTTP",
	Long:  `Starts an HTTP server exposing /layouts, /pages and Prometheus /metrics for the loaded site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, logger, err := loadSite(cmd)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		// Pages resolve through the instrumented context so default lookups are counted.
		dir, _ := cmd.Flags().GetString("content")
		pages, err := cli.LoadPages(cmd.Context(), dir, s)
		if err != nil {
			return err
		}
		ctx := metrics.Context(s)
		instrumented := make([]*layout.Page, 0, len(pages))
		for _, p := range pages {
			opts := []layout.PageOption{layout.WithTitle(p.Title()), layout.WithPath(p.Path())}
			if p.Explicit() {
				opts = append(opts, layout.WithLayout(p.Layout()))
			}
			instrumented = append(instrumented, layout.NewPage(ctx, p.Body, opts...))
		}

		addr, _ := cmd.Flags().GetString("addr")
		srv := &http.Server{
			Addr: addr,
			Handler: folioHTTP.NewHandler(&folioHTTP.Server{
				Site:     s,
				Pages:    instrumented,
				Metrics:  metrics,
				Gatherer: reg,
				Logger:   logger,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		logger.Info("serving", "addr", addr, "pages", len(instrumented))

		if err := cli.RunServer(cmd.Context(), srv, logger, 5*time.Second); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", envDefaults.Addr, "Listen address (FOLIO_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
