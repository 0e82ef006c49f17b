package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/server"
)

func (a *app) serveCmd() *cobra.Command {
	var noReload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long: `Serve every page of the site, with live reload and
Prometheus metrics on /metrics.

Examples:
  htmlnode serve
  htmlnode serve --port=8080
  HTMLNODE_HOST=0.0.0.0 htmlnode serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			srvConfig := &server.Config{
				Address:   cfg.DevAddress(),
				HotReload: cfg.Dev.HotReload && !noReload,
				Logger:    logger,
			}
			renderOpts := []render.Option{render.WithLogger(logger)}
			if cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				renderOpts = append(renderOpts,
					render.WithRegistry(reg),
					render.WithNamespace(cfg.Metrics.Namespace),
				)
				srvConfig.Metrics = reg
			}

			srv := server.New(newSite(cfg), render.New(renderOpts...), srvConfig)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, banner)
			fmt.Fprintln(out)
			success(out, "Serving on %s", srv.URL())
			if srvConfig.HotReload {
				info(out, "Live reload on /_reload")
			}
			if srvConfig.Metrics != nil {
				info(out, "Metrics on /metrics")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Port to run on (default from htmlnode.json)")
	cmd.Flags().StringP("host", "H", "", "Host to bind to (default from htmlnode.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	a.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	a.v.BindPFlag("host", cmd.Flags().Lookup("host"))

	return cmd
}

