// Package server serves an htmlnode site over HTTP.
//
// Every registered page becomes a chi route; URL parameters and query
// values are passed to the page as template context. The server also
// exposes:
//
//	GET /healthz   liveness probe
//	GET /metrics   Prometheus metrics (when a Gatherer is configured)
//	GET /_reload   websocket announcing site changes (when HotReload is on)
//
// Routes are rebuilt whenever a page is added to the site, and connected
// browsers are told to reload.
//
//	srv := server.New(s, renderer, &server.Config{
//	    Address:   ":3000",
//	    HotReload: true,
//	    Metrics:   registry,
//	})
//	err := srv.Run(ctx)
package server
