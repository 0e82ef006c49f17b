// Package render renders node trees with metrics, tracing and logging.
//
// A Renderer wraps node.Render. Every call is recorded as a Prometheus
// observation, an OpenTelemetry span and a structured log line, labelled
// with the page name the caller passes:
//
//	reg := prometheus.NewRegistry()
//	r := render.New(
//	    render.WithRegistry(reg),
//	    render.WithLogger(logger),
//	)
//	html, err := r.Render(ctx, "/about", page)
//
// Metrics collected (namespace "htmlnode" by default):
//   - htmlnode_renders_total: renders by page and status
//   - htmlnode_render_duration_seconds: render latency by page
//   - htmlnode_render_errors_total: failed renders by page and error code
//   - htmlnode_render_bytes: size of the rendered output
//
// Without WithRegistry no metrics are registered. Spans come from the
// global OpenTelemetry tracer provider unless WithTracerProvider is given.
//
// Output is all or nothing: when a tree fails to render nothing is
// written.
package render
