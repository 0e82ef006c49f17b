package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// Default tracer name for htmlnode renderers.
const defaultTracerName = "htmlnode"

// Config configures a Renderer.
type Config struct {
	// Namespace is the metrics namespace (default: "htmlnode").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the metrics. Nil disables metrics.
	Registry prometheus.Registerer

	// TracerName is the name of the tracer (default: "htmlnode").
	TracerName string

	// TracerProvider supplies the tracer. Nil uses the global provider.
	TracerProvider trace.TracerProvider

	// Logger receives one record per render. Nil uses slog.Default().
	Logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry enables metrics and registers them with registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  "htmlnode",
		Buckets:    prometheus.DefBuckets,
		TracerName: defaultTracerName,
	}
}

// Renderer renders node trees and records each render. It is safe for
// concurrent use; the trees passed to it are not.
type Renderer struct {
	config  Config
	metrics *metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	r := &Renderer{config: config, logger: config.Logger}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if config.Registry != nil {
		r.metrics = newMetrics(config)
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	r.tracer = tp.Tracer(config.TracerName)
	return r
}

// Render renders n and returns the markup. page labels the render in
// metrics, traces and logs.
func (r *Renderer) Render(ctx context.Context, page string, n node.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, page, n, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo renders n and writes it to w. Nothing is written when
// rendering fails.
func (r *Renderer) RenderTo(ctx context.Context, w io.Writer, page string, n node.Node) (int, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, page, n, &buf); err != nil {
		return 0, err
	}
	return w.Write(buf.Bytes())
}

func (r *Renderer) render(ctx context.Context, page string, n node.Node, buf *bytes.Buffer) error {
	_, span := r.tracer.Start(ctx, "htmlnode.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("htmlnode.page", page)),
	)
	defer span.End()

	start := time.Now()
	var err error
	if n == nil {
		err = errors.Newf(errors.CategoryNode, "nothing to render for %s", page)
	} else {
		err = n.WriteHTML(buf)
	}
	if err != nil {
		buf.Reset()
	}
	elapsed := time.Since(start)

	if err != nil {
		code := errors.CodeOf(err)
		if code == "" {
			code = "unknown"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "render failed",
			"page", page,
			"code", code,
			"error", err,
		)
		if r.metrics != nil {
			r.metrics.rendersTotal.WithLabelValues(page, "error").Inc()
			r.metrics.renderErrors.WithLabelValues(page, code).Inc()
			r.metrics.renderDuration.WithLabelValues(page).Observe(elapsed.Seconds())
		}
		return err
	}

	span.SetAttributes(attribute.Int("htmlnode.bytes", buf.Len()))
	span.SetStatus(codes.Ok, "")
	r.logger.DebugContext(ctx, "rendered",
		"page", page,
		"bytes", buf.Len(),
		"duration", elapsed,
	)
	if r.metrics != nil {
		r.metrics.rendersTotal.WithLabelValues(page, "ok").Inc()
		r.metrics.renderDuration.WithLabelValues(page).Observe(elapsed.Seconds())
		r.metrics.renderBytes.WithLabelValues(page).Observe(float64(buf.Len()))
	}
	return nil
}
