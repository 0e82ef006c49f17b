package publish

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/site"
	"github.com/vango-dev/htmlnode/pkg/template"
)

// ContentType is set on every uploaded page.
const ContentType = "text/html; charset=utf-8"

// ErrPublishFailed is returned when a page cannot be uploaded.
var ErrPublishFailed = errors.Sentinel(errors.CodePublishFailed)

var errMissingCredentials = errors.New(errors.CodePublishFailed).
	WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")

// Config configures a Publisher.
type Config struct {
	// Bucket is the target bucket.
	Bucket string

	// Prefix is prepended to every key, e.g. "docs/".
	Prefix string

	// CacheControl is set on every object when non-empty.
	CacheControl string

	// Context is passed to every page build.
	Context template.Context

	// DryRun renders every page but uploads nothing.
	DryRun bool

	// Renderer renders the pages. Nil renders without metrics.
	Renderer *render.Renderer

	// Logger receives one record per page.
	// Default: slog.Default().
	Logger *slog.Logger
}

// Object describes one uploaded page.
type Object struct {
	Path string
	Key  string
	Size int
}

// Result lists what a Publish call did.
type Result struct {
	Objects []Object
	Skipped []string
}

// Publisher uploads the pages of a site.
type Publisher struct {
	client PutObjectAPI
	site   *site.Site
	config Config
	logger *slog.Logger
}

// New creates a Publisher. client may be nil for dry runs.
func New(client PutObjectAPI, s *site.Site, config Config) *Publisher {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "publish")
	if config.Renderer == nil {
		config.Renderer = render.New(render.WithLogger(logger))
	}
	return &Publisher{
		client: client,
		site:   s,
		config: config,
		logger: logger,
	}
}

// Key returns the object key of the page at path. A non-empty prefix is
// treated as a directory.
func Key(prefix, path string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	path = strings.Trim(site.CleanPath(path), "/")
	if path == "" {
		return prefix + "index.html"
	}
	return prefix + path + "/index.html"
}

// Publish renders and uploads every page in site order. It stops at the
// first failure; objects uploaded before it stay in the bucket.
func (p *Publisher) Publish(ctx context.Context) (*Result, error) {
	if !p.config.DryRun && (p.client == nil || p.config.Bucket == "") {
		return nil, errors.New(errors.CodePublishFailed).
			WithDetail("no bucket configured").
			WithSuggestion("set publish.bucket in htmlnode.json or pass --bucket")
	}

	result := &Result{}
	for _, path := range p.site.Paths() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if strings.Contains(path, "{") {
			p.logger.Warn("skipping parameterized page", "page", path)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		obj, err := p.publishPage(ctx, path)
		if err != nil {
			return result, err
		}
		result.Objects = append(result.Objects, obj)
	}
	return result, nil
}

func (p *Publisher) publishPage(ctx context.Context, path string) (Object, error) {
	tree, err := p.site.Build(path, p.config.Context)
	if err != nil {
		return Object{}, err
	}
	html, err := p.config.Renderer.Render(ctx, path, tree)
	if err != nil {
		return Object{}, err
	}

	obj := Object{Path: path, Key: Key(p.config.Prefix, path), Size: len(html)}
	if p.config.DryRun {
		p.logger.Info("would upload", "page", path, "key", obj.Key, "bytes", obj.Size)
		return obj, nil
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(obj.Key),
		Body:          bytes.NewReader([]byte(html)),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String(ContentType),
		Metadata: map[string]string{
			"generator": "htmlnode",
			"page":      path,
		},
	}
	if p.config.CacheControl != "" {
		input.CacheControl = aws.String(p.config.CacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return Object{}, errors.New(errors.CodePublishFailed).
			WithDetailf("upload of %s to s3://%s/%s failed", path, p.config.Bucket, obj.Key).
			Wrap(err)
	}
	p.logger.Info("uploaded", "page", path, "key", obj.Key, "bytes", obj.Size)
	return obj, nil
}
