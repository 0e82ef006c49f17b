package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/pkg/publish"
	"github.com/vango-dev/htmlnode/pkg/render"
)

func (a *app) publishCmd() *cobra.Command {
	var (
		dryRun       bool
		cacheControl string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render every page and upload it to S3",
		Long: `Render every page of the site and upload it to an S3 bucket
as <prefix><path>/index.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  htmlnode publish --bucket my-site
  htmlnode publish --bucket my-site --prefix docs/ --dry-run
  htmlnode publish --endpoint http://localhost:9000 --bucket local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			var client publish.PutObjectAPI
			if !dryRun {
				client = publish.NewClient(publish.ClientConfig{
					Region:   cfg.Publish.Region,
					Endpoint: cfg.Publish.Endpoint,
				})
			}

			p := publish.New(client, newSite(cfg), publish.Config{
				Bucket:       cfg.Publish.Bucket,
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cacheControl,
				DryRun:       dryRun,
				Renderer:     render.New(render.WithLogger(logger)),
				Logger:       logger,
			})

			result, err := p.Publish(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			verb := "Uploaded"
			if dryRun {
				verb = "Would upload"
			}
			for _, obj := range result.Objects {
				info(out, "%s -> %s (%d bytes)", obj.Path, obj.Key, obj.Size)
			}
			for _, path := range result.Skipped {
				warn(out, "Skipped %s (route parameters)", path)
			}
			success(out, "%s %d page(s)", verb, len(result.Objects))
			return nil
		},
	}

	cmd.Flags().String("bucket", "", "Target bucket")
	cmd.Flags().String("prefix", "", "Key prefix, e.g. docs/")
	cmd.Flags().String("region", "", "Bucket region")
	cmd.Flags().String("endpoint", "", "S3 endpoint override")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for every object")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render but do not upload")
	for _, name := range []string{"bucket", "prefix", "region", "endpoint"} {
		a.v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}
