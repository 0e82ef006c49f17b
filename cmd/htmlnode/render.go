package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/template"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		out    string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render one page to stdout or a file",
		Long: `Render a page of the site and print the HTML.

Route parameters and other template values are passed with --set.

Examples:
  htmlnode render
  htmlnode render /about --title "About us"
  htmlnode render /hello/{name} --set name=Ada --out hello.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			ctx := template.Context{}
			for _, kv := range params {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return errors.New(errors.CodeInvalidArgs).
						WithDetailf("--set %q is not key=value", kv)
				}
				ctx[key] = value
			}

			s := newSite(cfg)
			tree, err := s.Build(path, ctx)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			r := render.New(render.WithLogger(logger))
			if _, err := r.RenderTo(cmd.Context(), &buf, path, tree); err != nil {
				return err
			}
			buf.WriteByte('\n')

			if out == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", out, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().String("title", "", "Site title")
	cmd.Flags().StringArrayVar(&params, "set", nil, "Template value as key=value (repeatable)")
	a.v.BindPFlag("title", cmd.Flags().Lookup("title"))

	return cmd
}
