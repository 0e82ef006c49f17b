package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

func (a *app) initCmd() *cobra.Command {
	var (
		force bool
		name  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default htmlnode.json",
		Long: `Write htmlnode.json with default settings to the current
directory, or to the path given with --config.

Examples:
  htmlnode init
  htmlnode init --name docs --config ./site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.configTarget()
			if _, err := os.Stat(target); err == nil && !force {
				return errors.New(errors.CodeConfigWrite).
					WithDetail(target + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.New()
			cfg.Name = name
			if err := cfg.SaveTo(target); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&name, "name", "", "Project name")

	return cmd
}
