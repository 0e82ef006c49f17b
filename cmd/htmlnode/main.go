package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌┬┐┌┬┐┬  ┌┐┌┌─┐┌┬┐┌─┐
  ├─┤ │ ││││  ││││ │ ││├┤
  ┴ ┴ ┴ ┴ ┴┴─┘┘└┘└─┘─┴┘└─┘
`

// app holds state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgPath string

	// logFormat is the log format of the last loaded config.
	logFormat string
}

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *app {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("HTMLNODE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	return a
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "htmlnode",
		Short: "Build HTML pages from Go node trees",
		Long: `htmlnode renders HTML from trees of Go values.

Pages are built from tags, templates and layouts and can be
rendered to stdout, served with live reload, or published to S3.

Settings come from htmlnode.json, overridden by HTMLNODE_*
environment variables, overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "htmlnode.json file or directory (default: nearest htmlnode.json)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	a.v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		a.initCmd(),
		a.renderCmd(),
		a.serveCmd(),
		a.publishCmd(),
		tagsCmd(),
		codesCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads htmlnode.json, falling back to defaults when none
// exists, and applies environment and flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := a.readConfig()
	if err != nil {
		if errors.CodeOf(err) != errors.CodeConfigNotFound || a.cfgPath != "" {
			return nil, err
		}
		cfg = config.New()
	}

	if a.v.IsSet("log-level") {
		cfg.Log.Level = a.v.GetString("log-level")
	}
	if a.v.IsSet("log-format") {
		cfg.Log.Format = a.v.GetString("log-format")
	}
	if a.v.IsSet("title") {
		cfg.Site.Title = a.v.GetString("title")
	}
	if a.v.IsSet("host") {
		cfg.Dev.Host = a.v.GetString("host")
	}
	if a.v.IsSet("port") {
		cfg.Dev.Port = a.v.GetInt("port")
	}
	if a.v.IsSet("bucket") {
		cfg.Publish.Bucket = a.v.GetString("bucket")
	}
	if a.v.IsSet("prefix") {
		cfg.Publish.Prefix = a.v.GetString("prefix")
	}
	if a.v.IsSet("region") {
		cfg.Publish.Region = a.v.GetString("region")
	}
	if a.v.IsSet("endpoint") {
		cfg.Publish.Endpoint = a.v.GetString("endpoint")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a.logFormat = cfg.Log.Format
	return cfg, nil
}

// printError writes err for a human, or as one JSON line when logs are
// JSON so that log collectors can parse it.
func (a *app) printError(w io.Writer, err error) {
	format := a.logFormat
	if format == "" {
		format = a.v.GetString("log-format")
	}
	if format != "json" {
		errors.Fprint(w, err)
		return
	}

	var he *errors.Error
	if !stderrors.As(err, &he) {
		he = errors.Newf(errors.CategoryCLI, "%v", err)
	}
	fmt.Fprintln(w, he.FormatJSON())
}

func (a *app) readConfig() (*config.Config, error) {
	if a.cfgPath == "" {
		return config.LoadFromWorkingDir()
	}
	if info, err := os.Stat(a.cfgPath); err == nil && info.IsDir() {
		return config.Load(a.cfgPath)
	}
	return config.LoadFile(a.cfgPath)
}

// configTarget returns the file init writes to.
func (a *app) configTarget() string {
	if a.cfgPath == "" {
		return config.ConfigFileName
	}
	if info, err := os.Stat(a.cfgPath); err == nil && info.IsDir() {
		return filepath.Join(a.cfgPath, config.ConfigFileName)
	}
	return a.cfgPath
}

// newLogger builds the process logger from cfg. Logs go to w so that
// rendered output on stdout stays clean.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
