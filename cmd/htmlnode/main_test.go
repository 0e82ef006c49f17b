package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newApp().rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// projectDir returns a directory holding a default htmlnode.json.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Site.Title = "Test Site"
	require.NoError(t, cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)))
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestTags(t *testing.T) {
	out, err := run(t, "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "TAG")
	for _, want := range []string{"img", "link", "script", `rel="text/css"`, "doctype"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "html5")
}

func TestRender(t *testing.T) {
	dir := projectDir(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "home",
			args: []string{"render"},
			want: []string{`<!DOCTYPE HTML><html lang="en">`, "<title>Test Site</title>", "<h1>Test Site</h1>"},
		},
		{
			name: "title flag",
			args: []string{"render", "/about", "--title", "About & more"},
			want: []string{"<title>About &amp; more</title>", "<h2>How it works</h2>"},
		},
		{
			name: "route parameter",
			args: []string{"render", "/hello/{name}", "--set", "name=<Ada>", "--set", "greeting=hi"},
			want: []string{"<h2>Hello, &lt;Ada&gt;!</h2>", "<p>hi</p>"},
		},
		{
			name: "tags page",
			args: []string{"render", "/tags"},
			want: []string{"<td><code>img</code></td><td>singleton</td><td>src</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append(tt.args, "--config", dir)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderToFile(t *testing.T) {
	dir := projectDir(t)
	target := filepath.Join(dir, "about.html")

	out, err := run(t, "render", "/about", "--out", target, "--config", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE HTML>"))
}

func TestRenderErrors(t *testing.T) {
	dir := projectDir(t)

	_, err := run(t, "render", "/missing", "--config", dir)
	assert.Equal(t, errors.CodePageNotFound, errors.CodeOf(err))

	_, err = run(t, "render", "--set", "novalue", "--config", dir)
	assert.Equal(t, errors.CodeInvalidArgs, errors.CodeOf(err))

	_, err = run(t, "render", "--config", filepath.Join(dir, "nope.json"))
	assert.Equal(t, errors.CodeConfigNotFound, errors.CodeOf(err))
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := projectDir(t)

	t.Setenv("HTMLNODE_TITLE", "From Env")
	out, err := run(t, "render", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>From Env</title>")

	out, err = run(t, "render", "--config", dir, "--title", "From Flag")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>From Flag</title>")

	t.Setenv("HTMLNODE_LOG_LEVEL", "loud")
	_, err = run(t, "render", "--config", dir)
	assert.Equal(t, errors.CodeConfigInvalid, errors.CodeOf(err))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", "--name", "docs", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, config.ConfigFileName)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.Name)

	_, err = run(t, "init", "--config", dir)
	assert.Equal(t, errors.CodeConfigWrite, errors.CodeOf(err))

	_, err = run(t, "init", "--force", "--config", dir)
	assert.NoError(t, err)
}

func TestPublishDryRun(t *testing.T) {
	dir := projectDir(t)

	out, err := run(t, "publish", "--dry-run", "--prefix", "docs/", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "/ -> docs/index.html")
	assert.Contains(t, out, "/about -> docs/about/index.html")
	assert.Contains(t, out, "Skipped /hello/{name}")
	assert.Contains(t, out, "Would upload 3 page(s)")
}

func TestPublishWithoutBucket(t *testing.T) {
	dir := projectDir(t)
	_, err := run(t, "publish", "--config", dir)
	assert.Equal(t, errors.CodePublishFailed, errors.CodeOf(err))
}

func TestCodes(t *testing.T) {
	out, err := run(t, "codes")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Less(t, strings.Index(out, "H001"), strings.Index(out, "H140"))

	out, err = run(t, "codes", "h006")
	require.NoError(t, err)
	assert.Contains(t, out, "H006 Unresolved placeholder (template)")

	_, err = run(t, "codes", "H999")
	assert.Equal(t, errors.CodeInvalidArgs, errors.CodeOf(err))
}

func TestPrintErrorJSON(t *testing.T) {
	dir := projectDir(t)
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	cfg.Log.Format = "json"
	require.NoError(t, cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)))

	a := newApp()
	cmd := a.rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--set", "novalue", "--config", dir})
	runErr := cmd.Execute()
	require.Error(t, runErr)

	var buf bytes.Buffer
	a.printError(&buf, runErr)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	assert.Equal(t, errors.CodeInvalidArgs, decoded["code"])
	assert.Equal(t, "cli", decoded["category"])

	buf.Reset()
	a.printError(&buf, fmt.Errorf("disk full"))
	decoded = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "disk full", decoded["message"])
}

func TestPrintErrorText(t *testing.T) {
	var buf bytes.Buffer
	newApp().printError(&buf, errors.New(errors.CodeInvalidArgs))
	assert.Contains(t, buf.String(), "H140")
	assert.NotContains(t, buf.String(), `"code"`)
}
