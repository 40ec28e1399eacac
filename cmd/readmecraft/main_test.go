package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmecraft/readmecraft/internal/errors"
)

// run executes the CLI with the configuration search rooted at dir.
func run(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd(&cli{workDir: dir})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCreate_Simple(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "README.md")

	_, stderr, err := run(t, dir, "create", "--template", "simple", "--name", "foo", "-o", dest)
	require.NoError(t, err)

	readme := readFile(t, dest)
	firstLine, _, _ := strings.Cut(readme, "\n")
	assert.Equal(t, "# foo", firstLine)
	assert.Contains(t, readme, "npm install foo")
	assert.Contains(t, readme, "A great project")
	assert.Contains(t, readme, "Your Name")
	assert.NotContains(t, readme, "{{")

	assert.Contains(t, stderr, "README created: "+dest)
	assert.Contains(t, stderr, "Template: simple")
}

func TestCreate_DefaultOutputFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readmecraft.json"), `{"defaults": {"author": "Ada Lovelace"}}`)
	nested := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(nested, 0755))

	_, _, err := run(t, nested, "create", "-n", "engine")
	require.NoError(t, err)

	readme := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, readme, "# engine")
	assert.Contains(t, readme, "Ada Lovelace")
}

func TestCreate_Stdout(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "create", "-n", "foo", "-o", "-", "--year", "1999", "--author", "Ada")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# foo\n"))
	assert.Contains(t, stdout, "MIT © 1999 Ada")
}

func TestCreate_Advanced(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "create", "-t", "advanced", "-n", "engine",
		"--author", "Ada Lovelace", "--repo-url", "https://github.com/ada/engine", "-o", "-")
	require.NoError(t, err)

	assert.Contains(t, stdout, "https://github.com/ada/engine/workflows/CI/badge.svg")
	assert.Contains(t, stdout, "[our wiki](https://github.com/ada/engine/wiki)")
	assert.Contains(t, stdout, "[@adalovelace](https://github.com/adalovelace)")
	assert.NotContains(t, stdout, "{{")
}

func TestCreate_FromMetadataFile(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "readme.yaml")
	writeFile(t, meta, "name: from-file\ndescription: Loaded from YAML\nauthor: Grace\n")

	stdout, _, err := run(t, dir, "create", "--from", meta, "--author", "Override", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# from-file")
	assert.Contains(t, stdout, "Loaded from YAML")
	assert.Contains(t, stdout, "Override")
	assert.NotContains(t, stdout, "Grace")
}

func TestCreate_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(tmplDir, 0755))
	writeFile(t, filepath.Join(tmplDir, "team.md"), "# {{projectName}} ({{team}})\n")

	stdout, _, err := run(t, dir, "create", "-t", "team", "--templates-dir", tmplDir, "-n", "x", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "# x ({{team}})\n", stdout)
}

func TestCreate_TemplateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.md")
	writeFile(t, path, "Project {{ projectName }} © {{year}}\n")

	stdout, _, err := run(t, dir, "create", "--template-file", path, "-n", "x", "--year", "2020", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "Project x © 2020\n", stdout)
}

func TestCreate_Errors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.md")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown template", []string{"create", "-t", "fancy", "-o", "-"}, "E003"},
		{"missing template file", []string{"create", "--template-file", missing, "-o", "-"}, "E004"},
		{"missing metadata file", []string{"create", "--from", filepath.Join(dir, "nope.yaml"), "-o", "-"}, "E006"},
		{"unwritable output", []string{"create", "-o", filepath.Join(dir, "no", "such", "README.md")}, "E005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, dir, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "error = %v, want %s", err, tt.code)
		})
	}

	_, _, err := run(t, dir, "create", "--template-file", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestBadges(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, dir, "badges", "-u", "a", "-r", "b")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "a/b")

	stdout, _, err = run(t, dir, "badges", "-u", "a", "-r", "b", "-p", "pkg")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "pkg")
	assert.Contains(t, lines[2], "pkg")

	stdout, _, err = run(t, dir, "badges", "-u", "a", "-r", "b", "-l", "MIT", "--languages", "Go, Rust")
	require.NoError(t, err)
	assert.Contains(t, stdout, "MIT")
	assert.Contains(t, stdout, "green")
	assert.Contains(t, stdout, "Go")
	assert.Contains(t, stdout, "Rust")
}

func TestBadges_MissingRequired(t *testing.T) {
	tests := [][]string{
		{"badges"},
		{"badges", "-u", "a"},
		{"badges", "-r", "b"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			stdout, _, err := run(t, t.TempDir(), args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, "E001"), "error = %v", err)
			assert.Empty(t, stdout)
		})
	}
}

func TestBadges_FromRepoURL(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "readme.yaml")
	writeFile(t, meta, "repoUrl: https://github.com/ada/engine\nlicense: Apache-2.0\n")

	stdout, _, err := run(t, dir, "badges", "--from", meta)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ada/engine")
	assert.Contains(t, stdout, "blue")
}

func TestBadges_OutputFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "BADGES.md")

	stdout, stderr, err := run(t, dir, "badges", "-u", "a", "-r", "b", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Badges saved to "+dest)
	assert.Contains(t, readFile(t, dest), "a/b")
}

func TestSection(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, dir, "section", "installation", "--name", "foo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Installation")
	assert.Contains(t, stdout, "npm install foo")

	stdout, _, err = run(t, dir, "section", "license", "--author", "Ada")
	require.NoError(t, err)
	assert.Contains(t, stdout, "MIT")
	assert.Contains(t, stdout, "Ada")

	stdout, _, err = run(t, dir, "section", "usage")
	require.NoError(t, err)
	assert.Contains(t, stdout, "my-project")
}

func TestSection_FromMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readmecraft.json"), `{"defaults": {"license": "Apache-2.0"}}`)
	meta := filepath.Join(dir, "readme.yaml")
	writeFile(t, meta, "features: [Streams, Retries]\nyear: \"2021\"\n")

	stdout, _, err := run(t, dir, "section", "license", "--author", "Ada", "--from", meta)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Apache-2.0 License")
	assert.Contains(t, stdout, "Copyright © 2021 Ada")

	stdout, _, err = run(t, dir, "section", "features", "--from", meta)
	require.NoError(t, err)
	assert.Equal(t, "## Features\n\n- ✨ Streams\n- ✨ Retries\n", stdout)
}

func TestSection_Errors(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "section", "changelog")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E002"), "error = %v", err)

	_, _, err = run(t, t.TempDir(), "section")
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(tmplDir, 0755))
	writeFile(t, filepath.Join(tmplDir, "team.md"), "x")
	writeFile(t, filepath.Join(dir, "readmecraft.json"), `{"templatesDir": "templates"}`)

	stdout, _, err := run(t, dir, "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "• simple - Minimalist README for small projects")
	assert.Contains(t, stdout, "• advanced - Comprehensive README with all sections")
	assert.Contains(t, stdout, "• team")
	assert.Contains(t, stdout, "readmecraft create --template <name>")
}

func TestInit(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "coming soon")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "version", "-s")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)

	stdout, _, err = run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go version:")
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	writeFile(t, path, "# Hello\n\nSome text.\n")

	stdout, _, err := run(t, dir, "preview", path, "--html")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<!DOCTYPE html>")
	assert.Contains(t, stdout, `<h1 id="hello">Hello</h1>`)

	stdout, _, err = run(t, dir, "preview", path, "--style", "notty", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Hello")

	_, _, err = run(t, dir, "preview", filepath.Join(dir, "missing.md"))
	assert.True(t, errors.HasCode(err, "E009"), "error = %v", err)
}

func TestGlobalFlags(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, dir, "--log-level", "loud", "templates")
	assert.True(t, errors.HasCode(err, "E010"), "error = %v", err)

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"preview": {"port": -1}}`)
	_, _, err = run(t, dir, "--config", bad, "templates")
	assert.True(t, errors.HasCode(err, "E007"), "error = %v", err)

	_, stderr, err := run(t, dir, "--log-level", "debug", "templates")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
}

func TestCreate_Compose(t *testing.T) {
	stdout, stderr, err := run(t, t.TempDir(), "create", "--compose", "-n", "engine",
		"--features", "Fast, Small", "--roadmap", "-o", "-")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "# engine\n\nA great project\n\n"))
	assert.Contains(t, stdout, "## Installation")
	assert.Contains(t, stdout, "- ✨ Fast\n- ✨ Small")
	assert.Contains(t, stdout, "## Roadmap")
	assert.Contains(t, stdout, "## License")
	assert.Contains(t, stderr, "README created: stdout")
}

func TestExecute_ExitStatus(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		status int
		stderr string
	}{
		{"success", []string{"--no-color", "section", "usage"}, 0, ""},
		{"unknown section", []string{"--no-color", "section", "changelog"}, 1, "E002"},
		{"missing argument", []string{"--no-color", "badges", "-u", "a"}, 1, "E001"},
		{"invalid log level", []string{"--no-color", "--log-level", "loud", "init"}, 1, "Invalid option value"},
		{"invalid port", []string{"--no-color", "serve", "--port", "70000"}, 1, "Invalid --port 70000"},
		{"unknown command", []string{"--no-color", "publish"}, 1, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := execute(context.Background(), &cli{workDir: t.TempDir()}, tt.args, &stdout, &stderr)
			assert.Equal(t, tt.status, status)
			if tt.stderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.stderr)
			}
		})
	}
}
