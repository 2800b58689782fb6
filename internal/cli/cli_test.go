package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/svgtree/pkg/errors"
)

const squareScene = `width = 70
height = 70
view_box = [0, 0, 70, 70]

[[children]]
name = "path"
attrs = [["fill", "none"], ["stroke", "black"], ["stroke-width", 3]]
d = [["M", 10, 10], ["l", 0, 50], ["l", 50, 0], ["l", 0, -50], ["z"]]

[[children]]
name = "text"
attrs = [["x", 35], ["y", 35.5]]
text = "square"
`

const squareSVG = "<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 70 70' width='70' height='70'>\n" +
	"<path fill='none' stroke='black' stroke-width='3' d='M 10 10 l 0 50 l 50 0 l 0 -50 z'/>\n" +
	"<text x='35' y='35.5'>\nsquare\n</text>\n" +
	"</svg>\n"

// setup isolates config and cache directories and captures status output.
func setup(t *testing.T) (dir string, status *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	status = &bytes.Buffer{}
	old := stdout
	stdout = status
	t.Cleanup(func() { stdout = old })
	return dir, status
}

func writeScene(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := map[string]bool{"render": false, "inspect": false, "serve": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
	if root.Version == "" {
		t.Error("root command should carry a version")
	}
}

func TestRenderToStdout(t *testing.T) {
	dir, _ := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)

	out, err := execute(t, "", "render", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != squareSVG {
		t.Errorf("render output =\n%s\nwant\n%s", out, squareSVG)
	}
}

func TestRenderFromStdin(t *testing.T) {
	setup(t)
	out, err := execute(t, squareScene, "render", "-", "-f", "outline", "--no-cache")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "svg\n  path\n") {
		t.Errorf("outline output = %q", out)
	}
}

func TestRenderToFile(t *testing.T) {
	dir, status := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)
	output := filepath.Join(dir, "out", "square.svg")

	if _, err := execute(t, "", "render", path, "-o", output); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != squareSVG {
		t.Errorf("file content = %q", data)
	}
	if !strings.Contains(status.String(), output) || !strings.Contains(status.String(), "fresh") {
		t.Errorf("status output = %q", status.String())
	}

	// A second render comes from the file cache.
	status.Reset()
	if _, err := execute(t, "", "render", path, "-o", output); err != nil {
		t.Fatalf("second render error: %v", err)
	}
	if !strings.Contains(status.String(), "cached") {
		t.Errorf("second render status = %q, want cached", status.String())
	}
}

func TestRenderPNG(t *testing.T) {
	dir, status := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)
	output := filepath.Join(dir, "square.png")

	if _, err := execute(t, "", "render", path, "-f", "png", "--scale", "2", "-o", output); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG: % x", data[:min(8, len(data))])
	}
	if !strings.Contains(status.String(), "Rendered png") {
		t.Errorf("status output = %q", status.String())
	}
}

func TestRenderErrors(t *testing.T) {
	dir, _ := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)
	broken := writeScene(t, dir, "broken.json", `{"children": [{"name": "path", "d": [["C", 1, 2]]}]}`)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.toml")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", path, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad scale", []string{"render", path, "-f", "png", "--scale", "-2"}, errors.ErrCodeInvalidInput},
		{"bad arity", []string{"render", broken}, errors.ErrCodeInvalidArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	dir, status := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)

	if _, err := execute(t, "", "inspect", path, "--attrs"); err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	out := status.String()
	for _, want := range []string{"square.toml", `stroke="black"`, `"square"`, "4 nodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestCachePath(t *testing.T) {
	dir, _ := setup(t)
	out, err := execute(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "cache", appName); strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}

func TestCacheClear(t *testing.T) {
	dir, status := setup(t)
	path := writeScene(t, dir, "square.toml", squareScene)

	if _, err := execute(t, "", "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(status.String(), "Cache is empty") {
		t.Errorf("status = %q", status.String())
	}

	if _, err := execute(t, "", "render", path); err != nil {
		t.Fatal(err)
	}
	status.Reset()
	if _, err := execute(t, "", "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(status.String(), "Cleared 1 cached entries") {
		t.Errorf("status = %q", status.String())
	}
}

func TestConfigFlag(t *testing.T) {
	dir, _ := setup(t)
	cfg := writeScene(t, dir, "svgtree.toml", "[cache]\nbackend = \"none\"\n")
	path := writeScene(t, dir, "square.toml", squareScene)

	if _, err := execute(t, "", "--config", cfg, "render", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cache", appName)); !os.IsNotExist(err) {
		t.Error("cache backend none should not create the cache directory")
	}

	bad := writeScene(t, dir, "bad.toml", "[cache]\nbackend = \"s3\"\n")
	if _, err := execute(t, "", "--config", bad, "render", path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad config error = %v, want INVALID_INPUT", err)
	}
}

func TestCompletion(t *testing.T) {
	setup(t)
	out, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "svgtree") {
		t.Error("bash completion should mention the command name")
	}
}
