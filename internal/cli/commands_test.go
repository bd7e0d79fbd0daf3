package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/netforest/pkg/errors"
	nfio "github.com/matzehuels/netforest/pkg/io"
	"github.com/matzehuels/netforest/pkg/network"
)

const tree4 = "(1.1.1.1 (2.2.2.2 3.3.3.3) 4.4.4.4)"

func TestQueryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"show", []string{"show", tree4}, tree4 + "\n"},
		{"show root", []string{"show", "(1.1.1.1 (2.2.2.2 3.3.3.3))", "--root", "3.3.3.3"}, "(3.3.3.3 (2.2.2.2 1.1.1.1))\n"},
		{"show file", []string{"show", "testdata/forest.txt"}, "(1.1.1.1 2.2.2.2)\n(3.3.3.3 4.4.4.4)\n"},
		{"list", []string{"list", tree4}, "1.1.1.1\n2.2.2.2\n3.3.3.3\n4.4.4.4\n"},
		{"height", []string{"height", tree4, "4.4.4.4"}, "3\n"},
		{"levels", []string{"levels", tree4, "2.2.2.2", "--plain"}, "[2.2.2.2] [1.1.1.1 3.3.3.3] [4.4.4.4]\n"},
		{"route", []string{"route", tree4, "3.3.3.3", "4.4.4.4", "--plain"}, "3.3.3.3 2.2.2.2 1.1.1.1 4.4.4.4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if out != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, out, tt.want)
			}
		})
	}
}

func TestQueryTables(t *testing.T) {
	out, _, err := execute(t, "levels", tree4, "1.1.1.1")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	for _, want := range []string{"Level", "Addresses", "2.2.2.2 4.4.4.4", "3.3.3.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("levels table missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "route", tree4, "4.4.4.4", "3.3.3.3")
	if err != nil {
		t.Fatalf("route error = %v", err)
	}
	for _, want := range []string{"Hop", "Address", "4.4.4.4", "1.1.1.1", "3.3.3.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("route table missing %q:\n%s", want, out)
		}
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad notation", []string{"show", "(1.1.1.1 2.2.2.2"}, errors.ErrCodeInvalidNotation},
		{"bad address", []string{"height", tree4, "4.4.4"}, errors.ErrCodeInvalidAddress},
		{"absent root", []string{"show", tree4, "--root", "9.9.9.9"}, errors.ErrCodeNotFound},
		{"absent height", []string{"height", tree4, "9.9.9.9"}, errors.ErrCodeNotFound},
		{"absent levels", []string{"levels", tree4, "9.9.9.9"}, errors.ErrCodeNotFound},
		{"no route", []string{"route", "testdata/forest.txt", "1.1.1.1", "3.3.3.3"}, errors.ErrCodeNotFound},
		{"missing file", []string{"list", "testdata/missing.json"}, errors.ErrCodeFileNotFound},
		{"unknown extension", []string{"list", "testdata/pass.toml"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("%v error = %v, want %v", tt.args, err, tt.code)
			}
		})
	}
}

func TestConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, stderr, err := execute(t, "connect", "testdata/forest.txt", "1.1.1.1", "3.3.3.3", "-o", path)
	if err != nil {
		t.Fatalf("connect error = %v", err)
	}
	if !strings.Contains(stderr, "Connected 1.1.1.1 and 3.3.3.3") {
		t.Errorf("connect stderr = %q", stderr)
	}
	if !strings.Contains(out, path) {
		t.Errorf("connect stdout = %q, want written path", out)
	}

	n, err := nfio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got, want := n.String(), "(1.1.1.1 2.2.2.2 (3.3.3.3 4.4.4.4))"; got != want {
		t.Errorf("connected network = %q, want %q", got, want)
	}
}

func TestConnectRejected(t *testing.T) {
	out, stderr, err := execute(t, "connect", tree4, "2.2.2.2", "4.4.4.4")
	if err != nil {
		t.Fatalf("connect error = %v", err)
	}
	if !strings.Contains(stderr, "Cannot connect") {
		t.Errorf("connect stderr = %q", stderr)
	}
	if out != tree4+"\n" {
		t.Errorf("connect stdout = %q, want unchanged network", out)
	}
}

func TestDisconnect(t *testing.T) {
	out, stderr, err := execute(t, "disconnect", tree4, "1.1.1.1", "2.2.2.2")
	if err != nil {
		t.Fatalf("disconnect error = %v", err)
	}
	if !strings.Contains(stderr, "Disconnected") {
		t.Errorf("disconnect stderr = %q", stderr)
	}
	if want := "(1.1.1.1 4.4.4.4)\n(2.2.2.2 3.3.3.3)\n"; out != want {
		t.Errorf("disconnect stdout = %q, want %q", out, want)
	}

	_, stderr, _ = execute(t, "disconnect", tree4, "1.1.1.1", "3.3.3.3")
	if !strings.Contains(stderr, "Cannot disconnect") {
		t.Errorf("disconnect of non-adjacent stderr = %q", stderr)
	}
}

func TestMerge(t *testing.T) {
	out, stderr, err := execute(t, "merge", "(1.1.1.1 2.2.2.2)", "(2.2.2.2 3.3.3.3)", "(2.2.2.2 1.1.1.1)")
	if err != nil {
		t.Fatalf("merge error = %v", err)
	}
	if !strings.Contains(stderr, "Merged (2.2.2.2 3.3.3.3)") || !strings.Contains(stderr, "Nothing merged from (2.2.2.2 1.1.1.1)") {
		t.Errorf("merge stderr = %q", stderr)
	}

	got, err := network.Parse(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("merge output %q does not parse: %v", out, err)
	}
	if !got.Equal(network.MustParse("(1.1.1.1 (2.2.2.2 3.3.3.3))")) {
		t.Errorf("merge output = %q", out)
	}
}

func TestValidate(t *testing.T) {
	out, _, err := execute(t, "validate", tree4, "testdata/forest.txt")
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "valid bracket notation") || !strings.Contains(out, "4 nodes") {
		t.Errorf("validate output = %q", out)
	}

	out, _, err = execute(t, "validate", "(1.1.1.1 1.1.1.1)", tree4)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("validate error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(out, iconError) || !strings.Contains(out, iconSuccess) {
		t.Errorf("validate output = %q", out)
	}
}

func TestExport(t *testing.T) {
	out, _, err := execute(t, "export", tree4, "--format", "yaml")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "nodes:") || !strings.Contains(out, "from: 1.1.1.1") {
		t.Errorf("export yaml = %q", out)
	}

	if _, _, err := execute(t, "export", tree4, "--format", "xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("export xml error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}

	path := filepath.Join(t.TempDir(), "net.yaml")
	if _, _, err := execute(t, "export", "testdata/forest.txt", "-o", path); err != nil {
		t.Fatalf("export -o error = %v", err)
	}
	out, _, err = execute(t, "show", path)
	if err != nil {
		t.Fatalf("show exported error = %v", err)
	}
	if out != "(1.1.1.1 2.2.2.2)\n(3.3.3.3 4.4.4.4)\n" {
		t.Errorf("exported network = %q", out)
	}
}

func TestRun(t *testing.T) {
	out, _, err := execute(t, "run", "testdata/pass.toml", "--all")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{"join", "1.1.1.1 2.2.2.2 3.3.3.3", "list"} {
		if !strings.Contains(out, want) {
			t.Errorf("run output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "run", "testdata/pass.toml", "testdata/fail.toml")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("run error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(out, "wrong height: 1 failed") || !strings.Contains(out, "(want 5)") {
		t.Errorf("run output = %q", out)
	}

	if _, _, err := execute(t, "run", "testdata/missing.toml"); err == nil {
		t.Error("run of a missing file should fail")
	}
}

func TestRender(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	base := filepath.Join(dir, "net")
	_, _, err := execute(t, "render", tree4, "-f", "dot,svg", "-o", base, "--route", "3.3.3.3,4.4.4.4", "--root", "4.4.4.4")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.Contains(string(dot), `"4.4.4.4" -> "1.1.1.1" [color=crimson, penwidth=3];`) {
		t.Errorf("rendered DOT is not rooted at 4.4.4.4 with the route highlighted:\n%s", dot)
	}
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("rendered SVG has no svg element")
	}

	out, _, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("cache clear = %q", out)
	}
}

func TestRenderSingleOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.gv")
	if _, _, err := execute(t, "render", tree4, "-f", "DOT", "-o", path, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("render output = %q", data)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"format", []string{"render", tree4, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"route arity", []string{"render", tree4, "--route", "1.1.1.1", "--no-cache"}, errors.ErrCodeInvalidInput},
		{"no route", []string{"render", "testdata/forest.txt", "--route", "1.1.1.1,3.3.3.3", "--no-cache"}, errors.ErrCodeNotFound},
		{"absent root", []string{"render", tree4, "--root", "9.9.9.9", "--no-cache"}, errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("%v error = %v, want %v", tt.args, err, tt.code)
			}
		})
	}
}

func TestCacheCommands(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	out, _, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error = %v", err)
	}
	if !strings.Contains(out, filepath.Join(cacheHome, appName)) {
		t.Errorf("cache path = %q", out)
	}

	out, _, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("cache clear on empty dir = %q", out)
	}
}
