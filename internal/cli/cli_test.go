package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mekko/pkg/cache"
	"github.com/matzehuels/mekko/pkg/config"
	errs "github.com/matzehuels/mekko/pkg/errors"
)

const survey = `Gender,Treatment
Male,Yes
Male,No
Female,Yes
Male,No
,Yes
Female,No
`

func writeSurvey(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(survey), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with an isolated cache directory and
// returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message logged at info level")
	}
	logger.Info("shown", "rects", 4)
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "rects=4") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLogLevel(LogDebug) did not enable debug output")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Rendered survey.csv")
	if !strings.Contains(buf.String(), "Rendered survey.csv (") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir(config.Cache{})
	if err != nil || dir != filepath.Join("/tmp/xdg", "mekko") {
		t.Errorf("cacheDir() = %q, %v", dir, err)
	}

	dir, _ = cacheDir(config.Cache{Dir: "/srv/cache"})
	if dir != "/srv/cache" {
		t.Errorf("cacheDir() with Dir = %q, want /srv/cache", dir)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(&bytes.Buffer{}, LogInfo)
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     config.Cache
		noCache bool
		want    string
	}{
		{"flag", config.Cache{}, true, "null"},
		{"disabled", config.Cache{Disabled: true}, false, "null"},
		{"file", config.Cache{Dir: t.TempDir()}, false, "file"},
		{"xdg", config.Cache{}, false, "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := c.newCache(ctx, tt.cfg, tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer store.Close()

			var got string
			switch store.(type) {
			case *cache.NullCache:
				got = "null"
			case *cache.FileCache:
				got = "file"
			}
			if got != tt.want {
				t.Errorf("newCache() = %T, want %s", store, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		output  string
		formats []string
		want    map[string]string
	}{
		{"", []string{"svg"}, map[string]string{"svg": "data/survey.svg"}},
		{"chart.svg", []string{"svg"}, map[string]string{"svg": "chart.svg"}},
		{"chart.out", []string{"png"}, map[string]string{"png": "chart.out"}},
		{"chart.svg", []string{"svg", "json"}, map[string]string{"svg": "chart.svg", "json": "chart.json"}},
		{"out/chart", []string{"svg", "png"}, map[string]string{"svg": "out/chart.svg", "png": "out/chart.png"}},
	}
	for _, tt := range tests {
		got := outputPaths(tt.output, "data/survey.csv", tt.formats)
		for f, want := range tt.want {
			if got[f] != want {
				t.Errorf("outputPaths(%q, %v)[%s] = %q, want %q", tt.output, tt.formats, f, got[f], want)
			}
		}
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeSurvey(t)
	output := filepath.Join(t.TempDir(), "chart.svg")

	out, err := execute(t, "render", input, "-o", output, "--title", "Treatment by gender")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.Contains(data, []byte("Treatment by gender")) {
		t.Error("title missing from SVG")
	}
	for _, want := range []string{"Rendered Treatment by Gender", output, "6 records", "1 dropped", "fresh"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandFormatsAndCache(t *testing.T) {
	input := writeSurvey(t)
	base := filepath.Join(t.TempDir(), "chart")
	t.Setenv("MEKKO_CACHE_DIR", t.TempDir())

	if _, err := execute(t, "render", input, "-o", base, "-f", "svg,json"); err != nil {
		t.Fatalf("first render: %v", err)
	}
	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}

	out, err := execute(t, "render", input, "-o", base, "-f", "svg,json")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second render should be served from cache:\n%s", out)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeSurvey(t)

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"bad format", []string{"render", input, "-f", "gif", "--no-cache"}, errs.ErrCodeInvalidFormat},
		{"bad policy", []string{"render", input, "--missing", "ignore", "--no-cache"}, errs.ErrCodeInvalidConfig},
		{"missing column", []string{"render", input, "--outer", "Country", "--no-cache"}, errs.ErrCodeMissingField},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "none.csv"), "--no-cache"}, errs.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table", writeSurvey(t))
	if err != nil {
		t.Fatalf("table error: %v", err)
	}
	for _, want := range []string{"Gender", "Male", "Female", "Yes", "No", "Total", "60.0%", "6 records, 5 counted, 1 dropped"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableCommandBucket(t *testing.T) {
	out, err := execute(t, "table", writeSurvey(t), "--missing", "bucket", "--unknown-label", "n/a")
	if err != nil {
		t.Fatalf("table error: %v", err)
	}
	if !strings.Contains(out, "n/a") || !strings.Contains(out, "0 dropped") {
		t.Errorf("bucketed table:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("MEKKO_TITLE", "From env")
	t.Setenv("MEKKO_LABELS", "percent")

	out, err := execute(t, "config", "--outer", "Country", "--labels", "none")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	for _, want := range []string{`outer = "Country"`, `inner = "Treatment"`, `title = "From env"`, `labels = "none"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte("outer = \"Country\"\nzero = \"skip\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path, "--zero", "include")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, `outer = "Country"`) || !strings.Contains(out, `zero = "include"`) {
		t.Errorf("file and flag layering:\n%s", out)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEKKO_CACHE_DIR", dir)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", out, dir)
	}

	if err := os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cache cleared") {
		t.Errorf("cache clear output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "entry.json")); !os.IsNotExist(err) {
		t.Error("cache entry survived clear")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "mekko") {
		t.Error("bash completion should mention mekko")
	}
}
