package engine_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-views/pkg/engine"
	"github.com/goliatone/go-views/pkg/testsupport"
)

const sampleConfig = `paths:
  - id: views
    dir: app/views
  - dir: app/shared
default_template: "404"
extensions: [html, txt]
debug: true
`

func TestLoadConfig(t *testing.T) {
	root := testsupport.WriteTree(t, map[string]string{
		"views.yml": sampleConfig,
	})

	cfg, err := engine.LoadConfig(filepath.Join(root, "views.yml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := engine.Config{
		Paths: []engine.PathConfig{
			{ID: "views", Dir: "app/views"},
			{Dir: "app/shared"},
		},
		DefaultTemplate: "404",
		Extensions:      []string{"html", "txt"},
		Debug:           true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := engine.LoadConfig(filepath.Join(t.TempDir(), "ghost.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfig_OptionsBuildWorkingEngine(t *testing.T) {
	root := testsupport.WriteTree(t, map[string]string{
		"views/404.html": "fallback",
	})

	cfg := engine.Config{
		Paths:           []engine.PathConfig{{ID: "views", Dir: root + "/views"}},
		DefaultTemplate: "404",
	}

	e, err := engine.New(cfg.Options()...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := e.Render("missing", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "fallback" {
		t.Fatalf("render = %q, want default template", got)
	}
}
