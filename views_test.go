package views_test

import (
	"testing"

	views "github.com/goliatone/go-views"
	"github.com/goliatone/go-views/pkg/testsupport"
)

func TestNew_RenderRoundTrip(t *testing.T) {
	root := testsupport.WriteTree(t, map[string]string{
		"views/greeting.html": "{{ block(\"minimize\") }}\n  Hi {{ who }}  \n{{ endBlock() }}",
	})

	e, err := views.New(
		views.WithPaths(root+"/views"),
		views.WithDefaultTemplate(views.Supplier(func() string { return "greeting" })),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	e.Assign("who", "there")

	got, err := e.Render("greeting", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("render = %q, want %q", got, "Hi there")
	}

	// The supplier-backed default kicks in for unresolvable references.
	got, err = e.Render("missing", nil)
	if err != nil {
		t.Fatalf("render fallback: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("fallback render = %q, want %q", got, "Hi there")
	}
}

func TestNewFromConfig(t *testing.T) {
	templates := testsupport.WriteTree(t, map[string]string{
		"tpl/home.html": "home",
	})
	config := testsupport.WriteTree(t, map[string]string{
		"views.yml": "paths:\n  - id: tpl\n    dir: " + templates + "/tpl\n",
	})

	e, err := views.NewFromConfig(config + "/views.yml")
	if err != nil {
		t.Fatalf("new from config: %v", err)
	}

	got, err := e.Render("tpl::home", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "home" {
		t.Fatalf("render = %q, want %q", got, "home")
	}
}
