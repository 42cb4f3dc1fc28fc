package ident_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-views/internal/ident"
)

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"views", true},
		{"_private", true},
		{"admin2", true},
		{"Admin_Views", true},
		{"", false},
		{"2views", false},
		{"admin-views", false},
		{"admin.views", false},
		{"admin views", false},
	}

	for _, tc := range cases {
		if got := ident.Valid(tc.in); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDerive_ParentAndLastSegment(t *testing.T) {
	cases := map[string]string{
		"app/views/":     "app.views",
		"srv/www/admin/": "www.admin",
		"/var/lib/tpl/":  "lib.tpl",
		"themes/dark":    "themes.dark",
	}

	for in, want := range cases {
		if got := ident.Derive(in); got != want {
			t.Errorf("Derive(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDerive_BareIdentifierPath(t *testing.T) {
	if got := ident.Derive("views/"); got != "views" {
		t.Fatalf("Derive(%q) = %q, want %q", "views/", got, "views")
	}
}

func TestDerive_FallsBackToHash(t *testing.T) {
	got := ident.Derive("my views!/")
	if !strings.HasPrefix(got, ident.HashTag) {
		t.Fatalf("Derive(%q) = %q, want %q prefix", "my views!/", got, ident.HashTag)
	}
}

func TestHash_Stable(t *testing.T) {
	first := ident.Hash("a b c")
	second := ident.Hash("a b c")
	if first != second {
		t.Fatalf("hash not stable: %q vs %q", first, second)
	}
	if first == ident.Hash("a b d") {
		t.Fatalf("distinct paths hashed to the same id %q", first)
	}
	if !strings.HasPrefix(first, ident.HashTag) {
		t.Fatalf("hash id %q missing %q prefix", first, ident.HashTag)
	}
}
