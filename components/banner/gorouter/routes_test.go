package gorouter

import (
	"testing"

	"github.com/goliatone/go-banner/components/banner"
)

func TestRegisterValidatesConfig(t *testing.T) {
	if err := Register(Config[struct{}]{}); err == nil {
		t.Fatalf("expected error when router/controller missing")
	}
	cfg := Config[struct{}]{Controller: banner.NewController(banner.ControllerOptions{})}
	if err := Register(cfg); err == nil {
		t.Fatalf("expected error when router missing")
	}
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{Save: "/sessions/:id/commit"})
	if routes.Save != "/sessions/:id/commit" {
		t.Fatalf("expected custom save route to be kept, got %s", routes.Save)
	}
	if routes.Content != "/sessions/:id/content" || routes.WebSocket != "/ws" {
		t.Fatalf("unexpected defaults %#v", routes)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	cases := map[string]string{
		"es-CO,es;q=0.9,en;q=0.8": "es-co",
		" fr ; q=1":               "fr",
		",,":                      "",
	}
	for header, want := range cases {
		if got := parseAcceptLanguage(header); got != want {
			t.Fatalf("parseAcceptLanguage(%q) = %q, want %q", header, got, want)
		}
	}
}
