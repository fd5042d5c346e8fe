package banner

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapTelemetryRecordsAuthor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	telemetry := NewZapTelemetry(zap.New(core))
	ctx := ContextWithAuthor(context.Background(), AuthorContext{UserID: "author-1"})

	telemetry.Record(ctx, "banner.session.save", map[string]any{"session_id": "s1"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "banner.session.save" || entry.LoggerName != "banner" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	fields := entry.ContextMap()
	if fields["author_id"] != "author-1" || fields["session_id"] != "s1" {
		t.Fatalf("unexpected fields %#v", fields)
	}
}

func TestLocalizedValueFallbacks(t *testing.T) {
	values := normalizeLocaleMap(map[string]string{"ES": "Hola", "default": "Hi"})
	if got := ResolveLocalizedValue(values, "es_MX", "x"); got != "Hola" {
		t.Fatalf("expected base language match, got %s", got)
	}
	if got := ResolveLocalizedValue(values, "", "x"); got != "Hi" {
		t.Fatalf("expected default entry, got %s", got)
	}
	if got := ResolveLocalizedValue(nil, "es", "x"); got != "x" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
