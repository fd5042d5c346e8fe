package banner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

type stubRenderer struct {
	template string
	data     map[string]any
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.template = name
	r.data, _ = data.(map[string]any)
	html := fmt.Sprintf("<section>%v</section>", r.data["header"])
	for _, w := range out {
		if _, err := io.WriteString(w, html); err != nil {
			return "", err
		}
	}
	return html, nil
}

func TestControllerRenderPreview(t *testing.T) {
	svc := newTestService(Options{})
	ctx := context.Background()
	if _, err := svc.StartSession(ctx, StartSessionRequest{}); err != nil {
		t.Fatalf("StartSession returned error: %v", err)
	}
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{Service: svc, Renderer: renderer})

	var buf bytes.Buffer
	if err := controller.RenderPreview(ctx, "session-1", &buf); err != nil {
		t.Fatalf("RenderPreview returned error: %v", err)
	}
	if renderer.template != "preview.html" {
		t.Fatalf("expected default template, got %s", renderer.template)
	}
	if buf.String() != "<section>Header</section>" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if renderer.data["cta_set"] != false {
		t.Fatalf("expected cta_set false, got %v", renderer.data["cta_set"])
	}
}

func TestControllerErrors(t *testing.T) {
	ctx := context.Background()
	if err := NewController(ControllerOptions{}).RenderPreview(ctx, "x", io.Discard); err == nil {
		t.Fatalf("expected renderer error")
	}
	if _, err := NewController(ControllerOptions{}).PreviewPayload(ctx, "x"); err == nil {
		t.Fatalf("expected service error")
	}
	controller := NewController(ControllerOptions{Service: newTestService(Options{}), Renderer: &stubRenderer{}})
	if err := controller.RenderPreview(ctx, "missing", io.Discard); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
