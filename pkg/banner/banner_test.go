package banner

import (
	"context"
	"testing"

	core "github.com/goliatone/go-banner/components/banner"
)

func TestNewServiceProxy(t *testing.T) {
	svc := NewService(Options{})
	session, err := svc.StartSession(context.Background(), core.StartSessionRequest{})
	if err != nil {
		t.Fatalf("StartSession returned error: %v", err)
	}
	var preview Preview = session.Preview()
	if preview.SessionID != session.ID {
		t.Fatalf("expected preview for %s, got %s", session.ID, preview.SessionID)
	}
}
