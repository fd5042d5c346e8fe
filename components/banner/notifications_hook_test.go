package banner

import (
	"context"
	"testing"
)

type stubNotificationsClient struct {
	channel string
	events  []SaveEvent
}

func (s *stubNotificationsClient) PublishBannerSave(_ context.Context, channel string, event SaveEvent) error {
	s.channel = channel
	s.events = append(s.events, event)
	return nil
}

func TestNotificationsHookPublishesSave(t *testing.T) {
	client := &stubNotificationsClient{}
	svc := newTestService(Options{SaveHook: &NotificationsHook{Client: client}})
	ctx := context.Background()
	if _, err := svc.StartSession(ctx, StartSessionRequest{}); err != nil {
		t.Fatalf("StartSession returned error: %v", err)
	}
	if _, err := svc.Save(ctx, "session-1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if client.channel != DefaultSaveChannel || len(client.events) != 1 {
		t.Fatalf("expected one publish on default channel, got %q %d", client.channel, len(client.events))
	}
}

func TestNotificationsHookWithoutClient(t *testing.T) {
	var hook *NotificationsHook
	if err := hook.SaveRequested(context.Background(), SaveEvent{}); err != nil {
		t.Fatalf("nil hook should be a no-op, got %v", err)
	}
}
