package banner

import "context"

// DefaultSaveChannel is used when NotificationsHook.Channel is empty.
const DefaultSaveChannel = "banner.saved"

// NotificationsClient defines the minimal interface needed from go-notifications (or similar).
type NotificationsClient interface {
	PublishBannerSave(ctx context.Context, channel string, event SaveEvent) error
}

// NotificationsHook forwards save intents to an external notifications client.
type NotificationsHook struct {
	Client  NotificationsClient
	Channel string
}

// SaveRequested publishes the save intent to the configured client.
func (h *NotificationsHook) SaveRequested(ctx context.Context, event SaveEvent) error {
	if h == nil || h.Client == nil {
		return nil
	}
	channel := h.Channel
	if channel == "" {
		channel = DefaultSaveChannel
	}
	return h.Client.PublishBannerSave(ctx, channel, event)
}

type noopSaveHook struct{}

func (noopSaveHook) SaveRequested(context.Context, SaveEvent) error { return nil }

type noopRefreshHook struct{}

func (noopRefreshHook) SessionUpdated(context.Context, SessionEvent) error { return nil }
