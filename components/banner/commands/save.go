package commands

import (
	"context"
	"errors"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// SaveSessionInput signals the save intent for a session. When Result is set
// it receives the emitted save event.
type SaveSessionInput struct {
	SessionID string            `json:"session_id"`
	Author    Author            `json:"author"`
	Result    *banner.SaveEvent `json:"-"`
}

type saveService interface {
	Save(ctx context.Context, id string) (banner.SaveEvent, error)
}

// SaveSessionCommand wraps Service.Save.
type SaveSessionCommand struct {
	service   saveService
	telemetry Telemetry
}

// NewSaveSessionCommand creates the command.
func NewSaveSessionCommand(service saveService, telemetry Telemetry) *SaveSessionCommand {
	return &SaveSessionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveSessionInput] = (*SaveSessionCommand)(nil)

// Execute validates the configuration and hands it to the save hook.
func (c *SaveSessionCommand) Execute(ctx context.Context, msg SaveSessionInput) error {
	if c.service == nil {
		return errors.New("save command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("save command requires session id")
	}
	ctx = withAuthor(ctx, msg.Author)
	event, err := c.service.Save(ctx, msg.SessionID)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = event
	}
	c.telemetry.Record(ctx, "banner.command.save", map[string]any{"session_id": msg.SessionID})
	return nil
}
