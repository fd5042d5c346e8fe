package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// CancelSessionInput identifies the session to discard.
type CancelSessionInput struct {
	SessionID string `json:"session_id"`
	Author    Author `json:"author"`
}

type cancelService interface {
	Cancel(ctx context.Context, id string) error
}

// CancelSessionCommand wraps Service.Cancel.
type CancelSessionCommand struct {
	service   cancelService
	telemetry Telemetry
}

// NewCancelSessionCommand creates the command.
func NewCancelSessionCommand(service cancelService, telemetry Telemetry) *CancelSessionCommand {
	return &CancelSessionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CancelSessionInput] = (*CancelSessionCommand)(nil)

// Execute discards the session.
func (c *CancelSessionCommand) Execute(ctx context.Context, msg CancelSessionInput) error {
	if c.service == nil {
		return errors.New("cancel command requires service")
	}
	ctx = withAuthor(ctx, msg.Author)
	if err := c.service.Cancel(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "banner.command.cancel", map[string]any{"session_id": msg.SessionID})
	return nil
}
