package commands

import (
	"context"
	"errors"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// ApplyMetaInput carries a confirmed alignment/metadata snapshot.
type ApplyMetaInput struct {
	SessionID string           `json:"session_id"`
	Draft     banner.MetaDraft `json:"draft"`
	Author    Author           `json:"author"`
}

type metaService interface {
	ApplyMeta(ctx context.Context, id string, draft banner.MetaDraft) (*banner.Session, error)
}

// ApplyMetaCommand wraps Service.ApplyMeta.
type ApplyMetaCommand struct {
	service   metaService
	telemetry Telemetry
}

// NewApplyMetaCommand creates the command.
func NewApplyMetaCommand(service metaService, telemetry Telemetry) *ApplyMetaCommand {
	return &ApplyMetaCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ApplyMetaInput] = (*ApplyMetaCommand)(nil)

// Execute merges the metadata draft into the session.
func (c *ApplyMetaCommand) Execute(ctx context.Context, msg ApplyMetaInput) error {
	if c.service == nil {
		return errors.New("apply meta command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("apply meta command requires session id")
	}
	ctx = withAuthor(ctx, msg.Author)
	if _, err := c.service.ApplyMeta(ctx, msg.SessionID, msg.Draft); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "banner.command.apply_meta", map[string]any{"session_id": msg.SessionID})
	return nil
}
