package commands

import (
	"context"
	"errors"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// ApplyContentInput carries a confirmed content dialog snapshot.
type ApplyContentInput struct {
	SessionID string              `json:"session_id"`
	Draft     banner.ContentDraft `json:"draft"`
	Author    Author              `json:"author"`
}

type contentService interface {
	ApplyContent(ctx context.Context, id string, draft banner.ContentDraft) (*banner.Session, error)
}

// ApplyContentCommand wraps Service.ApplyContent.
type ApplyContentCommand struct {
	service   contentService
	telemetry Telemetry
}

// NewApplyContentCommand creates the command.
func NewApplyContentCommand(service contentService, telemetry Telemetry) *ApplyContentCommand {
	return &ApplyContentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ApplyContentInput] = (*ApplyContentCommand)(nil)

// Execute merges the draft into the session.
func (c *ApplyContentCommand) Execute(ctx context.Context, msg ApplyContentInput) error {
	if c.service == nil {
		return errors.New("apply content command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("apply content command requires session id")
	}
	ctx = withAuthor(ctx, msg.Author)
	session, err := c.service.ApplyContent(ctx, msg.SessionID, msg.Draft)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "banner.command.apply_content", map[string]any{
		"session_id": msg.SessionID,
		"cta_set":    session.IsCtaSet(),
	})
	return nil
}
