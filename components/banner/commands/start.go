package commands

import (
	"context"
	"errors"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// StartSessionInput opens a new editing session. When Result is set it
// receives the created session.
type StartSessionInput struct {
	Variant banner.WidgetVariant `json:"variant"`
	Author  Author               `json:"author"`
	Result  *StartSessionResult  `json:"-"`
}

// StartSessionResult carries the created session back to the caller.
type StartSessionResult struct {
	Session *banner.Session
}

type startService interface {
	StartSession(ctx context.Context, req banner.StartSessionRequest) (*banner.Session, error)
}

// StartSessionCommand wraps Service.StartSession.
type StartSessionCommand struct {
	service   startService
	telemetry Telemetry
}

// NewStartSessionCommand builds a command instance.
func NewStartSessionCommand(service startService, telemetry Telemetry) *StartSessionCommand {
	return &StartSessionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[StartSessionInput] = (*StartSessionCommand)(nil)

// Execute starts the session.
func (c *StartSessionCommand) Execute(ctx context.Context, msg StartSessionInput) error {
	if c.service == nil {
		return errors.New("start command requires service")
	}
	ctx = withAuthor(ctx, msg.Author)
	session, err := c.service.StartSession(ctx, banner.StartSessionRequest{
		Variant:  msg.Variant,
		AuthorID: msg.Author.UserID,
	})
	if err != nil {
		return err
	}
	if msg.Result != nil {
		msg.Result.Session = session
	}
	c.telemetry.Record(ctx, "banner.command.start", map[string]any{"session_id": session.ID})
	return nil
}
