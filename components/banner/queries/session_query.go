package queries

import (
	"context"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// SessionInput identifies a session for read-only queries.
type SessionInput struct {
	SessionID string `json:"session_id"`
}

type sessionService interface {
	Session(ctx context.Context, id string) (*banner.Session, error)
	Preview(ctx context.Context, id string) (banner.Preview, error)
}

// SessionQuery returns the committed session state.
type SessionQuery struct {
	service sessionService
}

// NewSessionQuery builds the query.
func NewSessionQuery(service sessionService) *SessionQuery {
	return &SessionQuery{service: service}
}

var _ gocommand.Querier[SessionInput, *banner.Session] = (*SessionQuery)(nil)

// Query loads the session.
func (q *SessionQuery) Query(ctx context.Context, input SessionInput) (*banner.Session, error) {
	return q.service.Session(ctx, input.SessionID)
}

// PreviewQuery builds the live preview for a session.
type PreviewQuery struct {
	service sessionService
}

// NewPreviewQuery builds the query.
func NewPreviewQuery(service sessionService) *PreviewQuery {
	return &PreviewQuery{service: service}
}

var _ gocommand.Querier[SessionInput, banner.Preview] = (*PreviewQuery)(nil)

// Query renders the preview model.
func (q *PreviewQuery) Query(ctx context.Context, input SessionInput) (banner.Preview, error) {
	return q.service.Preview(ctx, input.SessionID)
}
