package queries

import (
	"context"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

type formService interface {
	ContentForm(ctx context.Context, id string) (banner.ContentForm, error)
	MetaForm(ctx context.Context, id string) (banner.MetaForm, error)
}

// ContentFormQuery seeds the content dialog from committed values.
type ContentFormQuery struct {
	service formService
}

// NewContentFormQuery builds the query.
func NewContentFormQuery(service formService) *ContentFormQuery {
	return &ContentFormQuery{service: service}
}

var _ gocommand.Querier[SessionInput, banner.ContentForm] = (*ContentFormQuery)(nil)

// Query returns the content draft and field groups.
func (q *ContentFormQuery) Query(ctx context.Context, input SessionInput) (banner.ContentForm, error) {
	return q.service.ContentForm(ctx, input.SessionID)
}

// MetaFormQuery seeds the alignment popover.
type MetaFormQuery struct {
	service formService
}

// NewMetaFormQuery builds the query.
func NewMetaFormQuery(service formService) *MetaFormQuery {
	return &MetaFormQuery{service: service}
}

var _ gocommand.Querier[SessionInput, banner.MetaForm] = (*MetaFormQuery)(nil)

// Query returns the metadata draft and fields.
func (q *MetaFormQuery) Query(ctx context.Context, input SessionInput) (banner.MetaForm, error) {
	return q.service.MetaForm(ctx, input.SessionID)
}
