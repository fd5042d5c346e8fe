package commands

import (
	"context"

	banner "github.com/goliatone/go-banner/components/banner"
)

// Author identifies who issued a command.
type Author struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Locale   string `json:"locale"`
}

func withAuthor(ctx context.Context, author Author) context.Context {
	if author == (Author{}) {
		return ctx
	}
	return banner.ContextWithAuthor(ctx, banner.AuthorContext{
		UserID:   author.UserID,
		TenantID: author.TenantID,
		Locale:   author.Locale,
	})
}
