package banner

import "context"

// AuthorContext captures who is editing, for telemetry and save events.
type AuthorContext struct {
	UserID   string
	TenantID string
	Locale   string
}

type authorContextKey struct{}

// ContextWithAuthor stores the author on the provided context.
func ContextWithAuthor(ctx context.Context, author AuthorContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, authorContextKey{}, author)
}

// AuthorFromContext extracts the author, if present.
func AuthorFromContext(ctx context.Context) AuthorContext {
	if ctx == nil {
		return AuthorContext{}
	}
	if author, ok := ctx.Value(authorContextKey{}).(AuthorContext); ok {
		return author
	}
	return AuthorContext{}
}
