package banner

import (
	core "github.com/goliatone/go-banner/components/banner"
)

// Service exposes the underlying components/banner.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Session is the committed state of one editing session.
type Session = core.Session

// Preview is the render model for the live banner preview.
type Preview = core.Preview

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}
