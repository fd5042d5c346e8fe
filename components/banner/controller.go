package banner

import (
	"context"
	"errors"
	"io"
)

const defaultPreviewTemplate = "preview.html"

type previewSource interface {
	Preview(ctx context.Context, id string) (Preview, error)
}

// ControllerOptions wires the preview controller.
type ControllerOptions struct {
	Service  previewSource
	Renderer Renderer
	Template string
}

// Controller renders the live preview for transports.
type Controller struct {
	service  previewSource
	renderer Renderer
	template string
}

// NewController wires the service and renderer into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = defaultPreviewTemplate
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: opts.Template,
	}
}

// PreviewPayload returns the template data for a session preview.
func (c *Controller) PreviewPayload(ctx context.Context, sessionID string) (map[string]any, error) {
	if c.service == nil {
		return nil, errors.New("banner: controller requires a preview source")
	}
	preview, err := c.service.Preview(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return preview.TemplateData(), nil
}

// RenderPreview writes the preview HTML for a session to out.
func (c *Controller) RenderPreview(ctx context.Context, sessionID string, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("banner: controller requires a renderer")
	}
	payload, err := c.PreviewPayload(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, payload, out)
	return err
}
