package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-banner/components/banner"
)

type previewCmd struct {
	Draft  string `arg:"" type:"existingfile" help:"YAML file with variant, recipe, content and meta sections."`
	Format string `default:"html" enum:"html,json" help:"Output format."`
	Output string `short:"o" type:"path" help:"Write to a file instead of stdout."`

	out io.Writer `kong:"-"`
}

// draftFile mirrors the dialogs: absent keys keep the session defaults.
type draftFile struct {
	Variant banner.WidgetVariant `yaml:"variant"`
	Recipe  string               `yaml:"recipe"`
	Content yaml.Node            `yaml:"content"`
	Meta    yaml.Node            `yaml:"meta"`
}

func (cmd *previewCmd) Run(ctx context.Context) error {
	data, err := os.ReadFile(cmd.Draft)
	if err != nil {
		return fmt.Errorf("bannerctl: read draft: %w", err)
	}
	var file draftFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("bannerctl: parse draft: %w", err)
	}

	service := banner.NewService(banner.Options{})
	session, err := applyDraft(ctx, service, file)
	if err != nil {
		return err
	}

	out := writerOr(cmd.out)
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output) //nolint:gosec
		if err != nil {
			return fmt.Errorf("bannerctl: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Format == "json" {
		return encode(out, "json", session.Preview())
	}
	renderer, err := banner.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("bannerctl: init templates: %w", err)
	}
	controller := banner.NewController(banner.ControllerOptions{Service: service, Renderer: renderer})
	return controller.RenderPreview(ctx, session.ID, out)
}

func applyDraft(ctx context.Context, service *banner.Service, file draftFile) (*banner.Session, error) {
	session, err := service.StartSession(ctx, banner.StartSessionRequest{Variant: file.Variant})
	if err != nil {
		return nil, err
	}
	if !file.Content.IsZero() {
		form, err := service.ContentForm(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		draft := form.Draft
		if err := file.Content.Decode(&draft); err != nil {
			return nil, fmt.Errorf("bannerctl: decode content: %w", err)
		}
		if session, err = service.ApplyContent(ctx, session.ID, draft); err != nil {
			return nil, err
		}
	}
	if !file.Meta.IsZero() {
		form, err := service.MetaForm(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		draft := form.Draft
		if err := file.Meta.Decode(&draft); err != nil {
			return nil, fmt.Errorf("bannerctl: decode meta: %w", err)
		}
		if session, err = service.ApplyMeta(ctx, session.ID, draft); err != nil {
			return nil, err
		}
	}
	if file.Recipe != "" {
		if session, err = service.SetRecipe(ctx, session.ID, file.Recipe); err != nil {
			return nil, err
		}
	}
	return session, nil
}
