package goadmin

import (
	"context"
	"errors"

	bannerpkg "github.com/goliatone/go-banner/pkg/banner"
)

// MenuBuilder ensures banner entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures banner editor link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the banner service and feature flag into an admin shell.
type Config struct {
	EnableBanners   bool
	MenuCode        string
	MenuBuilder     MenuBuilder
	Service         *bannerpkg.Service
	DefaultMenuItem MenuItem
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed the banner editor menu entry.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableBanners && cfg.Service == nil {
		return nil, errors.New("goadmin: banner service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.DefaultMenuItem.Label == "" {
		cfg.DefaultMenuItem.Label = "Banners"
	}
	if cfg.DefaultMenuItem.Route == "" {
		cfg.DefaultMenuItem.Route = "admin.banners"
	}
	if cfg.DefaultMenuItem.Icon == "" {
		cfg.DefaultMenuItem.Icon = "image"
	}
	return &Admin{cfg: cfg}, nil
}

// Banners exposes the configured banner service when enabled.
func (a *Admin) Banners() *bannerpkg.Service {
	if !a.cfg.EnableBanners {
		return nil
	}
	return a.cfg.Service
}

// Bootstrap seeds menu entries when banner support is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableBanners || a.cfg.MenuBuilder == nil {
		return nil
	}
	return a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, a.cfg.DefaultMenuItem)
}
