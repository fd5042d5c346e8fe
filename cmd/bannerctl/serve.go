package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-banner/components/banner"
	"github.com/goliatone/go-banner/components/banner/httpapi"
	"github.com/goliatone/go-banner/components/banner/redisstore"
	"github.com/goliatone/go-banner/internal/config"
	"github.com/goliatone/go-banner/internal/logger"
	"github.com/goliatone/go-banner/internal/server"
	"github.com/goliatone/go-banner/pkg/notify"
)

type serveCmd struct {
	EnvDir string `default:"." type:"path" help:"Directory holding an optional .env file."`
}

func (cmd *serveCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(cmd.EnvDir)
	if err != nil {
		return fmt.Errorf("bannerctl: load config: %w", err)
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("bannerctl: init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	registry := banner.NewRegistry()
	if cfg.Sessions.RecipeManifest != "" {
		doc, err := registry.LoadManifestFile(cfg.Sessions.RecipeManifest)
		if err != nil {
			return err
		}
		log.Info("Loaded recipe manifest",
			zap.String("path", doc.Source),
			zap.Int("recipes", len(doc.Recipes)),
		)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	saveHook, err := newSaveHook(cfg)
	if err != nil {
		return err
	}

	broadcast := banner.NewBroadcastHook()
	telemetry := banner.NewZapTelemetry(log)
	service := banner.NewService(banner.Options{
		Store:       store,
		Recipes:     registry,
		RefreshHook: broadcast,
		SaveHook:    saveHook,
		Telemetry:   telemetry,
	})
	renderer, err := banner.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("bannerctl: init templates: %w", err)
	}
	controller := banner.NewController(banner.ControllerOptions{
		Service:  service,
		Renderer: renderer,
	})

	srv := server.New(cfg, httpapi.NewHandlers(service, controller, telemetry), broadcast)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(runCtx)
}

func openStore(ctx context.Context, cfg *config.AppConfig) (banner.SessionStore, func(), error) {
	if cfg.Sessions.RedisURL == "" {
		logger.Get().Info("Using in-memory session store")
		return banner.NewInMemorySessionStore(), func() {}, nil
	}
	store, err := redisstore.Open(cfg.Sessions.RedisURL, redisstore.Options{TTL: cfg.Sessions.TTL})
	if err != nil {
		return nil, nil, err
	}
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	logger.Get().Info("Using redis session store", zap.Duration("ttl", cfg.Sessions.TTL))
	return store, func() { store.Close() }, nil
}

func newSaveHook(cfg *config.AppConfig) (banner.SaveHook, error) {
	if cfg.Notify.WebhookURL == "" {
		return &logSaveHook{logger: logger.Get()}, nil
	}
	client, err := notify.NewWebhookClient(notify.WebhookConfig{
		BaseURL: cfg.Notify.WebhookURL,
		APIKey:  cfg.Notify.WebhookKey,
	})
	if err != nil {
		return nil, err
	}
	return &banner.NotificationsHook{Client: client, Channel: cfg.Notify.Channel}, nil
}

// logSaveHook records save intents; hosting applications replace it with
// their own persistence.
type logSaveHook struct {
	logger *zap.Logger
}

func (h *logSaveHook) SaveRequested(_ context.Context, event banner.SaveEvent) error {
	h.logger.Info("Banner save requested",
		zap.String("session_id", event.SessionID),
		zap.String("variant", string(event.Variant)),
		zap.String("author_id", event.AuthorID),
		zap.Any("configuration", event.Configuration),
	)
	return nil
}
