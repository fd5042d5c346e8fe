package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/goliatone/go-banner/components/banner"
	"github.com/goliatone/go-banner/components/banner/httpapi"
	"github.com/goliatone/go-banner/internal/config"
	"github.com/goliatone/go-banner/internal/logger"
)

// RequestIDHeader carries the per-request id set by the requestid middleware.
const RequestIDHeader = "X-Request-ID"

// Server holds the Fiber API and the session event listener.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// Events serves the WebSocket and SSE streams for open previews.
	Events *http.Server

	cfg *config.AppConfig
}

// New creates the API with middleware and banner routes mounted under cfg.BasePath.
func New(cfg *config.AppConfig, api *httpapi.Handlers, broadcast *banner.BroadcastHook) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "bannerctl",
	})

	app.Use(requestid.New(requestid.Config{
		Header: RequestIDHeader,
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Register(app.Group(cfg.BasePath))

	mux := http.NewServeMux()
	if broadcast != nil {
		mux.HandleFunc("/ws", broadcast.ServeWebSocket)
		mux.HandleFunc("/events", broadcast.ServeSSE)
	}

	return &Server{
		App: app,
		Events: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.EventsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		cfg: cfg,
	}
}

// Run starts both listeners and blocks until ctx is cancelled or one fails.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	errs := make(chan error, 2)

	go func() {
		logger.Get().Info("Starting events server", zap.String("address", s.Events.Addr))
		if err := s.Events.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("events server: %w", err)
		}
	}()

	go func() {
		logger.Get().Info("Starting server", zap.String("address", addr))
		if err := s.App.Listen(addr); err != nil {
			errs <- fmt.Errorf("api server: %w", err)
		}
	}()

	select {
	case err := <-errs:
		s.shutdown()
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	eventsErr := s.Events.Shutdown(ctx)
	apiErr := s.App.ShutdownWithContext(ctx)
	return errors.Join(eventsErr, apiErr)
}
