package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-banner/components/banner"
	"github.com/goliatone/go-banner/components/banner/commands"
	"github.com/goliatone/go-banner/components/banner/httpapi"
	"github.com/goliatone/go-banner/components/banner/queries"
)

// AuthorResolver converts a router.Context into the command author.
type AuthorResolver func(router.Context) commands.Author

// Config wires go-router with the banner controller, API and broadcast hook.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *banner.Controller
	API            *httpapi.Handlers
	Broadcast      *banner.BroadcastHook
	AuthorResolver AuthorResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for banner endpoints.
type RouteConfig struct {
	PreviewHTML string
	Preview     string
	Sessions    string
	Session     string
	Content     string
	Meta        string
	Recipe      string
	Save        string
	Recipes     string
	WebSocket   string
}

// Register mounts banner routes (HTML, JSON, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin/banners"
	}
	resolver := cfg.AuthorResolver
	if resolver == nil {
		resolver = defaultAuthorResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.PreviewHTML, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderPreview(ctx.Context(), ctx.Param("id"), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Preview, router.WrapHandler(func(ctx router.Context) error {
		payload, err := cfg.Controller.PreviewPayload(ctx.Context(), ctx.Param("id"))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	if cfg.API != nil {
		registerAPI(group, cfg.API, resolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

func registerAPI[T any](r router.Router[T], api *httpapi.Handlers, resolver AuthorResolver, routes RouteConfig) {
	respondSession := func(ctx router.Context, status int) error {
		session, err := api.Session.Query(ctx.Context(), queries.SessionInput{SessionID: ctx.Param("id")})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(status, session)
	}

	r.Post(routes.Sessions, router.WrapHandler(func(ctx router.Context) error {
		var payload struct {
			Variant banner.WidgetVariant `json:"variant"`
		}
		if body := ctx.Body(); len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				return respondStatus(ctx, http.StatusBadRequest, err)
			}
		}
		result := &commands.StartSessionResult{}
		input := commands.StartSessionInput{Variant: payload.Variant, Author: resolver(ctx), Result: result}
		if err := api.Start.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, result.Session)
	}))

	r.Get(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		return respondSession(ctx, http.StatusOK)
	}))

	r.Delete(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		input := commands.CancelSessionInput{SessionID: ctx.Param("id"), Author: resolver(ctx)}
		if err := api.Cancel.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusNoContent, map[string]string{"status": "cancelled"})
	}))

	r.Post(routes.Content, router.WrapHandler(func(ctx router.Context) error {
		var draft banner.ContentDraft
		if err := json.Unmarshal(ctx.Body(), &draft); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		input := commands.ApplyContentInput{SessionID: ctx.Param("id"), Draft: draft, Author: resolver(ctx)}
		if err := api.ApplyContent.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return respondSession(ctx, http.StatusOK)
	}))

	r.Post(routes.Meta, router.WrapHandler(func(ctx router.Context) error {
		var draft banner.MetaDraft
		if err := json.Unmarshal(ctx.Body(), &draft); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		input := commands.ApplyMetaInput{SessionID: ctx.Param("id"), Draft: draft, Author: resolver(ctx)}
		if err := api.ApplyMeta.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return respondSession(ctx, http.StatusOK)
	}))

	r.Put(routes.Recipe, router.WrapHandler(func(ctx router.Context) error {
		var payload struct {
			Recipe string `json:"recipe"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondStatus(ctx, http.StatusBadRequest, err)
		}
		input := commands.SetRecipeInput{SessionID: ctx.Param("id"), Recipe: payload.Recipe, Author: resolver(ctx)}
		if err := api.SetRecipe.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return respondSession(ctx, http.StatusOK)
	}))

	r.Post(routes.Save, router.WrapHandler(func(ctx router.Context) error {
		var event banner.SaveEvent
		input := commands.SaveSessionInput{SessionID: ctx.Param("id"), Author: resolver(ctx), Result: &event}
		if err := api.Save.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusAccepted, event)
	}))

	r.Get(routes.Recipes, router.WrapHandler(func(ctx router.Context) error {
		input := queries.RecipesInput{
			Variant: banner.WidgetVariant(ctx.Query("variant")),
			Locale:  inferLocale(ctx),
		}
		opts, err := api.Recipes.Query(ctx.Context(), input)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, opts)
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *banner.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		// Events carry session_id; clients filter for the session they preview.
		events, cancel := hook.Subscribe("")
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func defaultAuthorResolver(ctx router.Context) commands.Author {
	var author commands.Author
	if v, ok := ctx.Locals("user_id").(string); ok {
		author.UserID = v
	}
	if v, ok := ctx.Locals("tenant_id").(string); ok {
		author.TenantID = v
	}
	author.Locale = inferLocale(ctx)
	return author
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if header := ctx.Header("Accept-Language"); header != "" {
		return parseAcceptLanguage(header)
	}
	return ""
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func respondError(ctx router.Context, err error) error {
	return respondStatus(ctx, httpapi.StatusFor(err), err)
}

func respondStatus(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.PreviewHTML == "" {
		routes.PreviewHTML = "/sessions/:id/preview.html"
	}
	if routes.Preview == "" {
		routes.Preview = "/sessions/:id/preview"
	}
	if routes.Sessions == "" {
		routes.Sessions = "/sessions"
	}
	if routes.Session == "" {
		routes.Session = "/sessions/:id"
	}
	if routes.Content == "" {
		routes.Content = "/sessions/:id/content"
	}
	if routes.Meta == "" {
		routes.Meta = "/sessions/:id/meta"
	}
	if routes.Recipe == "" {
		routes.Recipe = "/sessions/:id/recipe"
	}
	if routes.Save == "" {
		routes.Save = "/sessions/:id/save"
	}
	if routes.Recipes == "" {
		routes.Recipes = "/recipes"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
