package httpapi

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-banner/components/banner"
	"github.com/goliatone/go-banner/components/banner/commands"
	"github.com/goliatone/go-banner/components/banner/queries"
	gocommand "github.com/goliatone/go-command"
)

// Author headers populate the author context of every request.
const (
	HeaderAuthorID = "X-Author-ID"
	HeaderTenantID = "X-Tenant-ID"
	HeaderLocale   = "X-Locale"
)

type previewRenderer interface {
	RenderPreview(ctx context.Context, sessionID string, out io.Writer) error
}

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Start        gocommand.Commander[commands.StartSessionInput]
	ApplyContent gocommand.Commander[commands.ApplyContentInput]
	ApplyMeta    gocommand.Commander[commands.ApplyMetaInput]
	SetRecipe    gocommand.Commander[commands.SetRecipeInput]
	Cancel       gocommand.Commander[commands.CancelSessionInput]
	Save         gocommand.Commander[commands.SaveSessionInput]

	Session     gocommand.Querier[queries.SessionInput, *banner.Session]
	Preview     gocommand.Querier[queries.SessionInput, banner.Preview]
	ContentForm gocommand.Querier[queries.SessionInput, banner.ContentForm]
	MetaForm    gocommand.Querier[queries.SessionInput, banner.MetaForm]
	Recipes     gocommand.Querier[queries.RecipesInput, []banner.Option]

	// Renderer serves the HTML preview. The route is skipped when nil.
	Renderer previewRenderer
}

// NewHandlers wires every endpoint to the service.
func NewHandlers(service *banner.Service, renderer previewRenderer, telemetry commands.Telemetry) *Handlers {
	return &Handlers{
		Start:        commands.NewStartSessionCommand(service, telemetry),
		ApplyContent: commands.NewApplyContentCommand(service, telemetry),
		ApplyMeta:    commands.NewApplyMetaCommand(service, telemetry),
		SetRecipe:    commands.NewSetRecipeCommand(service, telemetry),
		Cancel:       commands.NewCancelSessionCommand(service, telemetry),
		Save:         commands.NewSaveSessionCommand(service, telemetry),
		Session:      queries.NewSessionQuery(service),
		Preview:      queries.NewPreviewQuery(service),
		ContentForm:  queries.NewContentFormQuery(service),
		MetaForm:     queries.NewMetaFormQuery(service),
		Recipes:      queries.NewRecipesQuery(service),
		Renderer:     renderer,
	}
}

// Register mounts the routes on router.
func (h *Handlers) Register(router fiber.Router) {
	router.Get("/recipes", h.HandleRecipes)
	router.Post("/sessions", h.HandleStartSession)
	router.Get("/sessions/:id", h.HandleSession)
	router.Delete("/sessions/:id", h.HandleCancel)
	router.Get("/sessions/:id/preview", h.HandlePreview)
	if h.Renderer != nil {
		router.Get("/sessions/:id/preview.html", h.HandlePreviewHTML)
	}
	router.Get("/sessions/:id/dialogs/content", h.HandleContentForm)
	router.Get("/sessions/:id/dialogs/meta", h.HandleMetaForm)
	router.Post("/sessions/:id/content", h.HandleApplyContent)
	router.Post("/sessions/:id/meta", h.HandleApplyMeta)
	router.Put("/sessions/:id/recipe", h.HandleSetRecipe)
	router.Post("/sessions/:id/save", h.HandleSave)
}

type startPayload struct {
	Variant banner.WidgetVariant `json:"variant"`
}

type recipePayload struct {
	Recipe string `json:"recipe"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (h *Handlers) HandleStartSession(c *fiber.Ctx) error {
	var payload startPayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
	}
	result := &commands.StartSessionResult{}
	input := commands.StartSessionInput{
		Variant: payload.Variant,
		Author:  authorFrom(c),
		Result:  result,
	}
	if err := h.Start.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result.Session)
}

func (h *Handlers) HandleSession(c *fiber.Ctx) error {
	session, err := h.Session.Query(c.UserContext(), queries.SessionInput{SessionID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session)
}

func (h *Handlers) HandlePreview(c *fiber.Ctx) error {
	preview, err := h.Preview.Query(c.UserContext(), queries.SessionInput{SessionID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(preview)
}

func (h *Handlers) HandlePreviewHTML(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.Renderer.RenderPreview(c.UserContext(), c.Params("id"), &buf); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (h *Handlers) HandleContentForm(c *fiber.Ctx) error {
	form, err := h.ContentForm.Query(c.UserContext(), queries.SessionInput{SessionID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

func (h *Handlers) HandleMetaForm(c *fiber.Ctx) error {
	form, err := h.MetaForm.Query(c.UserContext(), queries.SessionInput{SessionID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

func (h *Handlers) HandleApplyContent(c *fiber.Ctx) error {
	var draft banner.ContentDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, err)
	}
	input := commands.ApplyContentInput{SessionID: c.Params("id"), Draft: draft, Author: authorFrom(c)}
	if err := h.ApplyContent.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return h.HandleSession(c)
}

func (h *Handlers) HandleApplyMeta(c *fiber.Ctx) error {
	var draft banner.MetaDraft
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, err)
	}
	input := commands.ApplyMetaInput{SessionID: c.Params("id"), Draft: draft, Author: authorFrom(c)}
	if err := h.ApplyMeta.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return h.HandleSession(c)
}

func (h *Handlers) HandleSetRecipe(c *fiber.Ctx) error {
	var payload recipePayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}
	input := commands.SetRecipeInput{SessionID: c.Params("id"), Recipe: payload.Recipe, Author: authorFrom(c)}
	if err := h.SetRecipe.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return h.HandleSession(c)
}

func (h *Handlers) HandleSave(c *fiber.Ctx) error {
	var event banner.SaveEvent
	input := commands.SaveSessionInput{SessionID: c.Params("id"), Author: authorFrom(c), Result: &event}
	if err := h.Save.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(event)
}

func (h *Handlers) HandleCancel(c *fiber.Ctx) error {
	input := commands.CancelSessionInput{SessionID: c.Params("id"), Author: authorFrom(c)}
	if err := h.Cancel.Execute(c.UserContext(), input); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) HandleRecipes(c *fiber.Ctx) error {
	locale := c.Query("locale")
	if locale == "" {
		locale = c.Get(HeaderLocale)
	}
	input := queries.RecipesInput{
		Variant: banner.WidgetVariant(c.Query("variant")),
		Locale:  locale,
	}
	opts, err := h.Recipes.Query(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(opts)
}

func authorFrom(c *fiber.Ctx) commands.Author {
	return commands.Author{
		UserID:   c.Get(HeaderAuthorID),
		TenantID: c.Get(HeaderTenantID),
		Locale:   c.Get(HeaderLocale),
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorPayload{Error: err.Error()})
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(errorPayload{Error: err.Error()})
}

// StatusFor maps banner errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, banner.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, banner.ErrInvalidOption),
		errors.Is(err, banner.ErrUnknownField),
		errors.Is(err, banner.ErrUnknownRecipe):
		return fiber.StatusBadRequest
	case errors.Is(err, banner.ErrInvalidConfiguration):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
