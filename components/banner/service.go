package banner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options configures the banner Service. Every collaborator is provided via
// interface so applications can swap implementations.
type Options struct {
	Store           SessionStore
	Recipes         RecipeCatalog
	ConfigValidator ConfigValidator
	DraftValidator  DraftValidator
	RefreshHook     RefreshHook
	SaveHook        SaveHook
	Telemetry       Telemetry
	OnCancel        CancelFunc
	Now             func() time.Time
	NewID           func() string
}

// Service owns banner editing sessions and routes dialog applies into them.
type Service struct {
	opts Options
	mu   sync.Mutex
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Store == nil {
		opts.Store = NewInMemorySessionStore()
	}
	if opts.Recipes == nil {
		opts.Recipes = NewRegistry()
	}
	if opts.ConfigValidator == nil {
		opts.ConfigValidator = NewJSONSchemaValidator(nil)
	}
	if opts.DraftValidator == nil {
		opts.DraftValidator = NewStructDraftValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.SaveHook == nil {
		opts.SaveHook = noopSaveHook{}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// StartSessionRequest opens a new editing session.
type StartSessionRequest struct {
	Variant  WidgetVariant `json:"variant"`
	AuthorID string        `json:"author_id"`
}

// ContentForm is the content dialog seed: the draft plus its field groups.
type ContentForm struct {
	Draft  ContentDraft `json:"draft"`
	Groups []FieldGroup `json:"groups"`
}

// MetaForm is the alignment popover seed.
type MetaForm struct {
	Draft  MetaDraft `json:"draft"`
	Fields []Field   `json:"fields"`
}

// StartSession creates a session populated with defaults.
func (s *Service) StartSession(ctx context.Context, req StartSessionRequest) (*Session, error) {
	if s.opts.Store == nil {
		return nil, errMissingStore
	}
	session := NewSession(s.opts.NewID(), req.Variant, s.opts.Now())
	session.AuthorID = req.AuthorID
	if session.AuthorID == "" {
		session.AuthorID = AuthorFromContext(ctx).UserID
	}
	if err := s.opts.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("banner: save session %s: %w", session.ID, err)
	}
	if err := s.notify(ctx, session, ReasonStart); err != nil {
		return nil, err
	}
	s.recordTelemetry(ctx, "banner.session.start", map[string]any{
		"session_id": session.ID,
		"variant":    string(session.Variant),
	})
	return session, nil
}

// Session returns the committed state of a session.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, errInvalidSessionID
	}
	return s.opts.Store.Get(ctx, id)
}

// Preview builds the live preview for a session.
func (s *Service) Preview(ctx context.Context, id string) (Preview, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return Preview{}, err
	}
	return session.Preview(), nil
}

// Recipes lists the recipe selector options for a variant.
func (s *Service) Recipes(variant WidgetVariant) []RecipeOption {
	if variant == "" {
		variant = WidgetVariantStaticBanner
	}
	return s.opts.Recipes.Recipes(variant)
}

// ContentForm opens the content dialog for a session and returns its seed.
func (s *Service) ContentForm(ctx context.Context, id string) (ContentForm, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return ContentForm{}, err
	}
	dialog := session.ContentDialog()
	return ContentForm{Draft: dialog.Draft(), Groups: dialog.Fields()}, nil
}

// MetaForm opens the alignment popover for a session and returns its seed.
func (s *Service) MetaForm(ctx context.Context, id string) (MetaForm, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return MetaForm{}, err
	}
	dialog := session.MetaDialog()
	return MetaForm{Draft: dialog.Draft(), Fields: dialog.Fields()}, nil
}

// ApplyContent commits a confirmed content draft snapshot.
func (s *Service) ApplyContent(ctx context.Context, id string, draft ContentDraft) (*Session, error) {
	if err := s.opts.DraftValidator.ValidateContent(draft); err != nil {
		return nil, err
	}
	return s.update(ctx, id, ReasonContent, func(session *Session) error {
		session.ApplyContent(draft)
		return nil
	})
}

// ApplyMeta commits a confirmed alignment/metadata draft snapshot.
func (s *Service) ApplyMeta(ctx context.Context, id string, draft MetaDraft) (*Session, error) {
	if err := s.opts.DraftValidator.ValidateMeta(draft); err != nil {
		return nil, err
	}
	return s.update(ctx, id, ReasonMeta, func(session *Session) error {
		session.ApplyMeta(draft)
		return nil
	})
}

// SetRecipe records the recipe selection. Empty clears it.
func (s *Service) SetRecipe(ctx context.Context, id, recipe string) (*Session, error) {
	return s.update(ctx, id, ReasonRecipe, func(session *Session) error {
		if recipe != "" && !s.knownRecipe(session.Variant, recipe) {
			return fmt.Errorf("%w: %s", ErrUnknownRecipe, recipe)
		}
		session.SetRecipe(recipe)
		return nil
	})
}

// Cancel discards the session and invokes the OnCancel callback.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.Session(ctx, id)
	if err != nil {
		return err
	}
	if err := s.opts.Store.Delete(ctx, id); err != nil {
		return fmt.Errorf("banner: delete session %s: %w", id, err)
	}
	if err := s.opts.RefreshHook.SessionUpdated(ctx, SessionEvent{
		SessionID: id,
		Reason:    ReasonCancel,
		At:        s.opts.Now(),
	}); err != nil {
		return err
	}
	if s.opts.OnCancel != nil {
		s.opts.OnCancel(ctx, session)
	}
	s.recordTelemetry(ctx, "banner.session.cancel", map[string]any{"session_id": id})
	return nil
}

// Save signals the intent to save the banner. It validates the configuration
// and hands it to the SaveHook; nothing is persisted here.
func (s *Service) Save(ctx context.Context, id string) (SaveEvent, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return SaveEvent{}, err
	}
	config := session.Configuration()
	if err := s.opts.ConfigValidator.Validate(config); err != nil {
		return SaveEvent{}, err
	}
	event := SaveEvent{
		SessionID:     session.ID,
		Variant:       session.Variant,
		AuthorID:      session.AuthorID,
		Configuration: config,
		At:            s.opts.Now(),
	}
	if err := s.opts.SaveHook.SaveRequested(ctx, event); err != nil {
		return SaveEvent{}, err
	}
	if err := s.notify(ctx, session, ReasonSave); err != nil {
		return SaveEvent{}, err
	}
	s.recordTelemetry(ctx, "banner.session.save", map[string]any{
		"session_id":    session.ID,
		"creative_name": session.Meta.CreativeName,
	})
	return event, nil
}

func (s *Service) update(ctx context.Context, id, reason string, mutate func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *session
	if err := mutate(session); err != nil {
		return nil, err
	}
	// Confirming unchanged values leaves the session untouched.
	if *session == before {
		return session, nil
	}
	session.UpdatedAt = s.opts.Now()
	if err := s.opts.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("banner: save session %s: %w", id, err)
	}
	if err := s.notify(ctx, session, reason); err != nil {
		return nil, err
	}
	s.recordTelemetry(ctx, "banner.session."+reason, map[string]any{
		"session_id": id,
		"cta_set":    session.IsCtaSet(),
	})
	return session, nil
}

func (s *Service) notify(ctx context.Context, session *Session, reason string) error {
	preview := session.Preview()
	return s.opts.RefreshHook.SessionUpdated(ctx, SessionEvent{
		SessionID: session.ID,
		Reason:    reason,
		Preview:   &preview,
		At:        s.opts.Now(),
	})
}

func (s *Service) knownRecipe(variant WidgetVariant, value string) bool {
	for _, recipe := range s.opts.Recipes.Recipes(variant) {
		if recipe.Value == value {
			return true
		}
	}
	return false
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
