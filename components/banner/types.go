package banner

import (
	"context"
	"time"
)

// SessionStore persists editing sessions for their lifetime. Implementations
// must return copies so callers cannot mutate stored state in place.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// RecipeCatalog lists recipe options for a widget variant.
type RecipeCatalog interface {
	Recipes(variant WidgetVariant) []RecipeOption
}

// RefreshHook notifies transports (REST/WebSocket) about session changes.
type RefreshHook interface {
	SessionUpdated(ctx context.Context, event SessionEvent) error
}

// SaveHook receives save intents. Nothing is persisted by the banner component.
type SaveHook interface {
	SaveRequested(ctx context.Context, event SaveEvent) error
}

// CancelFunc is invoked by the authoring shell's cancel action.
type CancelFunc func(ctx context.Context, session *Session)

// WidgetVariant identifies the widget family whose recipes are offered.
type WidgetVariant string

const (
	WidgetVariantStaticBanner  WidgetVariant = "STATIC_BANNER"
	WidgetVariantDynamicBanner WidgetVariant = "DYNAMIC_BANNER"
)

// RecipeOption describes a cosmetic layout choice for the recipe selector.
type RecipeOption struct {
	Value          string            `json:"value" yaml:"value"`
	Label          string            `json:"label" yaml:"label"`
	LabelLocalized map[string]string `json:"label_localized,omitempty" yaml:"label_localized,omitempty"`
}

// LabelForLocale returns the recipe label in the requested locale.
func (r RecipeOption) LabelForLocale(locale string) string {
	return ResolveLocalizedValue(r.LabelLocalized, locale, r.Label)
}

// Session event reasons.
const (
	ReasonStart   = "start"
	ReasonContent = "content"
	ReasonMeta    = "meta"
	ReasonRecipe  = "recipe"
	ReasonCancel  = "cancel"
	ReasonSave    = "save"
)

// SessionEvent describes a committed change that previews should re-render for.
type SessionEvent struct {
	SessionID string    `json:"session_id"`
	Reason    string    `json:"reason"`
	Preview   *Preview  `json:"preview,omitempty"`
	At        time.Time `json:"at"`
}

// SaveEvent carries the configuration the author asked to save.
type SaveEvent struct {
	SessionID     string         `json:"session_id"`
	Variant       WidgetVariant  `json:"variant"`
	AuthorID      string         `json:"author_id,omitempty"`
	Configuration map[string]any `json:"configuration"`
	At            time.Time      `json:"at"`
}
