package banner

import (
	"testing"
	"time"
)

func newTestSession() *Session {
	return NewSession("s-1", WidgetVariantStaticBanner, time.Unix(0, 0).UTC())
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()
	if s.Content != DefaultContent() {
		t.Fatalf("expected default content, got %#v", s.Content)
	}
	if s.Meta != DefaultMeta() {
		t.Fatalf("expected default meta, got %#v", s.Meta)
	}
	if s.Recipe != "" {
		t.Fatalf("expected empty recipe, got %q", s.Recipe)
	}
	if s.IsCtaSet() {
		t.Fatalf("expected CTA unset on a new session")
	}
}

func TestApplyContentEmptyTextKeepsCommittedValue(t *testing.T) {
	s := newTestSession()
	s.Content.Topline = "Top"
	s.Content.Header = "Head"
	s.Content.Subtitle = "Sub"

	draft := ContentDraft(s.Content)
	draft.Topline = ""
	draft.Header = ""
	draft.Subtitle = ""
	s.ApplyContent(draft)

	if s.Content.Topline != "Top" || s.Content.Header != "Head" || s.Content.Subtitle != "Sub" {
		t.Fatalf("expected text to be retained, got %#v", s.Content)
	}
}

func TestApplyContentNonEmptyTextOverwrites(t *testing.T) {
	s := newTestSession()
	s.Content.Header = "Old"

	draft := ContentDraft(s.Content)
	draft.Topline = "New top"
	draft.Header = "New head"
	draft.Subtitle = "New sub"
	s.ApplyContent(draft)

	if s.Content.Topline != "New top" || s.Content.Header != "New head" || s.Content.Subtitle != "New sub" {
		t.Fatalf("expected text to be overwritten, got %#v", s.Content)
	}
}

func TestApplyContentCtaAlwaysCommits(t *testing.T) {
	s := newTestSession()
	s.Content.CtaText = "Shop Now"
	s.Content.CtaURL = "/shop"
	s.Content.CtaStyle = ButtonStyleWhite

	draft := ContentDraft(s.Content)
	draft.CtaText = ""
	draft.CtaURL = ""
	draft.CtaStyle = ButtonStyleChewyBlue
	s.ApplyContent(draft)

	if s.Content.CtaText != "" || s.Content.CtaURL != "" {
		t.Fatalf("expected CTA text and url cleared, got %#v", s.Content)
	}
	if s.Content.CtaStyle != ButtonStyleChewyBlue {
		t.Fatalf("expected CTA style committed, got %s", s.Content.CtaStyle)
	}
	if s.IsCtaSet() {
		t.Fatalf("expected CTA unset after clearing text and url")
	}
}

func TestApplyContentTypographyAlwaysCommits(t *testing.T) {
	s := newTestSession()
	s.Content.Header = "Unrelated header"

	draft := ContentDraft(s.Content)
	draft.Header = ""
	draft.HeaderTypeSize = TypeSizeLevel4
	draft.HeaderTag = TextTagH3
	draft.ToplineTypeSize = TypeSizeLevel7
	draft.SubtitleTypeSize = TypeSizeLevel2
	s.ApplyContent(draft)

	if s.Content.HeaderTypeSize != TypeSizeLevel4 {
		t.Fatalf("expected header type size LEVEL4, got %s", s.Content.HeaderTypeSize)
	}
	if s.Content.HeaderTag != TextTagH3 || s.Content.ToplineTypeSize != TypeSizeLevel7 || s.Content.SubtitleTypeSize != TypeSizeLevel2 {
		t.Fatalf("expected typography committed, got %#v", s.Content)
	}
	if s.Content.Header != "Unrelated header" {
		t.Fatalf("expected header text retained, got %q", s.Content.Header)
	}
}

func TestApplyContentUnmodifiedDraftIsNoop(t *testing.T) {
	s := newTestSession()
	s.Content.Topline = "Top"
	s.Content.CtaText = "Go"
	s.Content.CtaURL = "/go"
	before := *s

	s.ContentDialog().Apply()

	if *s != before {
		t.Fatalf("expected unchanged session, got %#v", s)
	}
}

func TestIsCtaSetTracksLatestCommit(t *testing.T) {
	s := newTestSession()
	if s.Preview().CTA != nil {
		t.Fatalf("expected CTA block absent")
	}

	draft := ContentDraft(s.Content)
	draft.CtaText = "Shop Now"
	draft.CtaURL = "/shop"
	s.ApplyContent(draft)
	if !s.IsCtaSet() {
		t.Fatalf("expected CTA set")
	}
	cta := s.Preview().CTA
	if cta == nil || cta.Text != "Shop Now" {
		t.Fatalf("expected CTA block with Shop Now, got %#v", cta)
	}

	draft.CtaURL = ""
	s.ApplyContent(draft)
	if s.IsCtaSet() {
		t.Fatalf("expected CTA unset once url is empty")
	}
}

func TestApplyMetaEmptyTextKeepsCommittedValue(t *testing.T) {
	s := newTestSession()
	s.Meta.CreativeName = "Spring Promo"
	s.Meta.AccessibilityLabel = "Spring banner"
	s.Meta.AltText = "Flowers"

	s.ApplyMeta(MetaDraft{
		ContentHorizontalAlign: HorizontalAlignCenter,
		ContentVerticalAlign:   VerticalAlignBottom,
		TextAlign:              HorizontalAlignRight,
	})

	if s.Meta.CreativeName != "Spring Promo" {
		t.Fatalf("expected creative name retained, got %q", s.Meta.CreativeName)
	}
	if s.Meta.AccessibilityLabel != "Spring banner" || s.Meta.AltText != "Flowers" {
		t.Fatalf("expected optional text retained, got %#v", s.Meta)
	}
	if s.Meta.ContentHorizontalAlign != HorizontalAlignCenter || s.Meta.ContentVerticalAlign != VerticalAlignBottom || s.Meta.TextAlign != HorizontalAlignRight {
		t.Fatalf("expected alignments committed, got %#v", s.Meta)
	}
}

func TestApplyMetaNonEmptyTextOverwrites(t *testing.T) {
	s := newTestSession()
	draft := MetaDraft(s.Meta)
	draft.CreativeName = "Summer"
	draft.AccessibilityLabel = "Summer banner"
	draft.AltText = "Beach"
	s.ApplyMeta(draft)

	if s.Meta != BannerMeta(draft) {
		t.Fatalf("expected meta to equal draft, got %#v", s.Meta)
	}
}

func TestSetRecipeLeavesFieldsAlone(t *testing.T) {
	s := newTestSession()
	content, meta := s.Content, s.Meta
	s.SetRecipe("promo-strip")
	if s.Recipe != "promo-strip" {
		t.Fatalf("expected recipe recorded")
	}
	if s.Content != content || s.Meta != meta {
		t.Fatalf("expected recipe to be cosmetic only")
	}
}

func TestConfigurationPassesSchema(t *testing.T) {
	s := newTestSession()
	if err := NewJSONSchemaValidator(nil).Validate(s.Configuration()); err != nil {
		t.Fatalf("expected default configuration to validate, got %v", err)
	}
}
