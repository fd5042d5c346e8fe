package banner

import "time"

// Session is the authoritative state of one banner editing session. It is
// mutated only through ApplyContent, ApplyMeta and SetRecipe.
type Session struct {
	ID        string        `json:"id"`
	Variant   WidgetVariant `json:"variant"`
	Recipe    string        `json:"recipe"`
	Content   BannerContent `json:"content"`
	Meta      BannerMeta    `json:"meta"`
	AuthorID  string        `json:"author_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewSession builds a session populated with the default banner values.
func NewSession(id string, variant WidgetVariant, now time.Time) *Session {
	if variant == "" {
		variant = WidgetVariantStaticBanner
	}
	return &Session{
		ID:        id,
		Variant:   variant,
		Content:   DefaultContent(),
		Meta:      DefaultMeta(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCtaSet reports whether both the CTA text and URL are present.
func (s *Session) IsCtaSet() bool {
	return s.Content.CtaText != "" && s.Content.CtaURL != ""
}

// ApplyContent merges a content draft into the committed state.
func (s *Session) ApplyContent(draft ContentDraft) {
	s.Content = mergeContent(s.Content, draft)
}

// ApplyMeta merges an alignment/metadata draft into the committed state.
func (s *Session) ApplyMeta(draft MetaDraft) {
	s.Meta = mergeMeta(s.Meta, draft)
}

// SetRecipe records the cosmetic recipe selection.
func (s *Session) SetRecipe(value string) {
	s.Recipe = value
}

// ContentDialog opens a content dialog seeded from the committed content.
func (s *Session) ContentDialog() *ContentDialog {
	return NewContentDialog(s.Content, s.ApplyContent)
}

// MetaDialog opens the alignment/metadata dialog seeded from the committed metadata.
func (s *Session) MetaDialog() *MetaDialog {
	return NewMetaDialog(s.Meta, s.ApplyMeta)
}

// Clone returns a deep copy; all fields are values.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cloned := *s
	return &cloned
}

// Configuration flattens the session into the widget configuration payload
// validated on save.
func (s *Session) Configuration() map[string]any {
	return map[string]any{
		"recipe":                   s.Recipe,
		"creative_name":            s.Meta.CreativeName,
		"accessibility_label":      s.Meta.AccessibilityLabel,
		"alt_text":                 s.Meta.AltText,
		"content_horizontal_align": string(s.Meta.ContentHorizontalAlign),
		"content_vertical_align":   string(s.Meta.ContentVerticalAlign),
		"text_align":               string(s.Meta.TextAlign),
		"topline":                  s.Content.Topline.String(),
		"topline_type_size":        string(s.Content.ToplineTypeSize),
		"header":                   s.Content.Header.String(),
		"header_type_size":         string(s.Content.HeaderTypeSize),
		"header_tag":               string(s.Content.HeaderTag),
		"subtitle":                 s.Content.Subtitle.String(),
		"subtitle_type_size":       string(s.Content.SubtitleTypeSize),
		"cta_text":                 s.Content.CtaText,
		"cta_url":                  s.Content.CtaURL,
		"cta_style":                string(s.Content.CtaStyle),
	}
}
