package banner

import (
	"net/url"
	"strings"
)

const (
	toplinePlaceholder  = "Topline"
	headerPlaceholder   = "Header"
	subtitlePlaceholder = "Subtitle"
)

// Preview is the render model for the live banner preview.
type Preview struct {
	SessionID              string          `json:"session_id"`
	Recipe                 string          `json:"recipe"`
	CreativeName           string          `json:"creative_name"`
	AccessibilityLabel     string          `json:"accessibility_label,omitempty"`
	AltText                string          `json:"alt_text,omitempty"`
	ContentHorizontalAlign HorizontalAlign `json:"content_horizontal_align"`
	ContentVerticalAlign   VerticalAlign   `json:"content_vertical_align"`
	TextAlign              HorizontalAlign `json:"text_align"`
	Topline                PreviewText     `json:"topline"`
	Header                 PreviewText     `json:"header"`
	Subtitle               PreviewText     `json:"subtitle"`
	HeaderTag              TextTag         `json:"header_tag"`
	CTA                    *PreviewCTA     `json:"cta,omitempty"`
}

// PreviewText is one trigger line of the preview.
type PreviewText struct {
	HTML        RichText `json:"html"`
	TypeSize    TypeSize `json:"type_size"`
	Placeholder bool     `json:"placeholder"`
}

// PreviewCTA is rendered only when both CTA text and URL are set.
type PreviewCTA struct {
	Text     string      `json:"text"`
	URL      string      `json:"url"`
	Style    ButtonStyle `json:"style"`
	CSSClass string      `json:"css_class"`
}

// Preview builds the preview model from committed state.
func (s *Session) Preview() Preview {
	p := Preview{
		SessionID:              s.ID,
		Recipe:                 s.Recipe,
		CreativeName:           s.Meta.CreativeName,
		AccessibilityLabel:     s.Meta.AccessibilityLabel,
		AltText:                s.Meta.AltText,
		ContentHorizontalAlign: s.Meta.ContentHorizontalAlign,
		ContentVerticalAlign:   s.Meta.ContentVerticalAlign,
		TextAlign:              s.Meta.TextAlign,
		Topline:                previewText(s.Content.Topline, s.Content.ToplineTypeSize, toplinePlaceholder),
		Header:                 previewText(s.Content.Header, s.Content.HeaderTypeSize, headerPlaceholder),
		Subtitle:               previewText(s.Content.Subtitle, s.Content.SubtitleTypeSize, subtitlePlaceholder),
		HeaderTag:              s.Content.HeaderTag,
	}
	if s.IsCtaSet() {
		p.CTA = &PreviewCTA{
			Text:     s.Content.CtaText,
			URL:      previewURL(s.Content.CtaURL),
			Style:    s.Content.CtaStyle,
			CSSClass: Option{Value: string(s.Content.CtaStyle)}.CSSClass(),
		}
	}
	return p
}

// previewURL keeps http(s), mailto, tel and relative links; anything else
// becomes "#" so the preview never carries a script URL.
func previewURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return u.String()
	default:
		return "#"
	}
}

func previewText(value RichText, size TypeSize, placeholder string) PreviewText {
	return PreviewText{
		HTML:        value.OrPlaceholder(placeholder),
		TypeSize:    size,
		Placeholder: value.IsEmpty(),
	}
}

// TemplateData flattens the preview for template engines.
func (p Preview) TemplateData() map[string]any {
	data := map[string]any{
		"session_id":          p.SessionID,
		"recipe":              p.Recipe,
		"creative_name":       p.CreativeName,
		"accessibility_label": p.AccessibilityLabel,
		"alt_text":            p.AltText,
		"content_h_align":     Option{Value: string(p.ContentHorizontalAlign)}.CSSClass(),
		"content_v_align":     Option{Value: string(p.ContentVerticalAlign)}.CSSClass(),
		"text_align":          Option{Value: string(p.TextAlign)}.CSSClass(),
		"header_tag":          Option{Value: string(p.HeaderTag)}.CSSClass(),
		"topline":             p.Topline.HTML.String(),
		"topline_size":        Option{Value: string(p.Topline.TypeSize)}.CSSClass(),
		"header":              p.Header.HTML.String(),
		"header_size":         Option{Value: string(p.Header.TypeSize)}.CSSClass(),
		"subtitle":            p.Subtitle.HTML.String(),
		"subtitle_size":       Option{Value: string(p.Subtitle.TypeSize)}.CSSClass(),
		"cta_set":             p.CTA != nil,
	}
	if p.CTA != nil {
		data["cta"] = map[string]any{
			"text":      p.CTA.Text,
			"url":       p.CTA.URL,
			"css_class": p.CTA.CSSClass,
		}
	}
	return data
}
