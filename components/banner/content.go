package banner

// BannerContent holds the committed copy, typography and call-to-action values.
type BannerContent struct {
	Topline          RichText    `json:"topline" yaml:"topline"`
	ToplineTypeSize  TypeSize    `json:"topline_type_size" yaml:"topline_type_size" validate:"heading_size"`
	Header           RichText    `json:"header" yaml:"header"`
	HeaderTypeSize   TypeSize    `json:"header_type_size" yaml:"header_type_size" validate:"heading_size"`
	HeaderTag        TextTag     `json:"header_tag" yaml:"header_tag" validate:"text_tag"`
	Subtitle         RichText    `json:"subtitle" yaml:"subtitle"`
	SubtitleTypeSize TypeSize    `json:"subtitle_type_size" yaml:"subtitle_type_size" validate:"subtitle_size"`
	CtaText          string      `json:"cta_text" yaml:"cta_text"`
	CtaURL           string      `json:"cta_url" yaml:"cta_url"`
	CtaStyle         ButtonStyle `json:"cta_style" yaml:"cta_style" validate:"button_style"`
}

// ContentDraft is an uncommitted copy of BannerContent staged by the content dialog.
type ContentDraft BannerContent

// BannerMeta holds naming, alignment and accessibility metadata.
type BannerMeta struct {
	CreativeName           string          `json:"creative_name" yaml:"creative_name"`
	AccessibilityLabel     string          `json:"accessibility_label" yaml:"accessibility_label"`
	AltText                string          `json:"alt_text" yaml:"alt_text"`
	ContentHorizontalAlign HorizontalAlign `json:"content_horizontal_align" yaml:"content_horizontal_align" validate:"horizontal_align"`
	ContentVerticalAlign   VerticalAlign   `json:"content_vertical_align" yaml:"content_vertical_align" validate:"vertical_align"`
	TextAlign              HorizontalAlign `json:"text_align" yaml:"text_align" validate:"horizontal_align"`
}

// MetaDraft is an uncommitted copy of BannerMeta staged by the alignment dialog.
type MetaDraft BannerMeta

// DefaultContent returns the values a new session starts with.
func DefaultContent() BannerContent {
	return BannerContent{
		ToplineTypeSize:  TypeSizeLevel1,
		HeaderTypeSize:   TypeSizeLevel1,
		HeaderTag:        TextTagH1,
		SubtitleTypeSize: TypeSizeLevel1,
		CtaStyle:         ButtonStyleNavyBlue,
	}
}

// DefaultMeta returns the metadata a new session starts with.
func DefaultMeta() BannerMeta {
	return BannerMeta{
		ContentHorizontalAlign: HorizontalAlignLeft,
		ContentVerticalAlign:   VerticalAlignTop,
		TextAlign:              HorizontalAlignLeft,
	}
}

// mergeContent applies a content draft onto committed values.
// Empty topline, header and subtitle mean "leave unchanged"; the CTA fields
// are always taken from the draft, including empty strings.
func mergeContent(committed BannerContent, draft ContentDraft) BannerContent {
	next := committed
	if !draft.Topline.IsEmpty() {
		next.Topline = draft.Topline
	}
	next.ToplineTypeSize = draft.ToplineTypeSize

	if !draft.Header.IsEmpty() {
		next.Header = draft.Header
	}
	next.HeaderTypeSize = draft.HeaderTypeSize
	next.HeaderTag = draft.HeaderTag

	if !draft.Subtitle.IsEmpty() {
		next.Subtitle = draft.Subtitle
	}
	next.SubtitleTypeSize = draft.SubtitleTypeSize

	next.CtaText = draft.CtaText
	next.CtaURL = draft.CtaURL
	next.CtaStyle = draft.CtaStyle
	return next
}

// mergeMeta applies a metadata draft onto committed values. Empty free text
// means "leave unchanged"; alignments always commit.
func mergeMeta(committed BannerMeta, draft MetaDraft) BannerMeta {
	next := committed
	if draft.CreativeName != "" {
		next.CreativeName = draft.CreativeName
	}
	next.ContentHorizontalAlign = draft.ContentHorizontalAlign
	next.ContentVerticalAlign = draft.ContentVerticalAlign
	next.TextAlign = draft.TextAlign
	if draft.AccessibilityLabel != "" {
		next.AccessibilityLabel = draft.AccessibilityLabel
	}
	if draft.AltText != "" {
		next.AltText = draft.AltText
	}
	return next
}
