package banner

import "fmt"

// ContentDialog stages edits to the banner content. The draft is copied once
// from the committed values and never resynced; only Apply hands it back.
type ContentDialog struct {
	initial BannerContent
	draft   ContentDraft
	onApply func(ContentDraft)
}

// NewContentDialog seeds a dialog from committed content.
func NewContentDialog(committed BannerContent, onApply func(ContentDraft)) *ContentDialog {
	return &ContentDialog{
		initial: committed,
		draft:   ContentDraft(committed),
		onApply: onApply,
	}
}

// Draft returns a copy of the staged values.
func (d *ContentDialog) Draft() ContentDraft { return d.draft }

func (d *ContentDialog) SetTopline(value RichText)          { d.draft.Topline = value }
func (d *ContentDialog) SetToplineTypeSize(value TypeSize)  { d.draft.ToplineTypeSize = value }
func (d *ContentDialog) SetHeader(value RichText)           { d.draft.Header = value }
func (d *ContentDialog) SetHeaderTypeSize(value TypeSize)   { d.draft.HeaderTypeSize = value }
func (d *ContentDialog) SetHeaderTag(value TextTag)         { d.draft.HeaderTag = value }
func (d *ContentDialog) SetSubtitle(value RichText)         { d.draft.Subtitle = value }
func (d *ContentDialog) SetSubtitleTypeSize(value TypeSize) { d.draft.SubtitleTypeSize = value }
func (d *ContentDialog) SetCtaText(value string)            { d.draft.CtaText = value }
func (d *ContentDialog) SetCtaURL(value string)             { d.draft.CtaURL = value }
func (d *ContentDialog) SetCtaStyle(value ButtonStyle)      { d.draft.CtaStyle = value }

// SetField updates a draft field by form name. Select fields only accept
// values from their option catalog; rich text is sanitized.
func (d *ContentDialog) SetField(name, value string) error {
	switch name {
	case FieldTopline:
		d.SetTopline(SanitizeRichText(value))
	case FieldToplineTypeSize:
		if !hasOption(headingTypeSizes, value) {
			return invalidOption(name, value)
		}
		d.SetToplineTypeSize(TypeSize(value))
	case FieldHeader:
		d.SetHeader(SanitizeRichText(value))
	case FieldHeaderTypeSize:
		if !hasOption(headingTypeSizes, value) {
			return invalidOption(name, value)
		}
		d.SetHeaderTypeSize(TypeSize(value))
	case FieldHeaderTag:
		if !hasOption(textTags, value) {
			return invalidOption(name, value)
		}
		d.SetHeaderTag(TextTag(value))
	case FieldSubtitle:
		d.SetSubtitle(SanitizeRichText(value))
	case FieldSubtitleTypeSize:
		if !hasOption(subtitleTypeSizes, value) {
			return invalidOption(name, value)
		}
		d.SetSubtitleTypeSize(TypeSize(value))
	case FieldCtaText:
		d.SetCtaText(value)
	case FieldCtaURL:
		d.SetCtaURL(value)
	case FieldCtaStyle:
		if !hasOption(buttonStyles, value) {
			return invalidOption(name, value)
		}
		d.SetCtaStyle(ButtonStyle(value))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Fields returns the topline, header, subtitle and CTA groups in display order.
func (d *ContentDialog) Fields() []FieldGroup {
	return []FieldGroup{
		{
			Name: "topline",
			Fields: []Field{
				selectField(FieldToplineTypeSize, "Topline Type Size", string(d.draft.ToplineTypeSize), TypeSizeOptions(), false),
				richTextField(FieldTopline, "Topline Text", d.draft.Topline, d.initial.Topline),
			},
		},
		{
			Name: "header",
			Fields: []Field{
				selectField(FieldHeaderTypeSize, "Header Type Size", string(d.draft.HeaderTypeSize), TypeSizeOptions(), false),
				selectField(FieldHeaderTag, "Header Tag", string(d.draft.HeaderTag), TextTagOptions(), false),
				richTextField(FieldHeader, "Header Text", d.draft.Header, d.initial.Header),
			},
		},
		{
			Name: "subtitle",
			Fields: []Field{
				selectField(FieldSubtitleTypeSize, "Subtitle Type Size", string(d.draft.SubtitleTypeSize), SubtitleTypeSizeOptions(), false),
				richTextField(FieldSubtitle, "Subtitle Text", d.draft.Subtitle, d.initial.Subtitle),
			},
		},
		{
			Name: "cta",
			Fields: []Field{
				selectField(FieldCtaStyle, "Button Style", string(d.draft.CtaStyle), ButtonStyleOptions(), false),
				textField(FieldCtaText, "Button Text", d.draft.CtaText, "", false),
				textField(FieldCtaURL, "Button URL", d.draft.CtaURL, "", false),
			},
		},
	}
}

// Apply emits the entire draft snapshot. The dialog stays open, so it may be
// applied again after further edits.
func (d *ContentDialog) Apply() {
	if d.onApply != nil {
		d.onApply(d.draft)
	}
}

// MetaDialog stages creative name, alignment and accessibility edits inside a popover.
type MetaDialog struct {
	draft   MetaDraft
	onApply func(MetaDraft)
	closed  bool
}

// NewMetaDialog seeds a dialog from committed metadata.
func NewMetaDialog(committed BannerMeta, onApply func(MetaDraft)) *MetaDialog {
	return &MetaDialog{
		draft:   MetaDraft(committed),
		onApply: onApply,
	}
}

// Draft returns a copy of the staged values.
func (d *MetaDialog) Draft() MetaDraft { return d.draft }

// Closed reports whether Apply or Cancel already closed the popover.
func (d *MetaDialog) Closed() bool { return d.closed }

// SetField updates a draft field by form name.
func (d *MetaDialog) SetField(name, value string) error {
	if d.closed {
		return ErrDialogClosed
	}
	switch name {
	case FieldCreativeName:
		d.draft.CreativeName = value
	case FieldAccessibilityLabel:
		d.draft.AccessibilityLabel = value
	case FieldAltText:
		d.draft.AltText = value
	case FieldContentHorizontalAlign:
		if !hasOption(horizontalAligns, value) {
			return invalidOption(name, value)
		}
		d.draft.ContentHorizontalAlign = HorizontalAlign(value)
	case FieldContentVerticalAlign:
		if !hasOption(verticalAligns, value) {
			return invalidOption(name, value)
		}
		d.draft.ContentVerticalAlign = VerticalAlign(value)
	case FieldTextAlign:
		if !hasOption(horizontalAligns, value) {
			return invalidOption(name, value)
		}
		d.draft.TextAlign = HorizontalAlign(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Fields lists the popover body fields with their required flags.
func (d *MetaDialog) Fields() []Field {
	return []Field{
		textField(FieldCreativeName, "Creative Name", d.draft.CreativeName, "Add a creative name for your banner", true),
		selectField(FieldContentHorizontalAlign, "Content Alignment (Horizontal)", string(d.draft.ContentHorizontalAlign), HorizontalAlignOptions(), true),
		selectField(FieldContentVerticalAlign, "Content Alignment (Vertical)", string(d.draft.ContentVerticalAlign), VerticalAlignOptions(), true),
		selectField(FieldTextAlign, "Text Alignment", string(d.draft.TextAlign), HorizontalAlignOptions(), true),
		textField(FieldAccessibilityLabel, "Accessibility Label (optional)", d.draft.AccessibilityLabel, "Add an accessibility label", false),
		textField(FieldAltText, "Alt Text (optional)", d.draft.AltText, "Add alt text", false),
	}
}

// Apply emits the draft snapshot and closes the popover.
func (d *MetaDialog) Apply() error {
	if d.closed {
		return ErrDialogClosed
	}
	d.closed = true
	if d.onApply != nil {
		d.onApply(d.draft)
	}
	return nil
}

// Cancel discards the draft without applying it.
func (d *MetaDialog) Cancel() {
	d.closed = true
}

func invalidOption(field, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidOption, field, value)
}
