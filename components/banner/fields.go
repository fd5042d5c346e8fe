package banner

// FieldKind selects how the generic field renderer draws a field.
type FieldKind string

const (
	FieldKindText     FieldKind = "TEXT"
	FieldKindSelect   FieldKind = "SELECT"
	FieldKindRichText FieldKind = "RICH_TEXT"
)

// Field describes one input handed to the field renderer. Required is
// declarative; the renderer decides how to present it.
type Field struct {
	Kind         FieldKind `json:"kind"`
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	Placeholder  string    `json:"placeholder,omitempty"`
	Options      []Option  `json:"options,omitempty"`
	Required     bool      `json:"required"`
	InitialValue string    `json:"initial_value,omitempty"`
	Limit        int       `json:"limit,omitempty"`
	Toolbar      string    `json:"toolbar,omitempty"`
}

// FieldGroup is a row of related fields rendered together.
type FieldGroup struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Form field names shared by dialogs and transports.
const (
	FieldTopline                = "topline"
	FieldToplineTypeSize        = "topline_type_size"
	FieldHeader                 = "header"
	FieldHeaderTypeSize         = "header_type_size"
	FieldHeaderTag              = "header_tag"
	FieldSubtitle               = "subtitle"
	FieldSubtitleTypeSize       = "subtitle_type_size"
	FieldCtaText                = "cta_text"
	FieldCtaURL                 = "cta_url"
	FieldCtaStyle               = "cta_style"
	FieldCreativeName           = "creative_name"
	FieldContentHorizontalAlign = "content_horizontal_align"
	FieldContentVerticalAlign   = "content_vertical_align"
	FieldTextAlign              = "text_align"
	FieldAccessibilityLabel     = "accessibility_label"
	FieldAltText                = "alt_text"
)

func selectField(name, label, value string, options []Option, required bool) Field {
	return Field{
		Kind:     FieldKindSelect,
		Name:     name,
		Label:    label,
		Value:    value,
		Options:  options,
		Required: required,
	}
}

func textField(name, label, value, placeholder string, required bool) Field {
	return Field{
		Kind:        FieldKindText,
		Name:        name,
		Label:       label,
		Value:       value,
		Placeholder: placeholder,
		Required:    required,
	}
}

func richTextField(name, label string, value, initial RichText) Field {
	return Field{
		Kind:         FieldKindRichText,
		Name:         name,
		Label:        label,
		Value:        value.String(),
		Placeholder:  label,
		InitialValue: initial.String(),
		Limit:        RichTextLimit,
		Toolbar:      RichTextToolbar,
	}
}
