package banner

import (
	"slices"

	"github.com/ettle/strcase"
)

// TypeSize selects one of the design system typography levels.
type TypeSize string

const (
	TypeSizeLevel1 TypeSize = "LEVEL1"
	TypeSizeLevel2 TypeSize = "LEVEL2"
	TypeSizeLevel3 TypeSize = "LEVEL3"
	TypeSizeLevel4 TypeSize = "LEVEL4"
	TypeSizeLevel5 TypeSize = "LEVEL5"
	TypeSizeLevel6 TypeSize = "LEVEL6"
	TypeSizeLevel7 TypeSize = "LEVEL7"
)

// TextTag is the HTML element used to render a heading.
type TextTag string

const (
	TextTagH1 TextTag = "H1"
	TextTagH2 TextTag = "H2"
	TextTagH3 TextTag = "H3"
	TextTagH4 TextTag = "H4"
	TextTagP  TextTag = "P"
)

// ButtonStyle is the call-to-action button theme.
type ButtonStyle string

const (
	ButtonStyleNavyBlue  ButtonStyle = "NAVY_BLUE"
	ButtonStyleChewyBlue ButtonStyle = "CHEWY_BLUE"
	ButtonStyleWhite     ButtonStyle = "WHITE"
)

// HorizontalAlign positions content or text along the x axis.
type HorizontalAlign string

const (
	HorizontalAlignLeft   HorizontalAlign = "LEFT"
	HorizontalAlignCenter HorizontalAlign = "CENTER"
	HorizontalAlignRight  HorizontalAlign = "RIGHT"
)

// VerticalAlign positions content along the y axis.
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "TOP"
	VerticalAlignMiddle VerticalAlign = "MIDDLE"
	VerticalAlignBottom VerticalAlign = "BOTTOM"
)

// Option is a selectable value shown by select fields.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// CSSClass returns a kebab-case class name derived from the option value.
func (o Option) CSSClass() string {
	return strcase.ToKebab(o.Value)
}

var typeSizeOptionMap = map[TypeSize]Option{
	TypeSizeLevel1: {Value: string(TypeSizeLevel1), Label: "Level 1"},
	TypeSizeLevel2: {Value: string(TypeSizeLevel2), Label: "Level 2"},
	TypeSizeLevel3: {Value: string(TypeSizeLevel3), Label: "Level 3"},
	TypeSizeLevel4: {Value: string(TypeSizeLevel4), Label: "Level 4"},
	TypeSizeLevel5: {Value: string(TypeSizeLevel5), Label: "Level 5"},
	TypeSizeLevel6: {Value: string(TypeSizeLevel6), Label: "Level 6"},
	TypeSizeLevel7: {Value: string(TypeSizeLevel7), Label: "Level 7"},
}

var textTagOptionMap = map[TextTag]Option{
	TextTagH1: {Value: string(TextTagH1), Label: "H1"},
	TextTagH2: {Value: string(TextTagH2), Label: "H2"},
	TextTagH3: {Value: string(TextTagH3), Label: "H3"},
	TextTagH4: {Value: string(TextTagH4), Label: "H4"},
	TextTagP:  {Value: string(TextTagP), Label: "Paragraph"},
}

var buttonStyleOptionMap = map[ButtonStyle]Option{
	ButtonStyleNavyBlue:  {Value: string(ButtonStyleNavyBlue), Label: "Navy Blue"},
	ButtonStyleChewyBlue: {Value: string(ButtonStyleChewyBlue), Label: "Chewy Blue"},
	ButtonStyleWhite:     {Value: string(ButtonStyleWhite), Label: "White"},
}

var horizontalAlignOptionMap = map[HorizontalAlign]Option{
	HorizontalAlignLeft:   {Value: string(HorizontalAlignLeft), Label: "Left"},
	HorizontalAlignCenter: {Value: string(HorizontalAlignCenter), Label: "Center"},
	HorizontalAlignRight:  {Value: string(HorizontalAlignRight), Label: "Right"},
}

var verticalAlignOptionMap = map[VerticalAlign]Option{
	VerticalAlignTop:    {Value: string(VerticalAlignTop), Label: "Top"},
	VerticalAlignMiddle: {Value: string(VerticalAlignMiddle), Label: "Middle"},
	VerticalAlignBottom: {Value: string(VerticalAlignBottom), Label: "Bottom"},
}

// Header and topline sizes. LEVEL3 is intentionally not offered.
var headingTypeSizes = []TypeSize{
	TypeSizeLevel1,
	TypeSizeLevel2,
	TypeSizeLevel4,
	TypeSizeLevel5,
	TypeSizeLevel6,
	TypeSizeLevel7,
}

var subtitleTypeSizes = []TypeSize{TypeSizeLevel1, TypeSizeLevel2}

var textTags = []TextTag{TextTagH1, TextTagH2, TextTagH3, TextTagH4, TextTagP}

var buttonStyles = []ButtonStyle{ButtonStyleNavyBlue, ButtonStyleChewyBlue, ButtonStyleWhite}

var horizontalAligns = []HorizontalAlign{HorizontalAlignLeft, HorizontalAlignCenter, HorizontalAlignRight}

var verticalAligns = []VerticalAlign{VerticalAlignTop, VerticalAlignMiddle, VerticalAlignBottom}

// TypeSizeOptions lists the sizes offered for topline and header text.
func TypeSizeOptions() []Option {
	return optionsFor(headingTypeSizes, typeSizeOptionMap)
}

// SubtitleTypeSizeOptions lists the restricted subtitle sizes.
func SubtitleTypeSizeOptions() []Option {
	return optionsFor(subtitleTypeSizes, typeSizeOptionMap)
}

// TextTagOptions lists the header tags.
func TextTagOptions() []Option {
	return optionsFor(textTags, textTagOptionMap)
}

// ButtonStyleOptions lists the call-to-action styles.
func ButtonStyleOptions() []Option {
	return optionsFor(buttonStyles, buttonStyleOptionMap)
}

// HorizontalAlignOptions lists horizontal alignments.
func HorizontalAlignOptions() []Option {
	return optionsFor(horizontalAligns, horizontalAlignOptionMap)
}

// VerticalAlignOptions lists vertical alignments.
func VerticalAlignOptions() []Option {
	return optionsFor(verticalAligns, verticalAlignOptionMap)
}

func optionsFor[K ~string](keys []K, index map[K]Option) []Option {
	out := make([]Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, index[key])
	}
	return out
}

func optionValues[K ~string](keys []K) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = string(key)
	}
	return out
}

func hasOption[K ~string](keys []K, value string) bool {
	return slices.Contains(keys, K(value))
}
