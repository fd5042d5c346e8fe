package banner

// WidgetCode identifies the dynamic banner in widget manifests.
const WidgetCode = "marketing.widget.dynamic_banner"

var defaultRecipes = map[WidgetVariant][]RecipeOption{
	WidgetVariantStaticBanner: {
		{
			Value: "hero-full-bleed",
			Label: "Hero (Full Bleed)",
			LabelLocalized: map[string]string{
				"es": "Héroe (a sangre)",
			},
		},
		{
			Value: "hero-split",
			Label: "Hero (Split Image)",
			LabelLocalized: map[string]string{
				"es": "Héroe (imagen dividida)",
			},
		},
		{
			Value: "promo-strip",
			Label: "Promo Strip",
			LabelLocalized: map[string]string{
				"es": "Franja promocional",
			},
		},
		{
			Value: "card-overlay",
			Label: "Card Overlay",
		},
	},
}

// BannerSchema is the JSON schema for the configuration produced on save.
func BannerSchema() map[string]any {
	text := map[string]any{"type": "string"}
	return map[string]any{
		"type":     "object",
		"required": []string{"content_horizontal_align", "content_vertical_align", "text_align"},
		"properties": map[string]any{
			"recipe":                   text,
			"creative_name":            text,
			"accessibility_label":      text,
			"alt_text":                 text,
			"content_horizontal_align": enumSchema(optionValues(horizontalAligns)),
			"content_vertical_align":   enumSchema(optionValues(verticalAligns)),
			"text_align":               enumSchema(optionValues(horizontalAligns)),
			"topline":                  text,
			"topline_type_size":        enumSchema(optionValues(headingTypeSizes)),
			"header":                   text,
			"header_type_size":         enumSchema(optionValues(headingTypeSizes)),
			"header_tag":               enumSchema(optionValues(textTags)),
			"subtitle":                 text,
			"subtitle_type_size":       enumSchema(optionValues(subtitleTypeSizes)),
			"cta_text":                 text,
			"cta_url":                  text,
			"cta_style":                enumSchema(optionValues(buttonStyles)),
		},
		"additionalProperties": false,
	}
}

func enumSchema(values []string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}
