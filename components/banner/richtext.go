package banner

import (
	"encoding/json"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// RichTextLimit is the character cap enforced by the rich-text editor.
	RichTextLimit = 230
	// RichTextToolbar lists the editor features available to content authors.
	RichTextToolbar = "bold underline forecolor backcolor bullist numlist"
)

// RichText is editor-produced markup that has passed the sanitization policy.
// Templates may emit it without escaping.
type RichText string

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy

	cssColorPattern = regexp.MustCompile(`(?i)^(#[0-9a-f]{3,8}|rgba?\([0-9.,%\s]+\)|[a-z]+)$`)
)

// editorPolicy mirrors the editor toolbar: emphasis, underline, colors and lists.
func editorPolicy() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "br", "strong", "b", "em", "i", "u", "ul", "ol", "li", "span")
		p.AllowStyles("color", "background-color").Matching(cssColorPattern).OnElements("span", "p")
		richTextPolicy = p
	})
	return richTextPolicy
}

// SanitizeRichText applies the editor policy to raw markup.
func SanitizeRichText(raw string) RichText {
	if raw == "" {
		return ""
	}
	return RichText(editorPolicy().Sanitize(raw))
}

// String returns the sanitized markup.
func (r RichText) String() string { return string(r) }

// IsEmpty reports whether the editor produced no markup.
func (r RichText) IsEmpty() bool { return r == "" }

// OrPlaceholder returns the markup, or the placeholder when empty.
func (r RichText) OrPlaceholder(placeholder string) RichText {
	if r.IsEmpty() {
		return RichText(placeholder)
	}
	return r
}

// UnmarshalText sanitizes decoded values so untrusted input never bypasses the policy.
func (r *RichText) UnmarshalText(data []byte) error {
	*r = SanitizeRichText(string(data))
	return nil
}

// UnmarshalJSON sanitizes decoded values.
func (r *RichText) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SanitizeRichText(raw)
	return nil
}
