package banner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry()
	recipes := reg.Recipes(WidgetVariantStaticBanner)
	if len(recipes) == 0 {
		t.Fatalf("expected default static banner recipes")
	}
	dynamic := reg.Recipes(WidgetVariantDynamicBanner)
	if len(dynamic) != len(recipes) || dynamic[0].Value != recipes[0].Value {
		t.Fatalf("expected dynamic banner to share static recipes, got %#v", dynamic)
	}
}

func TestRegistryRegisterRecipeReplacesInPlace(t *testing.T) {
	reg := NewRegistry()
	before := reg.Recipes(WidgetVariantStaticBanner)
	first := before[0]
	if err := reg.RegisterRecipe(WidgetVariantStaticBanner, RecipeOption{Value: first.Value, Label: "Renamed"}); err != nil {
		t.Fatalf("RegisterRecipe returned error: %v", err)
	}
	got := reg.Recipes(WidgetVariantStaticBanner)
	if got[0].Label != "Renamed" || len(got) != len(before) {
		t.Fatalf("expected in-place replacement, got %#v", got)
	}
	if err := reg.RegisterRecipe(WidgetVariantStaticBanner, RecipeOption{}); err == nil {
		t.Fatalf("expected error for recipe without value")
	}
}

func TestRegistryHooks(t *testing.T) {
	RegisterRecipeHook(func(reg *Registry) error {
		return reg.RegisterRecipe("TEST_VARIANT", RecipeOption{Value: "hooked"})
	})
	reg := NewRegistry()
	if _, ok := reg.Recipe("TEST_VARIANT", "hooked"); !ok {
		t.Fatalf("expected hook recipe to be registered")
	}
}

func TestRecipeOptionsLocalize(t *testing.T) {
	recipes := []RecipeOption{{Value: "a", Label: "Promo", LabelLocalized: map[string]string{"es": "Promoción"}}}
	if got := RecipeOptions(recipes, "es-MX"); got[0].Label != "Promoción" {
		t.Fatalf("expected localized label, got %s", got[0].Label)
	}
	if got := RecipeOptions(recipes, "fr"); got[0].Label != "Promo" {
		t.Fatalf("expected fallback label, got %s", got[0].Label)
	}
}

func TestDecodeManifest(t *testing.T) {
	doc, err := DecodeManifest(strings.NewReader(`
version: "1"
name: seasonal
recipes:
  - value: holiday-hero
    label: Holiday Hero
    label_localized:
      ES: Héroe navideño
  - variant: DYNAMIC_BANNER
    value: countdown
    label: Countdown
`))
	if err != nil {
		t.Fatalf("DecodeManifest returned error: %v", err)
	}
	if doc.Recipes[0].Variant != WidgetVariantStaticBanner {
		t.Fatalf("expected default variant, got %s", doc.Recipes[0].Variant)
	}
	reg := NewRegistry()
	if err := reg.LoadManifestDocument(doc); err != nil {
		t.Fatalf("LoadManifestDocument returned error: %v", err)
	}
	recipe, ok := reg.Recipe(WidgetVariantStaticBanner, "holiday-hero")
	if !ok || recipe.LabelForLocale("es") != "Héroe navideño" {
		t.Fatalf("expected localized manifest recipe, got %#v", recipe)
	}
	if got := reg.Recipes(WidgetVariantDynamicBanner); len(got) != 1 || got[0].Value != "countdown" {
		t.Fatalf("expected dynamic banner recipes from manifest, got %#v", got)
	}
}

func TestDecodeManifestRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"version":   "version: \"2\"\nrecipes: []\n",
		"value":     "recipes:\n  - label: x\n",
		"label":     "recipes:\n  - value: x\n",
		"duplicate": "recipes:\n  - {value: x, label: X}\n  - {value: x, label: Y}\n",
		"unknown":   "recipes: []\nextra: true\n",
		"empty":     "",
	}
	for name, body := range cases {
		if _, err := DecodeManifest(strings.NewReader(body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, []byte("recipes:\n  - {value: x, label: X}\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	reg := NewRegistry()
	doc, err := reg.LoadManifestFile(path)
	if err != nil {
		t.Fatalf("LoadManifestFile returned error: %v", err)
	}
	if doc.Source != path {
		t.Fatalf("expected source recorded, got %s", doc.Source)
	}
	if _, ok := reg.Recipe(WidgetVariantStaticBanner, "x"); !ok {
		t.Fatalf("expected manifest recipe registered")
	}
}

func TestRecipeLabelResolvesUnderscoreLocaleKeys(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterRecipe(WidgetVariantStaticBanner, RecipeOption{
		Value:          "x",
		Label:          "X",
		LabelLocalized: map[string]string{"es_MX": "Equis", "FR": "Iks"},
	}); err != nil {
		t.Fatalf("RegisterRecipe: %v", err)
	}
	recipe, ok := reg.Recipe(WidgetVariantStaticBanner, "x")
	if !ok {
		t.Fatalf("expected recipe x")
	}
	for locale, want := range map[string]string{
		"es_MX": "Equis",
		"es-mx": "Equis",
		"fr_CA": "Iks",
		"de":    "X",
	} {
		if got := recipe.LabelForLocale(locale); got != want {
			t.Fatalf("LabelForLocale(%q) = %q, want %q", locale, got, want)
		}
	}
}
