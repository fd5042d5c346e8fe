package banner

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// RecipeManifestDocument models a YAML/JSON manifest describing recipes per widget variant.
type RecipeManifestDocument struct {
	Version string           `json:"version" yaml:"version"`
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Recipes []ManifestRecipe `json:"recipes" yaml:"recipes"`
	Source  string           `json:"-" yaml:"-"`
}

// ManifestRecipe describes a single recipe entry within a manifest.
type ManifestRecipe struct {
	Variant        WidgetVariant     `json:"variant" yaml:"variant"`
	Value          string            `json:"value" yaml:"value"`
	Label          string            `json:"label" yaml:"label"`
	LabelLocalized map[string]string `json:"label_localized,omitempty" yaml:"label_localized,omitempty"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// LoadManifestFile reads a manifest from disk, registers it, and returns the document.
func (r *Registry) LoadManifestFile(path string) (*RecipeManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers recipes from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *RecipeManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("banner: manifest document is nil")
	}
	for _, item := range doc.Recipes {
		recipe := RecipeOption{
			Value:          item.Value,
			Label:          item.Label,
			LabelLocalized: item.LabelLocalized,
		}
		if err := r.RegisterRecipe(item.Variant, recipe); err != nil {
			return fmt.Errorf("banner: register recipe %s from %s: %w", item.Value, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*RecipeManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("banner: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("banner: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*RecipeManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc RecipeManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("banner: manifest is empty")
		}
		return nil, fmt.Errorf("banner: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *RecipeManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("banner: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Recipes))
	for idx, recipe := range doc.Recipes {
		if recipe.Value == "" {
			return fmt.Errorf("banner: manifest recipe at index %d is missing value", idx)
		}
		if recipe.Label == "" {
			return fmt.Errorf("banner: manifest recipe %s missing label", recipe.Value)
		}
		key := string(recipe.Variant) + "/" + recipe.Value
		if _, exists := seen[key]; exists {
			return fmt.Errorf("banner: manifest duplicates recipe %s for %s", recipe.Value, recipe.Variant)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (doc *RecipeManifestDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
	for i := range doc.Recipes {
		if doc.Recipes[i].Variant == "" {
			doc.Recipes[i].Variant = WidgetVariantStaticBanner
		}
	}
}
