package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-banner/components/banner"
)

type recipesCmd struct {
	Variant  string `default:"STATIC_BANNER" enum:"STATIC_BANNER,DYNAMIC_BANNER" help:"Widget variant."`
	Locale   string `help:"Locale used for recipe labels."`
	Manifest string `type:"path" help:"Optional recipe manifest merged before listing."`
	Format   string `default:"yaml" enum:"yaml,json" help:"Output format."`

	out io.Writer `kong:"-"`
}

func (cmd *recipesCmd) Run() error {
	registry := banner.NewRegistry()
	if cmd.Manifest != "" {
		if _, err := registry.LoadManifestFile(cmd.Manifest); err != nil {
			return err
		}
	}
	opts := banner.RecipeOptions(registry.Recipes(banner.WidgetVariant(cmd.Variant)), cmd.Locale)
	return encode(writerOr(cmd.out), cmd.Format, opts)
}

type recipeAddCmd struct {
	ManifestPath string            `name:"manifest" required:"" type:"path" help:"Recipe manifest YAML file to update."`
	Label        string            `required:"" help:"Display label for the recipe."`
	Value        string            `help:"Recipe value (defaults to the kebab-cased label)."`
	Variant      string            `default:"STATIC_BANNER" enum:"STATIC_BANNER,DYNAMIC_BANNER" help:"Widget variant."`
	Localized    map[string]string `help:"Localized labels as locale=label pairs."`
	Tag          []string          `help:"Optional tags (use multiple --tag flags)."`
	Overwrite    bool              `help:"Replace an existing entry with the same value."`

	out io.Writer `kong:"-"`
}

func (cmd *recipeAddCmd) Run() error {
	value := cmd.Value
	if value == "" {
		value = strcase.ToKebab(cmd.Label)
	}
	path, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("bannerctl: resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(path)
	if err != nil {
		return err
	}
	entry := banner.ManifestRecipe{
		Variant:        banner.WidgetVariant(cmd.Variant),
		Value:          value,
		Label:          cmd.Label,
		LabelLocalized: cmd.Localized,
		Tags:           cmd.Tag,
	}
	idx := slices.IndexFunc(doc.Recipes, func(r banner.ManifestRecipe) bool {
		return r.Variant == entry.Variant && r.Value == entry.Value
	})
	switch {
	case idx >= 0 && !cmd.Overwrite:
		return fmt.Errorf("bannerctl: manifest already defines recipe %s for %s (use --overwrite to replace)", value, cmd.Variant)
	case idx >= 0:
		doc.Recipes[idx] = entry
	default:
		doc.Recipes = append(doc.Recipes, entry)
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := writeManifest(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(writerOr(cmd.out), "✓ Added %s to %s\n", value, path)
	return nil
}

func loadOrInitManifest(path string) (*banner.RecipeManifestDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &banner.RecipeManifestDocument{
				Version: banner.ManifestVersion,
				Recipes: []banner.ManifestRecipe{},
				Source:  path,
			}, nil
		}
		return nil, fmt.Errorf("bannerctl: stat manifest: %w", err)
	}
	return banner.ReadManifest(path)
}

func writeManifest(path string, doc *banner.RecipeManifestDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("bannerctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("bannerctl: create manifest %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("bannerctl: write manifest: %w", err)
	}
	return nil
}

func encode(out io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
