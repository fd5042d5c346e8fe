package banner

import (
	"fmt"
	"slices"
	"sync"
)

// RecipeHook lets packages register recipes during init().
type RecipeHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []RecipeHook
)

// RegisterRecipeHook registers a hook executed against new registries.
func RegisterRecipeHook(h RecipeHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry implements RecipeCatalog with hook + manifest support.
type Registry struct {
	mu      sync.RWMutex
	recipes map[WidgetVariant][]RecipeOption
}

// NewRegistry builds a registry with the default recipes and applies global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		recipes: map[WidgetVariant][]RecipeOption{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

func (r *Registry) registerDefaults() {
	for variant, recipes := range defaultRecipes {
		for _, recipe := range recipes {
			_ = r.RegisterRecipe(variant, recipe)
		}
	}
}

// ApplyHooks executes registered recipe hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterRecipe adds or replaces a recipe for the variant, keeping insertion order.
func (r *Registry) RegisterRecipe(variant WidgetVariant, recipe RecipeOption) error {
	if variant == "" {
		return fmt.Errorf("banner: widget variant is required")
	}
	if recipe.Value == "" {
		return fmt.Errorf("banner: recipe value is required")
	}
	if recipe.Label == "" {
		recipe.Label = recipe.Value
	}
	recipe.LabelLocalized = normalizeLocaleMap(recipe.LabelLocalized)
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.recipes[variant]
	if idx := slices.IndexFunc(list, func(o RecipeOption) bool { return o.Value == recipe.Value }); idx >= 0 {
		list[idx] = recipe
		return nil
	}
	r.recipes[variant] = append(list, recipe)
	return nil
}

// Recipes returns the ordered recipe list for a variant. The dynamic banner
// shares the static banner recipes unless it has its own.
func (r *Registry) Recipes(variant WidgetVariant) []RecipeOption {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.recipes[variant]
	if !ok && variant == WidgetVariantDynamicBanner {
		list = r.recipes[WidgetVariantStaticBanner]
	}
	return slices.Clone(list)
}

// Recipe finds a recipe by value.
func (r *Registry) Recipe(variant WidgetVariant, value string) (RecipeOption, bool) {
	for _, recipe := range r.Recipes(variant) {
		if recipe.Value == value {
			return recipe, true
		}
	}
	return RecipeOption{}, false
}

// Variants lists the variants that have recipes registered.
func (r *Registry) Variants() []WidgetVariant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WidgetVariant, 0, len(r.recipes))
	for variant := range r.recipes {
		out = append(out, variant)
	}
	slices.Sort(out)
	return out
}

// RecipeOptions converts recipes into select options for a locale.
func RecipeOptions(recipes []RecipeOption, locale string) []Option {
	out := make([]Option, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, Option{Value: recipe.Value, Label: recipe.LabelForLocale(locale)})
	}
	return out
}
