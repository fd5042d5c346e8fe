package queries

import (
	"context"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// RecipesInput selects the variant and label locale for the recipe selector.
type RecipesInput struct {
	Variant banner.WidgetVariant `json:"variant"`
	Locale  string               `json:"locale"`
}

type recipeService interface {
	Recipes(variant banner.WidgetVariant) []banner.RecipeOption
}

// RecipesQuery lists recipe options with localized labels.
type RecipesQuery struct {
	service recipeService
}

// NewRecipesQuery builds the query.
func NewRecipesQuery(service recipeService) *RecipesQuery {
	return &RecipesQuery{service: service}
}

var _ gocommand.Querier[RecipesInput, []banner.Option] = (*RecipesQuery)(nil)

// Query resolves the options. The author locale on ctx is used when the
// input leaves it empty.
func (q *RecipesQuery) Query(ctx context.Context, input RecipesInput) ([]banner.Option, error) {
	locale := input.Locale
	if locale == "" {
		locale = banner.AuthorFromContext(ctx).Locale
	}
	return banner.RecipeOptions(q.service.Recipes(input.Variant), locale), nil
}
