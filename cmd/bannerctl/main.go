package main

import (
	"context"

	"github.com/alecthomas/kong"
)

type cli struct {
	Serve     serveCmd     `cmd:"" help:"Run the banner authoring API and the preview event stream."`
	Recipes   recipesCmd   `cmd:"" help:"List the recipe options offered for a widget variant."`
	RecipeAdd recipeAddCmd `cmd:"" name:"recipe-add" help:"Add or replace a recipe entry in a recipe manifest."`
	Preview   previewCmd   `cmd:"" help:"Render the live preview for a banner draft file."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Name("bannerctl"),
		kong.Description("Authoring utility for dynamic banner sessions, recipes, and previews."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}
