package commands

import (
	"context"
	"errors"

	banner "github.com/goliatone/go-banner/components/banner"
	gocommand "github.com/goliatone/go-command"
)

// SetRecipeInput selects a recipe; an empty Recipe clears the selection.
type SetRecipeInput struct {
	SessionID string `json:"session_id"`
	Recipe    string `json:"recipe"`
	Author    Author `json:"author"`
}

type recipeService interface {
	SetRecipe(ctx context.Context, id, recipe string) (*banner.Session, error)
}

// SetRecipeCommand wraps Service.SetRecipe.
type SetRecipeCommand struct {
	service   recipeService
	telemetry Telemetry
}

// NewSetRecipeCommand creates the command.
func NewSetRecipeCommand(service recipeService, telemetry Telemetry) *SetRecipeCommand {
	return &SetRecipeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetRecipeInput] = (*SetRecipeCommand)(nil)

// Execute records the recipe.
func (c *SetRecipeCommand) Execute(ctx context.Context, msg SetRecipeInput) error {
	if c.service == nil {
		return errors.New("set recipe command requires service")
	}
	if msg.SessionID == "" {
		return errors.New("set recipe command requires session id")
	}
	ctx = withAuthor(ctx, msg.Author)
	if _, err := c.service.SetRecipe(ctx, msg.SessionID, msg.Recipe); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "banner.command.set_recipe", map[string]any{
		"session_id": msg.SessionID,
		"recipe":     msg.Recipe,
	})
	return nil
}
