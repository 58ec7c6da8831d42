package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"

	MessageFailedGenerateRecipes  = "failed to generate recipes"
	MessageFailedEmptyIngredients = "ingredient list must not be empty"

	ErrEmptyIngredients = errors.New("no ingredients provided")
)

type (
	GenerateRecipesRequest struct {
		AvailableIngredients []string `json:"available_ingredients" validate:"required,min=1,dive,required"`
		UserPrompt           string   `json:"user_prompt,omitempty"`
	}

	// RecipeSuggestion mirrors the generation contract: the first three
	// entries should use only available ingredients (match 100, nothing
	// missing), the rest miss one or two. The counts are the model's promise,
	// not something this side enforces.
	RecipeSuggestion struct {
		Title              string   `json:"title"`
		Difficulty         string   `json:"difficulty"`
		PrepTime           string   `json:"prep_time"`
		MatchPercentage    int      `json:"match_percentage"`
		UsedIngredients    []string `json:"used_ingredients"`
		MissingIngredients []string `json:"missing_ingredients"`
		Instructions       []string `json:"instructions"`
	}
)
