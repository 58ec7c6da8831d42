package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"myfridge-backend/domain"
	"myfridge-backend/pkg/gemini"
)

const recipePromptTemplate = `You are a professional chef. The user has these ingredients at home: %s.%s

Suggest recipes as a JSON array. The first 3 recipes must use ONLY the listed ingredients plus water, salt, pepper and basic pantry seasonings; give those a "match_percentage" of 100 and an empty "missing_ingredients" list. Then add 2 or 3 more recipes that need one or two extra ingredients; for those set "match_percentage" below 100 and list what is missing.

Each element must have these fields:
- "title": recipe name
- "difficulty": "Easy", "Medium" or "Hard"
- "prep_time": total preparation and cooking time, for example "25 min"
- "match_percentage": integer 0-100
- "used_ingredients": ingredients from the user's list this recipe uses
- "missing_ingredients": ingredients the user would need to buy
- "instructions": array of step-by-step strings

Order the array by match_percentage descending. Return ONLY the JSON array, no markdown, no explanations.`

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) ([]domain.RecipeSuggestion, error)
	}

	recipeService struct {
		ai  gemini.Client
		log *zap.Logger
	}
)

func NewRecipeService(ai gemini.Client, log *zap.Logger) RecipeService {
	return &recipeService{ai: ai, log: log}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) ([]domain.RecipeSuggestion, error) {
	ingredients := make([]string, 0, len(req.AvailableIngredients))
	for _, ing := range req.AvailableIngredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	if len(ingredients) == 0 {
		return nil, domain.ErrEmptyIngredients
	}

	extra := ""
	if prompt := strings.TrimSpace(req.UserPrompt); prompt != "" {
		extra = fmt.Sprintf(" Additional wishes from the user: %s.", prompt)
	}

	prompt := fmt.Sprintf(recipePromptTemplate, strings.Join(ingredients, ", "), extra)

	raw, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recipes, err := NormalizeRecipes(raw)
	if err != nil {
		s.log.Warn("unparseable recipe response",
			zap.Int("response_len", len(raw)),
			zap.Error(err),
		)
		return nil, err
	}

	// Models drift on ordering. Stable sort keeps the model's order between
	// equal matches.
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].MatchPercentage > recipes[j].MatchPercentage
	})

	s.log.Info("recipes generated",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("recipes", len(recipes)),
	)

	return recipes, nil
}
