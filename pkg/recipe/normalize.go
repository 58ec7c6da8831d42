package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	"myfridge-backend/domain"
	"myfridge-backend/pkg/scan"
)

// NormalizeRecipes parses raw model output into usable suggestions. A recipe
// without a title or without instructions is useless to the app, so those are
// dropped. Match percentages get clamped into 0..100; everything else passes
// through as the model wrote it.
func NormalizeRecipes(raw string) ([]domain.RecipeSuggestion, error) {
	cleaned := scan.StripFences(raw)

	var recipes []domain.RecipeSuggestion
	if err := json.Unmarshal([]byte(cleaned), &recipes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}

	normalized := make([]domain.RecipeSuggestion, 0, len(recipes))
	for _, r := range recipes {
		r.Title = strings.TrimSpace(r.Title)
		if r.Title == "" || len(r.Instructions) == 0 {
			continue
		}

		if r.MatchPercentage < 0 {
			r.MatchPercentage = 0
		} else if r.MatchPercentage > 100 {
			r.MatchPercentage = 100
		}

		normalized = append(normalized, r)
	}

	return normalized, nil
}
