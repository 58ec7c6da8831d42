package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfridge-backend/domain"
)

func TestNormalizeRecipesClampsMatchPercentage(t *testing.T) {
	raw := `[
		{"title":"Omelette","match_percentage":150,"instructions":["beat eggs","fry"]},
		{"title":"Salad","match_percentage":-10,"instructions":["chop","mix"]},
		{"title":"Toast","match_percentage":80,"instructions":["toast bread"]}
	]`

	recipes, err := NormalizeRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	assert.Equal(t, 100, recipes[0].MatchPercentage)
	assert.Equal(t, 0, recipes[1].MatchPercentage)
	assert.Equal(t, 80, recipes[2].MatchPercentage)
}

func TestNormalizeRecipesDropsUnusable(t *testing.T) {
	raw := `[
		{"title":"","match_percentage":100,"instructions":["step"]},
		{"title":"No Steps","match_percentage":100,"instructions":[]},
		{"title":"Missing Steps","match_percentage":100},
		{"title":"Soup","match_percentage":90,"instructions":["boil water"]}
	]`

	recipes, err := NormalizeRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Soup", recipes[0].Title)
}

func TestNormalizeRecipesBucketCountsNotEnforced(t *testing.T) {
	// One exact match instead of the three the prompt asks for still passes.
	raw := `[{"title":"Rice","match_percentage":100,"missing_ingredients":[],"instructions":["cook rice"]}]`

	recipes, err := NormalizeRecipes(raw)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestNormalizeRecipesStripsFences(t *testing.T) {
	raw := "```json\n[{\"title\":\"Pasta\",\"match_percentage\":100,\"instructions\":[\"boil\",\"drain\"]}]\n```"

	recipes, err := NormalizeRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pasta", recipes[0].Title)
}

func TestNormalizeRecipesMalformed(t *testing.T) {
	_, err := NormalizeRecipes("I cannot help with that")
	assert.ErrorIs(t, err, domain.ErrMalformedAIResponse)
}

func TestNormalizeRecipesPassesDetailsThrough(t *testing.T) {
	raw := `[{
		"title":"Stir Fry",
		"difficulty":"Easy",
		"prep_time":"20 min",
		"match_percentage":85,
		"used_ingredients":["chicken","rice"],
		"missing_ingredients":["soy sauce"],
		"instructions":["cut chicken","fry","serve"]
	}]`

	recipes, err := NormalizeRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "Easy", r.Difficulty)
	assert.Equal(t, "20 min", r.PrepTime)
	assert.Equal(t, []string{"chicken", "rice"}, r.UsedIngredients)
	assert.Equal(t, []string{"soy sauce"}, r.MissingIngredients)
	assert.Len(t, r.Instructions, 3)
}
