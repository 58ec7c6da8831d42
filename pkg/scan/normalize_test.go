package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfridge-backend/domain"
)

func TestNormalizeDefaultsCategoryAndUnit(t *testing.T) {
	raw := `[{"name":"Milk","expiry_date":"2024-02-01"}]`

	products, err := NormalizeScannedProducts(raw)
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Others", products[0].Category)
	assert.Equal(t, "pcs", products[0].Unit)
}

func TestNormalizePassesFieldsThrough(t *testing.T) {
	// Capitalized keys as the model sometimes emits them.
	raw := `[{"Name":"Milk","Quantity":5,"Volume":200,"Unit":"g"}]`

	products, err := NormalizeScannedProducts(raw)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Milk", p.Name)
	require.NotNil(t, p.Quantity)
	assert.Equal(t, 5, *p.Quantity)
	require.NotNil(t, p.Volume)
	assert.Equal(t, 200.0, *p.Volume)
	assert.Equal(t, "g", p.Unit)
	assert.Equal(t, "Others", p.Category)
}

func TestNormalizeStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n[{\"name\":\"Yogurt\",\"category\":\"Dairy\",\"unit\":\"ml\"}]\n```"

	products, err := NormalizeScannedProducts(fenced)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Yogurt", products[0].Name)
	assert.Equal(t, "Dairy", products[0].Category)

	bare := "```\n[{\"name\":\"Bread\"}]\n```"
	products, err = NormalizeScannedProducts(bare)
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestNormalizeDropsNamelessElements(t *testing.T) {
	raw := `[{"name":""},{"name":"  "},{"name":"Butter"}]`

	products, err := NormalizeScannedProducts(raw)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Butter", products[0].Name)
}

func TestNormalizeCanonicalizesCategoryCase(t *testing.T) {
	raw := `[{"name":"Salmon","category":"fish"},{"name":"Pad Thai","category":"ready meals"},{"name":"Mystery","category":"Cryptids"}]`

	products, err := NormalizeScannedProducts(raw)
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Fish", products[0].Category)
	assert.Equal(t, "Ready meals", products[1].Category)
	assert.Equal(t, "Others", products[2].Category)
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := `[{"name":"A"},{"name":"B"},{"name":"C"}]`

	products, err := NormalizeScannedProducts(raw)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "C", products[2].Name)
}

func TestNormalizeRejectsNonArray(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"name":"Milk"}`,
		"```json\ngarbage\n```",
		"",
	} {
		_, err := NormalizeScannedProducts(raw)
		assert.ErrorIs(t, err, domain.ErrMalformedAIResponse, "input: %q", raw)
	}
}

func TestNormalizeEmptyArray(t *testing.T) {
	products, err := NormalizeScannedProducts("[]")
	require.NoError(t, err)
	assert.Empty(t, products)
}
