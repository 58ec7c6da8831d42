package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"myfridge-backend/domain"
)

// Categories is the closed vocabulary the vision prompt asks for. Anything
// the model invents outside this list collapses to Others.
var Categories = []string{
	"Dairy", "Meat", "Fish", "Vegetables", "Fruits", "Grains", "Bakery",
	"Frozen", "Beverages", "Sweets", "Sauces", "Canned", "Nuts", "Eggs",
	"Ready meals", "Alcohol", "Others",
}

var categorySet = func() map[string]string {
	set := make(map[string]string, len(Categories))
	for _, c := range Categories {
		set[strings.ToLower(c)] = c
	}
	return set
}()

// StripFences removes a surrounding markdown code fence, with or without a
// language tag. Models add them even when told not to.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the rest of the opening fence line ("json", "JSON", ...).
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// NormalizeScannedProducts turns raw model output into a clean product list.
// Elements without a name are dropped, category and unit get defaults, and
// quantity/volume pass through untouched. Order is preserved.
func NormalizeScannedProducts(raw string) ([]domain.ScannedProduct, error) {
	cleaned := StripFences(raw)

	var items []domain.ScannedProduct
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}

	normalized := make([]domain.ScannedProduct, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}

		if canonical, ok := categorySet[strings.ToLower(strings.TrimSpace(item.Category))]; ok {
			item.Category = canonical
		} else {
			item.Category = "Others"
		}

		if strings.TrimSpace(item.Unit) == "" {
			item.Unit = "pcs"
		}

		normalized = append(normalized, item)
	}

	return normalized, nil
}
