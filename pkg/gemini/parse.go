package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
)

// Wire shapes match the JSON keys the prompts request, which differ from the
// entity json tags used on the API surface.
type (
	generatedRecipe struct {
		Title           string                      `json:"title"`
		Description     string                      `json:"description"`
		PrepTime        string                      `json:"prepTime"`
		Calories        float64                     `json:"calories"`
		Ingredients     []entities.RecipeIngredient `json:"ingredients"`
		Instructions    []string                    `json:"instructions"`
		UsedIngredients []string                    `json:"usedIngredients"`
	}

	identifiedFood struct {
		Name       string `json:"name"`
		Quantity   string `json:"quantity"`
		Category   string `json:"category"`
		ExpiryDate string `json:"expiryDate"`
	}
)

func parseRecipes(text string, now time.Time) ([]entities.Recipe, error) {
	cleaned, err := extractJSON(text, '[', ']')
	if err != nil {
		return nil, domain.ErrGeminiAPIFailed
	}

	var raw []generatedRecipe
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, domain.ErrGeminiAPIFailed
	}
	if len(raw) == 0 {
		return nil, domain.ErrGeminiAPIFailed
	}

	recipes := make([]entities.Recipe, 0, len(raw))
	for i, r := range raw {
		recipes = append(recipes, entities.Recipe{
			ID:              fmt.Sprintf("recipe-%d-%d", now.UnixMilli(), i),
			Title:           r.Title,
			Description:     r.Description,
			PrepTime:        r.PrepTime,
			Calories:        int(r.Calories),
			Ingredients:     r.Ingredients,
			Instructions:    r.Instructions,
			UsedIngredients: r.UsedIngredients,
		})
	}
	return recipes, nil
}

func parseIdentifiedFood(text string, now time.Time) (domain.IdentifiedFood, error) {
	cleaned, err := extractJSON(text, '{', '}')
	if err != nil {
		return domain.IdentifiedFood{}, domain.ErrIdentifyFailed
	}

	var raw identifiedFood
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return domain.IdentifiedFood{}, domain.ErrIdentifyFailed
	}
	if strings.TrimSpace(raw.Name) == "" {
		return domain.IdentifiedFood{}, domain.ErrIdentifyFailed
	}

	if !entities.ValidCategory(raw.Category) {
		raw.Category = string(entities.CategoryOther)
	}
	if raw.Quantity == "" {
		raw.Quantity = "1"
	}
	if _, parseErr := time.Parse("2006-01-02", raw.ExpiryDate); parseErr != nil {
		raw.ExpiryDate = now.AddDate(0, 0, 7).Format("2006-01-02")
	}

	return domain.IdentifiedFood{
		Name:       strings.TrimSpace(raw.Name),
		Quantity:   raw.Quantity,
		Category:   raw.Category,
		ExpiryDate: raw.ExpiryDate,
	}, nil
}

// extractJSON strips markdown fences the model sometimes wraps responses in
// and cuts the payload down to the outermost open..close span.
func extractJSON(text string, open, closing byte) (string, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, closing)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON payload found in response")
	}
	return cleaned[start : end+1], nil
}
