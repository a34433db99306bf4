// Package gemini is the client for the Google generative language API. It is
// the application's only source of recipe content, storage tips, image
// identification and chat replies; every caller treats it as a best-effort
// collaborator and degrades on failure.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/expiry"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	model  string
	logger *zap.Logger
	now    func() time.Time
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(base, "/")).
		SetQueryParam("key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		model:  cfg.Model,
		logger: logger,
		now:    time.Now,
	}
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateContent(ctx context.Context, parts []map[string]any, temperature float64) (string, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature": temperature,
			"topP":        0.8,
			"topK":        40,
		},
	}

	var result generateContentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		c.logger.Warn("gemini request rejected",
			zap.String("status", resp.Status()),
			zap.String("model", c.model))
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status(), resp.String())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func textPart(text string) map[string]any {
	return map[string]any{"text": text}
}

func imagePart(image []byte, mimeType string) map[string]any {
	return map[string]any{
		"inline_data": map[string]any{
			"mime_type": mimeType,
			"data":      base64.StdEncoding.EncodeToString(image),
		},
	}
}

// GenerateRecipes asks the model for 6 recipes built from the current
// inventory, prioritizing items that expire within three days. The dietary
// preference is passed through verbatim; enforcing it is the model's job.
func (c *Client) GenerateRecipes(ctx context.Context, items []entities.FoodItem, dietaryPreference string) ([]entities.Recipe, error) {
	if len(items) == 0 {
		return []entities.Recipe{}, nil
	}

	today := c.now()
	ingredients := make([]string, 0, len(items))
	expiring := make([]string, 0)
	for _, item := range items {
		ingredients = append(ingredients, fmt.Sprintf("%s (%s)", item.Name, item.Quantity))
		days := expiry.Classify(today, item.ExpiryDate).UrgencyDays
		if days <= 3 && days >= -1 {
			expiring = append(expiring, item.Name)
		}
	}

	prioritize := "Suggest healthy and delicious recipes."
	if len(expiring) > 0 {
		prioritize = fmt.Sprintf("Please prioritize using these ingredients as they are expiring soon: %s.", strings.Join(expiring, ", "))
	}

	dietary := ""
	if dietaryPreference != "" && dietaryPreference != "none" {
		dietary = fmt.Sprintf("Important: All recipes must be strictly %s.", dietaryPreference)
	}

	prompt := fmt.Sprintf(
		"I have the following ingredients in my pantry: %s.\n%s\n%s\n"+
			"Generate 6 distinct healthy recipes based on these ingredients. "+
			"Ensure variety in cuisine and main ingredients. "+
			"You can assume basic staples like salt, pepper, oil, and water are available.\n"+
			"Respond ONLY with a valid JSON array of 6 recipe objects with exactly these fields: "+
			"'title' (string), 'description' (string), 'prepTime' (string, e.g. '30 mins'), "+
			"'calories' (number, approximate per serving), "+
			"'ingredients' (array of objects with 'name' and 'amount'), "+
			"'instructions' (array of strings), "+
			"'usedIngredients' (array of pantry ingredient names used). "+
			"Do not include any explanations, markdown formatting, or extra text.",
		strings.Join(ingredients, ", "), prioritize, dietary,
	)

	text, err := c.generateContent(ctx, []map[string]any{textPart(prompt)}, 0.7)
	if err != nil {
		return nil, err
	}

	recipes, err := parseRecipes(text, c.now())
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// StorageTip returns one short piece of storage advice for an item. Callers
// treat any failure as silence.
func (c *Client) StorageTip(ctx context.Context, itemName string) (string, error) {
	prompt := fmt.Sprintf(
		"Give one short, practical storage tip for keeping '%s' fresh as long as possible. "+
			"Respond with a single sentence of plain text only, no quotes, no markdown.",
		itemName,
	)

	text, err := c.generateContent(ctx, []map[string]any{textPart(prompt)}, 0.4)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(text), `"`), nil
}

// IdentifyFood extracts a structured item draft from a photo.
func (c *Client) IdentifyFood(ctx context.Context, image []byte, mimeType string) (domain.IdentifiedFood, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := "Analyze this food image and respond ONLY with a valid JSON object containing exactly these fields: " +
		"'name' (string), 'quantity' (string, e.g. '500g' or '3'), " +
		"'category' (one of: Produce, Dairy, Meat, Pantry, Beverage, Other), " +
		"and 'expiryDate' (string in YYYY-MM-DD format, your best estimate). " +
		"Do not include any explanations, markdown formatting, or extra text."

	text, err := c.generateContent(ctx, []map[string]any{textPart(prompt), imagePart(image, mimeType)}, 0.1)
	if err != nil {
		return domain.IdentifiedFood{}, err
	}

	return parseIdentifiedFood(text, c.now())
}

// Chat produces a conversational reply grounded in the current inventory.
func (c *Client) Chat(ctx context.Context, items []entities.FoodItem, message string, history []domain.ChatMessage) (string, error) {
	today := c.now()
	pantry := make([]string, 0, len(items))
	for _, item := range items {
		days := expiry.Classify(today, item.ExpiryDate).UrgencyDays
		pantry = append(pantry, fmt.Sprintf("%s (%s, expires in %d days)", item.Name, item.Quantity, days))
	}

	var transcript strings.Builder
	for _, m := range history {
		speaker := "User"
		if m.Role == "model" {
			speaker = "Chef Bot"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", speaker, m.Text)
	}

	prompt := fmt.Sprintf(
		"You are Chef Bot, a friendly cooking assistant inside a pantry tracker app. "+
			"The user's pantry currently contains: %s.\n"+
			"Conversation so far:\n%s"+
			"User: %s\n"+
			"Reply as Chef Bot in 2-4 short sentences of plain text. Be practical and "+
			"favor ingredients that expire soonest.",
		strings.Join(pantry, ", "), transcript.String(), message,
	)

	text, err := c.generateContent(ctx, []map[string]any{textPart(prompt)}, 0.7)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
