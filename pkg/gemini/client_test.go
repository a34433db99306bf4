package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func candidateResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: server.URL,
	}, nil)
	client.now = fixedNow
	return client
}

func pantry() []entities.FoodItem {
	now := fixedNow()
	return []entities.FoodItem{
		{ID: uuid.New(), Name: "Spinach", Quantity: "1 bag", Category: entities.CategoryProduce, ExpiryDate: now.AddDate(0, 0, 2)},
		{ID: uuid.New(), Name: "Rice", Quantity: "1kg", Category: entities.CategoryPantry, ExpiryDate: now.AddDate(0, 0, 180)},
	}
}

func TestGenerateRecipes(t *testing.T) {
	recipesJSON := `[{"title":"Spinach Rice","description":"A bowl","prepTime":"20 mins","calories":420,` +
		`"ingredients":[{"name":"Spinach","amount":"1 bag"}],"instructions":["Cook."],"usedIngredients":["Spinach","Rice"]}]`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse("```json\n" + recipesJSON + "\n```")))
	})

	recipes, err := client.GenerateRecipes(context.Background(), pantry(), "vegetarian")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Spinach Rice", recipes[0].Title)
	assert.Equal(t, 420, recipes[0].Calories)
	assert.Equal(t, []string{"Spinach", "Rice"}, recipes[0].UsedIngredients)
	assert.Contains(t, recipes[0].ID, "recipe-")
}

func TestGenerateRecipesEmptyInventorySkipsCall(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	recipes, err := client.GenerateRecipes(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.False(t, called)
}

func TestGenerateRecipesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.GenerateRecipes(context.Background(), pantry(), "")
	assert.Error(t, err)
}

func TestGenerateRecipesUnparseableResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse("Sorry, I cannot help with that.")))
	})

	_, err := client.GenerateRecipes(context.Background(), pantry(), "")
	assert.ErrorIs(t, err, domain.ErrGeminiAPIFailed)
}

func TestStorageTip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse("\"Keep refrigerated.\"\n")))
	})

	tip, err := client.StorageTip(context.Background(), "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Keep refrigerated.", tip)
}

func TestChat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse("  Use the spinach first!  ")))
	})

	reply, err := client.Chat(context.Background(), pantry(), "what should I cook?", []domain.ChatMessage{
		{Role: "user", Text: "hi"},
		{Role: "model", Text: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Use the spinach first!", reply)
}

func TestParseRecipesCleanup(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLen int
		wantErr bool
	}{
		{
			name:    "bare array",
			text:    `[{"title":"A"},{"title":"B"}]`,
			wantLen: 2,
		},
		{
			name:    "fenced array",
			text:    "```json\n[{\"title\":\"A\"}]\n```",
			wantLen: 1,
		},
		{
			name:    "chatter around the array",
			text:    "Here you go:\n[{\"title\":\"A\"}]\nEnjoy!",
			wantLen: 1,
		},
		{
			name:    "no array at all",
			text:    "I could not generate recipes.",
			wantErr: true,
		},
		{
			name:    "empty array",
			text:    "[]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := parseRecipes(tt.text, fixedNow())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrGeminiAPIFailed)
				return
			}
			require.NoError(t, err)
			assert.Len(t, recipes, tt.wantLen)
		})
	}
}

func TestParseRecipesAssignsDistinctIDs(t *testing.T) {
	recipes, err := parseRecipes(`[{"title":"A"},{"title":"B"}]`, fixedNow())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.NotEqual(t, recipes[0].ID, recipes[1].ID)
}

func TestParseIdentifiedFood(t *testing.T) {
	now := fixedNow()

	tests := []struct {
		name    string
		text    string
		want    domain.IdentifiedFood
		wantErr bool
	}{
		{
			name: "well formed",
			text: `{"name":"Banana","quantity":"6","category":"Produce","expiryDate":"2026-03-14"}`,
			want: domain.IdentifiedFood{Name: "Banana", Quantity: "6", Category: "Produce", ExpiryDate: "2026-03-14"},
		},
		{
			name: "unknown category falls back to Other",
			text: `{"name":"Mystery","quantity":"1","category":"Frozen","expiryDate":"2026-03-14"}`,
			want: domain.IdentifiedFood{Name: "Mystery", Quantity: "1", Category: "Other", ExpiryDate: "2026-03-14"},
		},
		{
			name: "bad date gets a week-out default",
			text: `{"name":"Banana","quantity":"6","category":"Produce","expiryDate":"soon"}`,
			want: domain.IdentifiedFood{Name: "Banana", Quantity: "6", Category: "Produce", ExpiryDate: "2026-03-17"},
		},
		{
			name: "missing quantity defaults to one",
			text: `{"name":"Banana","category":"Produce","expiryDate":"2026-03-14"}`,
			want: domain.IdentifiedFood{Name: "Banana", Quantity: "1", Category: "Produce", ExpiryDate: "2026-03-14"},
		},
		{
			name:    "missing name is a failure",
			text:    `{"quantity":"6","category":"Produce","expiryDate":"2026-03-14"}`,
			wantErr: true,
		},
		{
			name:    "no object in response",
			text:    "It looks like a banana.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIdentifiedFood(tt.text, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrIdentifyFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
