package entities

type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Recipe is produced by the generation collaborator; the application never
// synthesizes recipe content itself. The ID is assigned per generation batch
// and is the identity used for save/unsave toggling.
type Recipe struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Ingredients     []RecipeIngredient `json:"ingredients"`
	Instructions    []string           `json:"instructions"`
	PrepTime        string             `json:"prep_time"`
	Calories        int                `json:"calories"`
	UsedIngredients []string           `json:"used_ingredients,omitempty"`
}
