package entities

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryProduce  Category = "Produce"
	CategoryDairy    Category = "Dairy"
	CategoryMeat     Category = "Meat"
	CategoryPantry   Category = "Pantry"
	CategoryBeverage Category = "Beverage"
	CategoryOther    Category = "Other"
)

// CategoryAll is the wildcard used by inventory queries, not a storable category.
const CategoryAll = "All"

func Categories() []Category {
	return []Category{
		CategoryProduce,
		CategoryDairy,
		CategoryMeat,
		CategoryPantry,
		CategoryBeverage,
		CategoryOther,
	}
}

func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if Category(c) == known {
			return true
		}
	}
	return false
}

// FoodItem is a single pantry entry. Quantity is a free-form descriptive
// string ("500g", "2 fillets"); no unit parsing happens anywhere.
// StorageTip is filled asynchronously and may stay empty.
type FoodItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   Category  `json:"category"`
	Quantity   string    `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	AddedDate  time.Time `json:"added_date"`
	StorageTip string    `json:"storage_tip,omitempty"`
}
