package entities

import (
	"time"

	"github.com/google/uuid"
)

type seedItem struct {
	name       string
	category   Category
	quantity   string
	expiryDays int
	tip        string
}

var seedItems = []seedItem{
	{"Greek Yogurt", CategoryDairy, "500g", 2, "Keep refrigerated and consume within a week of opening."},
	{"Spinach", CategoryProduce, "1 bag", 3, "Store in the crisper drawer of your refrigerator."},
	{"Chicken Breast", CategoryMeat, "2 fillets", 1, "Refrigerate immediately and cook or freeze within 2 days."},
	{"Brown Rice", CategoryPantry, "1kg", 180, "Store in an airtight container in a cool, dry pantry."},
	{"Avocados", CategoryProduce, "3", 4, "Store at room temperature until ripe, then refrigerate."},
	{"Milk", CategoryDairy, "1L", 5, "Keep refrigerated."},
	{"Eggs", CategoryDairy, "12", 14, "Store in the main body of the refrigerator, not the door."},
	{"Whole Wheat Bread", CategoryPantry, "1 loaf", 7, "Store in a cool, dry place. Can be frozen for longer storage."},
	{"Carrots", CategoryProduce, "1kg", 10, "Remove green tops and store in the refrigerator."},
	{"Pasta", CategoryPantry, "500g", 365, "Store in an airtight container in a cool, dry pantry."},
	{"Apples", CategoryProduce, "6", 14, "Refrigerate to keep them crisp."},
	{"Strawberries", CategoryProduce, "1 box", 2, "Refrigerate and wash only before eating."},
	{"Salmon Fillet", CategoryMeat, "300g", 1, "Keep refrigerated and consume within 2 days."},
	{"Orange Juice", CategoryBeverage, "1L", 10, "Refrigerate after opening."},
	{"Cheddar Cheese", CategoryDairy, "200g", 20, "Wrap tightly and store in the refrigerator."},
	{"Black Beans", CategoryPantry, "2 cans", 365, "Store in a cool, dry pantry."},
	{"Onions", CategoryProduce, "1kg", 30, "Store in a cool, dark, and well-ventilated place."},
	{"Tomatoes", CategoryProduce, "6", 5, "Store at room temperature away from direct sunlight."},
	{"Quinoa", CategoryPantry, "500g", 180, "Store in an airtight container in a cool, dry place."},
	{"Soy Sauce", CategoryPantry, "1 bottle", 365, "Store in a cool, dark place. Refrigerate after opening for best quality."},
	{"Bell Peppers", CategoryProduce, "3", 6, "Store in the refrigerator crisper drawer."},
}

// SeedInventory builds the demo dataset used on first run, when no inventory
// record has been persisted yet. Expiry dates are offsets from now so the
// spread of urgencies (expired soon, fresh, long-life) is stable relative to
// whenever the application is first started.
func SeedInventory(now time.Time) []FoodItem {
	items := make([]FoodItem, 0, len(seedItems))
	for _, s := range seedItems {
		items = append(items, FoodItem{
			ID:         uuid.New(),
			Name:       s.name,
			Category:   s.category,
			Quantity:   s.quantity,
			ExpiryDate: now.AddDate(0, 0, s.expiryDays),
			AddedDate:  now,
			StorageTip: s.tip,
		})
	}
	return items
}
