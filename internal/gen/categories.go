package gen

import "datagen-service/internal/models"

// The category enumeration is fixed and flat. Names double as dispatch keys
// for the catalog projector, so they must stay stable.
var staticCategories = []models.Category{
	{CategoryID: 1, CategoryName: "electronics", Description: "Electronic gadgets and accessories"},
	{CategoryID: 2, CategoryName: "fashion", Description: "Clothing, shoes, and accessories"},
	{CategoryID: 3, CategoryName: "home_decor", Description: "Home decoration items"},
	{CategoryID: 4, CategoryName: "books", Description: "Books and publications"},
	{CategoryID: 5, CategoryName: "sports", Description: "Sporting goods and equipment"},
	{CategoryID: 6, CategoryName: "toys", Description: "Toys and games"},
}

// StaticCategories returns the first n categories of the fixed set, or the
// whole set when n is zero or out of range. Drawing nothing from the value
// stream keeps category identity independent of the seed.
func StaticCategories(n int) []models.Category {
	cats := make([]models.Category, len(staticCategories))
	copy(cats, staticCategories)
	if n > 0 && n < len(cats) {
		cats = cats[:n]
	}
	return cats
}

// CategoryNameByID builds the id -> name lookup used by the document and
// graph projectors.
func CategoryNameByID(cats []models.Category) map[int64]string {
	names := make(map[int64]string, len(cats))
	for _, c := range cats {
		names[c.CategoryID] = c.CategoryName
	}
	return names
}
