package gen

import (
	"fmt"

	"datagen-service/internal/models"
)

var (
	colors = []string{
		"black", "white", "blue", "red", "aqua-blue", "coral", "green",
		"grey", "pink", "terracotta",
	}
	sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

	connectivityOptions = []string{"Bluetooth 5.0", "Bluetooth 5.2", "Wired", "USB-C", "Wi-Fi"}
	fashionMaterials    = []string{"cotton", "cotton blend", "polyester", "silk", "linen", "denim", "wool"}
	fashionCare         = []string{"Machine wash cold", "Hand wash only", "Dry clean only"}
	fashionStyles       = []string{"casual", "formal", "summer dress", "sportswear", "streetwear"}
	fashionPatterns     = []string{"solid", "striped", "floral", "checkered", "abstract"}
	decorMaterials      = []string{"ceramic", "glass", "wood", "metal", "fabric"}
	decorCare           = []string{"Hand wash only", "Wipe with damp cloth", "Do not submerge"}
	genericMaterials    = []string{"plastic", "metal", "wood", "composite"}
)

// categorySchema is one branch of the category-conditional projection: a SKU
// prefix plus the attribute and variant builders for that category. The
// mapping from category name to schema is the entire dispatch mechanism;
// there is no inheritance.
type categorySchema struct {
	skuPrefix  string
	attributes func(src *Source) map[string]interface{}
	variants   func(src *Source, productID int64) []models.Variant
}

var electronicsSchema = categorySchema{
	skuPrefix: "EL",
	attributes: func(src *Source) map[string]interface{} {
		return map[string]interface{}{
			"battery_life":       fmt.Sprintf("%d hours", src.IntBetween(4, 50)),
			"connectivity":       Choice(src, connectivityOptions),
			"weight":             fmt.Sprintf("%dg", src.IntBetween(50, 800)),
			"noise_cancellation": src.Bool(0.5),
		}
	},
	variants: func(src *Source, productID int64) []models.Variant {
		return colorVariants(src, "EL", productID, src.IntBetween(1, 3))
	},
}

var fashionSchema = categorySchema{
	skuPrefix: "FA",
	attributes: func(src *Source) map[string]interface{} {
		return map[string]interface{}{
			"material":          Choice(src, fashionMaterials),
			"care_instructions": Choice(src, fashionCare),
			"style":             Choice(src, fashionStyles),
			"pattern":           Choice(src, fashionPatterns),
		}
	},
	variants: fashionVariants,
}

var homeDecorSchema = categorySchema{
	skuPrefix: "HD",
	attributes: func(src *Source) map[string]interface{} {
		return map[string]interface{}{
			"dimensions": map[string]interface{}{
				"height": fmt.Sprintf("%dcm", src.IntBetween(10, 60)),
				"width":  fmt.Sprintf("%dcm", src.IntBetween(5, 40)),
			},
			"material":          Choice(src, decorMaterials),
			"weight":            fmt.Sprintf("%.1fkg", src.FloatBetween(0.2, 5.0)),
			"care_instructions": Choice(src, decorCare),
		}
	},
	variants: func(src *Source, productID int64) []models.Variant {
		return colorVariants(src, "HD", productID, src.IntBetween(1, 3))
	},
}

// genericSchema is the fallback for every category without a dedicated shape
// (books, sports, toys).
var genericSchema = categorySchema{
	skuPrefix: "GN",
	attributes: func(src *Source) map[string]interface{} {
		return map[string]interface{}{
			"weight":   fmt.Sprintf("%dg", src.IntBetween(100, 2000)),
			"material": Choice(src, genericMaterials),
		}
	},
	variants: func(src *Source, productID int64) []models.Variant {
		n := src.IntBetween(1, 2)
		variants := make([]models.Variant, 0, n)
		for j := 0; j < n; j++ {
			variants = append(variants, models.Variant{
				SKU: fmt.Sprintf("GN-%d-%d", productID, j),
			})
		}
		return variants
	},
}

// schemaFor selects the attribute/variant schema for a category name.
func schemaFor(category string) categorySchema {
	switch category {
	case "electronics":
		return electronicsSchema
	case "fashion":
		return fashionSchema
	case "home_decor":
		return homeDecorSchema
	default:
		return genericSchema
	}
}

// AttributeKeys returns the exact attribute key set produced for a category.
// Exposed for consumers that validate document shape.
func AttributeKeys(category string) []string {
	switch category {
	case "electronics":
		return []string{"battery_life", "connectivity", "weight", "noise_cancellation"}
	case "fashion":
		return []string{"material", "care_instructions", "style", "pattern"}
	case "home_decor":
		return []string{"dimensions", "material", "weight", "care_instructions"}
	default:
		return []string{"weight", "material"}
	}
}

func colorVariants(src *Source, prefix string, productID int64, n int) []models.Variant {
	variants := make([]models.Variant, 0, n)
	for j := 0; j < n; j++ {
		variants = append(variants, models.Variant{
			Color: Choice(src, colors),
			SKU:   fmt.Sprintf("%s-%d-%d", prefix, productID, j),
		})
	}
	return variants
}

// fashionVariants builds the combinatorial (size, color) list: one variant
// per pair over a sample of 2-5 sizes and, per size, 1-3 colors. The SKU
// encodes prefix, product id, size, and the first three letters of the color.
func fashionVariants(src *Source, productID int64) []models.Variant {
	sampledSizes, err := SampleWithoutReplacement(src, sizes, src.IntBetween(2, 5))
	if err != nil {
		panic(err) // static tables make this unreachable
	}
	var variants []models.Variant
	for _, size := range sampledSizes {
		sampledColors, err := SampleWithoutReplacement(src, colors, src.IntBetween(1, 3))
		if err != nil {
			panic(err)
		}
		for _, color := range sampledColors {
			variants = append(variants, models.Variant{
				Size:  size,
				Color: color,
				SKU:   fmt.Sprintf("FA-%d-%s-%s", productID, size, color[:3]),
			})
		}
	}
	return variants
}

// BuildCatalog projects every product into its category-conditional catalog
// document. Documents are emitted in product order, 1:1 with the relational
// products, and never diverge from them on id or category.
func BuildCatalog(src *Source, products []models.Product, cats []models.Category) []models.CatalogDocument {
	names := CategoryNameByID(cats)
	docs := make([]models.CatalogDocument, 0, len(products))
	for _, p := range products {
		category := names[p.CategoryID]
		schema := schemaFor(category)

		tagCount := src.IntBetween(1, 4)
		tags := make([]string, tagCount)
		for i := range tags {
			tags[i] = src.Word()
		}

		docs = append(docs, models.CatalogDocument{
			ProductID:  p.ProductID,
			Category:   category,
			Attributes: schema.attributes(src),
			Variants:   schema.variants(src, p.ProductID),
			Tags:       tags,
		})
	}
	return docs
}
