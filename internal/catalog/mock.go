package catalog

import (
	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Categories offered by the built-in catalogue.
const (
	CategoryAll         = "All"
	CategoryClothing    = "Clothing"
	CategoryFootwear    = "Footwear"
	CategoryAccessories = "Accessories"
)

const unsplash = "https://images.unsplash.com/"

// MockProducts returns a fresh copy of the built-in demo catalogue.
func MockProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Casual Shirt",
			Description: "Comfortable cotton shirt for casual occasions",
			Price:       decimal.RequireFromString("29.99"),
			ImageURL:    unsplash + "photo-1581655353564-df123a1eb820",
			Category:    CategoryClothing,
			Tags:        []string{"shirt", "casual", "cotton"},
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Formal Blazer",
			Description: "Elegant blazer for formal events",
			Price:       decimal.RequireFromString("89.99"),
			ImageURL:    unsplash + "photo-1555069519-127aadedf1ee",
			Category:    CategoryClothing,
			Tags:        []string{"formal", "blazer", "elegant"},
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Sneakers",
			Description: "Comfortable sneakers for daily use",
			Price:       decimal.RequireFromString("59.99"),
			ImageURL:    unsplash + "photo-1600185365926-3a2ce3cdb9eb",
			Category:    CategoryFootwear,
			Tags:        []string{"shoes", "sneakers", "comfortable"},
			InStock:     true,
			Discount:    15,
		},
		{
			ID:          "4",
			Name:        "Dress Shoes",
			Description: "Classic black dress shoes for formal occasions",
			Price:       decimal.RequireFromString("79.99"),
			ImageURL:    unsplash + "photo-1543163521-1bf539c55dd2",
			Category:    CategoryFootwear,
			Tags:        []string{"shoes", "formal", "dress"},
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Summer Dress",
			Description: "Light and comfortable dress for summer days",
			Price:       decimal.RequireFromString("39.99"),
			ImageURL:    unsplash + "photo-1612336307429-8a898d10e223",
			Category:    CategoryClothing,
			Tags:        []string{"dress", "summer", "casual"},
			InStock:     true,
			Discount:    10,
		},
		{
			ID:          "6",
			Name:        "Denim Jeans",
			Description: "Classic blue denim jeans, perfect fit",
			Price:       decimal.RequireFromString("49.99"),
			ImageURL:    unsplash + "photo-1602293589930-45aad59ba3ab",
			Category:    CategoryClothing,
			Tags:        []string{"jeans", "denim", "casual"},
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "Watch",
			Description: "Elegant wristwatch with leather strap",
			Price:       decimal.RequireFromString("129.99"),
			ImageURL:    unsplash + "photo-1524805444758-089113d48a6d",
			Category:    CategoryAccessories,
			Tags:        []string{"watch", "accessories", "elegant"},
			InStock:     false,
		},
		{
			ID:          "8",
			Name:        "Leather Bag",
			Description: "Handcrafted leather bag for everyday use",
			Price:       decimal.RequireFromString("149.99"),
			ImageURL:    unsplash + "photo-1590874103328-eac38a683ce7",
			Category:    CategoryAccessories,
			Tags:        []string{"bag", "leather", "handcrafted"},
			InStock:     true,
			Discount:    20,
		},
	}
}
