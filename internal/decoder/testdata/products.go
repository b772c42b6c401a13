// Package testdata holds the expected decoding results of feed.xml.
package testdata

import "github.com/solederva/feedsync/internal/platform/models"

var Products = []models.SourceProduct{
	{
		Code:         "MN123",
		Name:         "Deri Bot",
		Stock:        "8",
		Price:        "459.90",
		Currency:     "TRY",
		TaxRate:      "10",
		Barcode:      "8680001111111",
		MainCategory: "Ayakkabı",
		Category:     "Bot",
		Description:  "<p>Klasik deri bot.</p>",
		Brand:        "solederva",
		Weight:       "0,8",
		Images: []string{
			"https://cdn.example.com/mn123-1.jpg",
			"https://cdn.example.com/mn123-2.jpg",
		},
		Variants: []models.SourceVariant{
			{
				Color:    "SYH",
				Size:     "40",
				Barcode:  "8680002222222",
				Quantity: "5",
				Price:    "459.90",
			},
			{
				Color:       "BYZ",
				Size:        "41",
				ProductCode: "MN123-2",
				Quantity:    "3",
			},
		},
	},
	{
		Code:         "99001",
		Name:         "Süet Sneaker",
		Stock:        "4",
		Price:        "299.00",
		Currency:     "TL",
		TaxRate:      "10",
		MainCategory: "Ayakkabı",
		Category:     "Sneaker",
		Description:  "Rahat süet sneaker.",
	},
}
