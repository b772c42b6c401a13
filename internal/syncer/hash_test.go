package syncer_test

import (
	"testing"

	"github.com/solederva/feedsync/internal/platform/models"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/stretchr/testify/assert"
)

func hashProduct() models.CatalogProduct {
	return models.CatalogProduct{
		Code:        "SD123",
		Title:       "Deri Bot",
		Price:       459.90,
		Quantity:    8,
		Category:    "Ayakkabı > Bot",
		Description: "<p>Klasik bot.</p>",
		Images:      []string{"https://cdn.example.com/1.jpg"},
		Variants: []models.CatalogVariant{
			{Code: "SD123-SIYAH-40", Price: "459.90", Quantity: 5},
			{Code: "SD123-BEYAZ-41", Price: "459.90", Quantity: 3},
		},
	}
}

func TestUnitContentHashStable(t *testing.T) {
	product := hashProduct()
	other := hashProduct()

	assert.Equal(t, syncer.ContentHash(&product), syncer.ContentHash(&other),
		"equal products should hash equally")
}

func TestUnitContentHashChanges(t *testing.T) {
	tests := map[string]func(p *models.CatalogProduct){
		"price":            func(p *models.CatalogProduct) { p.Price = 499.90 },
		"quantity":         func(p *models.CatalogProduct) { p.Quantity = 7 },
		"variant quantity": func(p *models.CatalogProduct) { p.Variants[0].Quantity = 4 },
		"variant price":    func(p *models.CatalogProduct) { p.Variants[1].Price = "999" },
		"variant code":     func(p *models.CatalogProduct) { p.Variants[0].Code = "SD123-SIYAH-42" },
		"variant order": func(p *models.CatalogProduct) {
			p.Variants[0], p.Variants[1] = p.Variants[1], p.Variants[0]
		},
		"variant removed": func(p *models.CatalogProduct) { p.Variants = p.Variants[:1] },
	}

	base := hashProduct()
	baseHash := syncer.ContentHash(&base)

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			product := hashProduct()
			mutate(&product)

			assert.NotEqual(t, baseHash, syncer.ContentHash(&product),
				"changing the %s should change the hash", name)
		})
	}
}

func TestUnitContentHashIgnoresCosmetics(t *testing.T) {
	tests := map[string]func(p *models.CatalogProduct){
		"title":       func(p *models.CatalogProduct) { p.Title = "Yeni Bot" },
		"category":    func(p *models.CatalogProduct) { p.Category = "Ayakkabı > Sneaker" },
		"description": func(p *models.CatalogProduct) { p.Description = "<p>Güncellendi.</p>" },
		"images":      func(p *models.CatalogProduct) { p.Images = append(p.Images, "https://cdn.example.com/2.jpg") },
		"barcode":     func(p *models.CatalogProduct) { p.Barcode = "8680009999999" },
	}

	base := hashProduct()
	baseHash := syncer.ContentHash(&base)

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			product := hashProduct()
			mutate(&product)

			assert.Equal(t, baseHash, syncer.ContentHash(&product),
				"changing the %s should not change the hash", name)
		})
	}
}
