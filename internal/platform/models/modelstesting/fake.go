package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/solederva/feedsync/internal/platform/models"
)

// FakeCatalogProduct returns models.CatalogProduct with fake data and a random number of fake variants.
func FakeCatalogProduct(ops ...func(p *models.CatalogProduct)) models.CatalogProduct {
	product := models.CatalogProduct{
		Code:        faker.Word(),
		Title:       faker.Sentence(),
		Price:       float64(rand.Intn(10000)) / 100,
		Quantity:    rand.Intn(100),
		Currency:    "TL",
		Description: faker.Paragraph(),
		Category:    faker.Word(),
		Barcode:     faker.CCNumber(),
		Images:      fakeImages(),
		Tags:        []string{faker.Word()},
		Variants:    fakeCatalogVariants(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeCatalogVariant returns models.CatalogVariant with fake data.
func FakeCatalogVariant(ops ...func(v *models.CatalogVariant)) models.CatalogVariant {
	variant := models.CatalogVariant{
		Code:     faker.Word(),
		Quantity: rand.Intn(50),
		Price:    fmt.Sprintf("%d", rand.Intn(1000)),
		Name1:    "Renk",
		Value1:   faker.Word(),
		Name2:    "Beden",
		Value2:   fmt.Sprintf("%d", 36+rand.Intn(10)),
		Barcode:  faker.CCNumber(),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}

// FakeSourceProduct returns models.SourceProduct with fake data.
func FakeSourceProduct(ops ...func(p *models.SourceProduct)) models.SourceProduct {
	product := models.SourceProduct{
		Code:         faker.Word(),
		Name:         faker.Sentence(),
		Stock:        fmt.Sprintf("%d", rand.Intn(100)),
		Price:        fmt.Sprintf("%d.00", rand.Intn(1000)),
		Currency:     "TRL",
		TaxRate:      "10",
		Barcode:      faker.CCNumber(),
		MainCategory: faker.Word(),
		Category:     faker.Word(),
		SubCategory:  faker.Word(),
		Description:  faker.Paragraph(),
		Brand:        faker.Word(),
		Weight:       "1",
		Images:       fakeImages(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

func fakeImages() []string {
	imagesLen := rand.Intn(5)
	images := make([]string, 0, imagesLen)
	for i := 0; i < imagesLen; i++ {
		images = append(images, faker.URL())
	}

	return images
}

func fakeCatalogVariants() []models.CatalogVariant {
	variantsLen := rand.Intn(4)
	variants := make([]models.CatalogVariant, 0, variantsLen)
	for i := 0; i < variantsLen; i++ {
		variants = append(variants, FakeCatalogVariant())
	}

	return variants
}
