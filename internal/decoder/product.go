package decoder

import (
	"strings"

	"github.com/solederva/feedsync/internal/platform/models"
)

// Product is the model for product elements in source feed files.
type Product struct {
	Code         string    `xml:"Product_code"`
	ID           string    `xml:"Product_id"`
	Name         string    `xml:"Name"`
	Stock        string    `xml:"Stock"`
	Price        string    `xml:"Price"`
	CurrencyType string    `xml:"CurrencyType"`
	Tax          string    `xml:"Tax"`
	Barcode      string    `xml:"Barcode"`
	MainCategory string    `xml:"mainCategory"`
	Category     string    `xml:"category"`
	SubCategory  string    `xml:"subCategory"`
	Description  string    `xml:"Description"`
	Brand        string    `xml:"Brand"`
	Weight       string    `xml:"Weight"`
	Image1       string    `xml:"Image1"`
	Image2       string    `xml:"Image2"`
	Image3       string    `xml:"Image3"`
	Image4       string    `xml:"Image4"`
	Image5       string    `xml:"Image5"`
	Variants     []Variant `xml:"variants>variant"`
}

// Variant is the model for variant elements in source feed files.
type Variant struct {
	Specs       []Spec `xml:"spec"`
	Barcode     string `xml:"barcode"`
	ProductCode string `xml:"productCode"`
	VariantID   string `xml:"variantId"`
	Quantity    string `xml:"quantity"`
	Price       string `xml:"price"`
}

// Spec is a named variant attribute, e.g. <spec name="Renk">SYH</spec>.
type Spec struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

func toAppProduct(product *Product) *models.SourceProduct {
	code := strings.TrimSpace(product.Code)
	if code == "" {
		code = strings.TrimSpace(product.ID)
	}

	return &models.SourceProduct{
		Code:         code,
		Name:         strings.TrimSpace(product.Name),
		Stock:        strings.TrimSpace(product.Stock),
		Price:        strings.TrimSpace(product.Price),
		Currency:     strings.TrimSpace(product.CurrencyType),
		TaxRate:      strings.TrimSpace(product.Tax),
		Barcode:      strings.TrimSpace(product.Barcode),
		MainCategory: strings.TrimSpace(product.MainCategory),
		Category:     strings.TrimSpace(product.Category),
		SubCategory:  strings.TrimSpace(product.SubCategory),
		Description:  product.Description,
		Brand:        strings.TrimSpace(product.Brand),
		Weight:       strings.TrimSpace(product.Weight),
		Images:       collectImages(product),
		Variants:     toAppVariants(product.Variants),
	}
}

func collectImages(product *Product) []string {
	var images []string
	for _, image := range []string{product.Image1, product.Image2, product.Image3, product.Image4, product.Image5} {
		if image = strings.TrimSpace(image); image != "" {
			images = append(images, image)
		}
	}
	return images
}

func toAppVariants(variants []Variant) []models.SourceVariant {
	if len(variants) == 0 {
		return nil
	}
	appVariants := make([]models.SourceVariant, 0, len(variants))
	for ix := range variants {
		appVariants = append(appVariants, *toAppVariant(&variants[ix]))
	}
	return appVariants
}

func toAppVariant(variant *Variant) *models.SourceVariant {
	appVariant := models.SourceVariant{
		Barcode:     strings.TrimSpace(variant.Barcode),
		ProductCode: strings.TrimSpace(variant.ProductCode),
		VariantID:   strings.TrimSpace(variant.VariantID),
		Quantity:    strings.TrimSpace(variant.Quantity),
		Price:       strings.TrimSpace(variant.Price),
	}

	for _, spec := range variant.Specs {
		switch spec.Name {
		case "Renk":
			appVariant.Color = strings.TrimSpace(spec.Value)
		case "Beden":
			appVariant.Size = strings.TrimSpace(spec.Value)
		}
	}

	return &appVariant
}
