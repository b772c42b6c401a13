package canonical

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/models"
)

// ReadCatalog parses a canonical-schema document into the catalog view
// used for syncing. Products missing a code or title are dropped with a
// logged warning; parsing continues for the remaining products.
func ReadCatalog(r io.Reader, logger *zerolog.Logger) ([]models.CatalogProduct, error) {
	dec := xml.NewDecoder(r)

	var products []models.CatalogProduct
	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return products, nil
			}
			return products, fmt.Errorf("can't read canonical document: %w", err)
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "Product" {
			continue
		}

		var product Product
		if err := dec.DecodeElement(&product, &element); err != nil {
			return products, fmt.Errorf("can't decode product element: %w", err)
		}

		catalogProduct, ok := toCatalogProduct(&product, logger)
		if !ok {
			continue
		}
		products = append(products, catalogProduct)
	}
}

func toCatalogProduct(product *Product, logger *zerolog.Logger) (models.CatalogProduct, bool) {
	code := strings.TrimSpace(product.Code)
	title := strings.TrimSpace(product.Name)
	if code == "" || title == "" {
		logger.Warn().
			Str("productCode", code).
			Msg("skipping product with missing code or title")
		return models.CatalogProduct{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(product.Price), 64)
	if err != nil {
		price = 0
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(product.Quantity))
	if err != nil {
		quantity = 0
	}

	currency := strings.TrimSpace(product.Currency)
	if currency == "" {
		currency = "TL"
	}

	category := product.Category.Text
	out := models.CatalogProduct{
		Code:        code,
		Title:       title,
		Price:       price,
		Quantity:    quantity,
		Currency:    currency,
		Description: product.Description.Text,
		Category:    category,
		Barcode:     strings.TrimSpace(product.Barcode),
		Images:      product.Images(),
		Tags:        categoryTags(category),
	}

	if product.Variants != nil {
		for _, variant := range product.Variants.Variants {
			variantQuantity, err := strconv.Atoi(strings.TrimSpace(variant.Quantity))
			if err != nil {
				variantQuantity = 0
			}
			out.Variants = append(out.Variants, models.CatalogVariant{
				Code:     strings.TrimSpace(variant.Code),
				Quantity: variantQuantity,
				Price:    strings.TrimSpace(variant.Price),
				Name1:    variant.Name1,
				Value1:   variant.Value1,
				Name2:    variant.Name2,
				Value2:   variant.Value2,
				Barcode:  strings.TrimSpace(variant.Barcode),
			})
		}
	}

	return out, true
}

// categoryTags derives tags from a " > "-joined category path.
func categoryTags(category string) []string {
	if category == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(category, ">") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
