// Package catalog is the remote catalog client: payload mapping plus a
// thin http transport.
package catalog

import (
	"strconv"
	"strings"

	"github.com/solederva/feedsync/internal/platform/models"
)

// maxPayloadImages is the remote catalog's image limit per product.
const maxPayloadImages = 10

// Envelope wraps a product payload for the remote API.
type Envelope struct {
	Product ProductPayload `json:"product"`
}

// ProductPayload is the remote representation of a catalog product.
type ProductPayload struct {
	Title       string           `json:"title"`
	BodyHTML    string           `json:"body_html"`
	Vendor      string           `json:"vendor"`
	ProductType string           `json:"product_type"`
	Tags        string           `json:"tags"`
	Variants    []VariantPayload `json:"variants"`
	Images      []ImagePayload   `json:"images"`
	Options     []OptionPayload  `json:"options,omitempty"`
}

// VariantPayload is one purchasable unit in the remote payload.
type VariantPayload struct {
	SKU                 string `json:"sku"`
	Price               string `json:"price"`
	InventoryQuantity   int    `json:"inventory_quantity"`
	InventoryManagement string `json:"inventory_management"`
	Option1             string `json:"option1,omitempty"`
	Option2             string `json:"option2,omitempty"`
	Barcode             string `json:"barcode"`
}

// ImagePayload is one product image in the remote payload.
type ImagePayload struct {
	Src string `json:"src"`
}

// OptionPayload is one variant dimension (e.g. color) with its values.
type OptionPayload struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// BuildPayload maps a catalog product onto the remote API payload. With no
// variants a single synthetic variant carries the product's own price,
// quantity and barcode.
func BuildPayload(product models.CatalogProduct, vendor string) Envelope {
	price := strconv.FormatFloat(product.Price, 'f', -1, 64)

	payload := ProductPayload{
		Title:       product.Title,
		BodyHTML:    product.Description,
		Vendor:      vendor,
		ProductType: product.Category,
		Tags:        joinTags(product.Tags),
		Variants:    buildVariants(product, price),
		Images:      buildImages(product.Images),
		Options:     buildOptions(product.Variants),
	}

	return Envelope{Product: payload}
}

func buildVariants(product models.CatalogProduct, productPrice string) []VariantPayload {
	if len(product.Variants) == 0 {
		return []VariantPayload{{
			SKU:                 product.Code,
			Price:               productPrice,
			InventoryQuantity:   product.Quantity,
			InventoryManagement: "remote",
			Barcode:             product.Barcode,
		}}
	}

	variants := make([]VariantPayload, 0, len(product.Variants))
	for _, variant := range product.Variants {
		price := variant.Price
		if price == "" {
			price = productPrice
		}
		variants = append(variants, VariantPayload{
			SKU:                 variant.Code,
			Price:               price,
			InventoryQuantity:   variant.Quantity,
			InventoryManagement: "remote",
			Option1:             variant.Value1,
			Option2:             variant.Value2,
			Barcode:             variant.Barcode,
		})
	}
	return variants
}

func buildImages(urls []string) []ImagePayload {
	images := make([]ImagePayload, 0, len(urls))
	for _, url := range urls {
		if url == "" {
			continue
		}
		images = append(images, ImagePayload{Src: url})
		if len(images) == maxPayloadImages {
			break
		}
	}
	return images
}

// buildOptions derives the option dimensions from the variant label/value
// pairs, preserving first-seen value order.
func buildOptions(variants []models.CatalogVariant) []OptionPayload {
	if len(variants) == 0 {
		return nil
	}

	var options []OptionPayload
	first := variants[0]
	if first.Name1 != "" {
		options = append(options, OptionPayload{
			Name:   first.Name1,
			Values: distinctValues(variants, func(v models.CatalogVariant) string { return v.Value1 }),
		})
	}
	if first.Name2 != "" {
		options = append(options, OptionPayload{
			Name:   first.Name2,
			Values: distinctValues(variants, func(v models.CatalogVariant) string { return v.Value2 }),
		})
	}
	return options
}

func distinctValues(variants []models.CatalogVariant, value func(models.CatalogVariant) string) []string {
	seen := map[string]struct{}{}
	var values []string
	for _, variant := range variants {
		v := value(variant)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
