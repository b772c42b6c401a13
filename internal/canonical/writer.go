package canonical

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/solederva/feedsync/internal/platform/models"
)

// Write serializes products into the canonical schema on w, with the xml
// declaration and two-space indentation.
func Write(w io.Writer, products []models.NormalizedProduct) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("can't write xml header: %w", err)
	}

	doc := Document{
		Products: lo.Map(products, func(product models.NormalizedProduct, _ int) Product {
			return fromNormalized(product)
		}),
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("can't encode canonical document: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("can't finish canonical document: %w", err)
	}
	return nil
}

func fromNormalized(product models.NormalizedProduct) Product {
	out := Product{
		Code:        product.Code,
		Name:        product.Name,
		Quantity:    product.Quantity,
		Price:       product.Price,
		Currency:    product.Currency,
		TaxRate:     product.TaxRate,
		Barcode:     product.Barcode,
		Category:    CData{Text: product.Category},
		Description: CData{Text: product.Description},
		Brand:       product.Brand,
		Model:       product.Model,
		Volume:      product.Volume,
		Weight:      product.Weight,
	}
	out.SetImages(product.Images)

	if len(product.Variants) > 0 {
		variants := lo.Map(product.Variants, func(variant models.NormalizedVariant, _ int) Variant {
			return Variant{
				Code:     variant.Code,
				Quantity: variant.Quantity,
				Price:    variant.Price,
				Name1:    variant.ColorLabel,
				Value1:   variant.ColorValue,
				Name2:    variant.SizeLabel,
				Value2:   variant.SizeValue,
				Barcode:  variant.Barcode,
			}
		})
		out.Variants = &Variants{Variants: variants}
	}

	return out
}
