package canonical

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/solederva/feedsync/internal/barcode"
)

// ReadDocument decodes a whole canonical document.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("can't decode canonical document: %w", err)
	}
	return &doc, nil
}

// WriteDocument serializes doc with the xml declaration and indentation.
func WriteDocument(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("can't write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("can't encode canonical document: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// RepairBarcodes regenerates a synthetic barcode for every product and
// variant in doc, resolving collisions against the set of barcodes already
// assigned within the document. Used by the offline repair tool.
func RepairBarcodes(doc *Document) {
	assigner := barcode.NewUniqueAssigner()
	productGen := barcode.NewGenerator(barcode.DefaultProductPrefix, barcode.DefaultLength)
	variantGen := barcode.NewGenerator(barcode.DefaultVariantPrefix, barcode.DefaultLength)

	for ix := range doc.Products {
		product := &doc.Products[ix]
		product.Barcode = assigner.Assign(
			productGen,
			fmt.Sprintf("%s_%s_%s", product.Code, product.Name, product.Brand),
		)

		if product.Variants == nil {
			continue
		}
		for jx := range product.Variants.Variants {
			variant := &product.Variants.Variants[jx]
			variant.Barcode = assigner.Assign(
				variantGen,
				fmt.Sprintf("%s_%s_%s_%s", product.Code, variant.Code, variant.Value1, variant.Value2),
			)
		}
	}
}
