// Package decoder decodes vendor feed XML documents into source products.
package decoder

import (
	"context"
	"encoding/xml"
	"errors"
	"io"

	"github.com/solederva/feedsync/internal/platform/models"
)

// Decoder decodes source feed xml files into products.
type Decoder struct{}

// Decode decodes products from xmlFile and sends each product with its
// decoding error into the output channel. It returns only document-level
// errors; per-product errors travel with their results.
func (d Decoder) Decode(ctx context.Context, xmlFile io.Reader, output chan<- models.ParseResult) error {
	dec := xml.NewDecoder(xmlFile)
	dec.Strict = true

	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local != "Product" {
				continue
			}
			var product Product
			err = dec.DecodeElement(&product, &element)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case output <- models.ParseResult{
				Product: *toAppProduct(&product),
				Error:   err,
			}:
			}
		default:
			continue
		}
	}
}
