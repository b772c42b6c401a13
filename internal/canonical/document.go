// Package canonical reads and writes the canonical product XML schema
// consumed by the downstream bulk-import tool and the sync controller.
package canonical

import "encoding/xml"

// Document is the root of a canonical catalog file.
type Document struct {
	XMLName  xml.Name  `xml:"Products"`
	Products []Product `xml:"Product"`
}

// CData is an element whose text is emitted as a CDATA section. The
// encoder splits any literal "]]>" across two sections, so HTML content
// round-trips byte-for-byte.
type CData struct {
	Text string `xml:",cdata"`
}

// Product is a canonical-schema product element. Field order is fixed.
type Product struct {
	Code        string    `xml:"ProductCode"`
	Name        string    `xml:"ProductName"`
	Quantity    string    `xml:"Quantity"`
	Price       string    `xml:"Price"`
	Currency    string    `xml:"Currency"`
	TaxRate     string    `xml:"TaxRate"`
	Barcode     string    `xml:"Barcode"`
	Category    CData     `xml:"Category"`
	Description CData     `xml:"Description"`
	Image1      string    `xml:"Image1,omitempty"`
	Image2      string    `xml:"Image2,omitempty"`
	Image3      string    `xml:"Image3,omitempty"`
	Image4      string    `xml:"Image4,omitempty"`
	Image5      string    `xml:"Image5,omitempty"`
	Brand       string    `xml:"Brand,omitempty"`
	Model       string    `xml:"Model"`
	Volume      string    `xml:"Volume"`
	Weight      string    `xml:"Weight,omitempty"`
	Variants    *Variants `xml:"Variants,omitempty"`
}

// Variants is the optional variant block of a product.
type Variants struct {
	Variants []Variant `xml:"Variant"`
}

// Variant is a canonical-schema variant element.
type Variant struct {
	Code     string `xml:"VariantCode"`
	Quantity string `xml:"VariantQuantity"`
	Price    string `xml:"VariantPrice"`
	Name1    string `xml:"VariantName1"`
	Value1   string `xml:"VariantValue1"`
	Name2    string `xml:"VariantName2"`
	Value2   string `xml:"VariantValue2"`
	Barcode  string `xml:"Barcode,omitempty"`
}

// Images returns the non-empty image fields in order.
func (p *Product) Images() []string {
	var images []string
	for _, image := range []string{p.Image1, p.Image2, p.Image3, p.Image4, p.Image5} {
		if image != "" {
			images = append(images, image)
		}
	}
	return images
}

// SetImages fills the image fields from urls, capped at five.
func (p *Product) SetImages(urls []string) {
	fields := []*string{&p.Image1, &p.Image2, &p.Image3, &p.Image4, &p.Image5}
	for ix, url := range urls {
		if ix == len(fields) {
			break
		}
		*fields[ix] = url
	}
}
