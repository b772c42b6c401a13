// Package converter turns source feed products into canonical normalized
// records: field cleanup, variant resolution and barcode assignment.
package converter

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/solederva/feedsync/internal/barcode"
	"github.com/solederva/feedsync/internal/normalize"
	"github.com/solederva/feedsync/internal/platform/models"
)

// ErrMissingCode is returned for source products without a product code.
var ErrMissingCode = errors.New("source product has no code")

// Default normalization settings.
const (
	DefaultCodePrefixFrom = "MN"
	DefaultCodePrefixTo   = "SD"
	DefaultBrand          = "solederva"
)

// Options configures a Converter. The zero value uses the defaults above,
// the keep strategy and no variant emission.
type Options struct {
	// VariantMode emits normalized variants and rolls their quantities up
	// into the product quantity.
	VariantMode bool

	Strategy        barcode.Strategy
	Suffix          barcode.SuffixPolicy
	SyntheticPrefix string
	SyntheticLength int

	CodePrefixFrom string
	CodePrefixTo   string

	// BrandOverride wins over the source brand; DefaultBrand is the
	// fallback when the source brand is empty.
	BrandOverride string
	DefaultBrand  string

	TitleTemplate string
	BannedTerms   []normalize.Replacement

	// Bullets prepends a generated feature-bullet block to descriptions.
	Bullets bool
}

// Converter normalizes source products into canonical records.
type Converter struct {
	opts       Options
	terms      *normalize.TermFilter
	productGen barcode.Generator
	variantGen barcode.Generator
}

// New returns a Converter for the provided options.
func New(opts Options) *Converter {
	if opts.Strategy == "" {
		opts.Strategy = barcode.StrategyKeep
	}
	if opts.CodePrefixFrom == "" {
		opts.CodePrefixFrom = DefaultCodePrefixFrom
		opts.CodePrefixTo = DefaultCodePrefixTo
	}
	if opts.DefaultBrand == "" {
		opts.DefaultBrand = DefaultBrand
	}
	if opts.SyntheticPrefix == "" {
		opts.SyntheticPrefix = barcode.DefaultProductPrefix
	}
	if opts.SyntheticLength == 0 {
		opts.SyntheticLength = barcode.DefaultLength
	}

	return &Converter{
		opts:       opts,
		terms:      normalize.NewTermFilter(opts.BannedTerms),
		productGen: barcode.NewGenerator(opts.SyntheticPrefix, opts.SyntheticLength),
		variantGen: barcode.NewGenerator(barcode.DefaultVariantPrefix, opts.SyntheticLength),
	}
}

// Convert returns the canonical record for one source product.
// Products without a code are rejected with ErrMissingCode.
func (c *Converter) Convert(src models.SourceProduct) (models.NormalizedProduct, error) {
	code := normalize.CodePrefix(src.Code, c.opts.CodePrefixFrom, c.opts.CodePrefixTo)
	if code == "" {
		return models.NormalizedProduct{}, ErrMissingCode
	}

	brand := c.resolveBrand(src.Brand)

	// Banned terms are cleansed before any other name or description
	// transform, so templating and bullets see clean text.
	name := c.terms.Apply(strings.TrimSpace(src.Name))
	name = normalize.TitleTemplate(name, c.opts.TitleTemplate, brand)

	description := c.terms.Apply(src.Description)
	if c.opts.Bullets {
		description = normalize.PrependBullets(description, normalize.FeatureBullets(name, description))
	}

	var variants []models.NormalizedVariant
	if c.opts.VariantMode && len(src.Variants) > 0 {
		variants = c.resolveVariants(code, strings.TrimSpace(src.Price), src.Variants)
	}

	quantity := strings.TrimSpace(src.Stock)
	if len(variants) > 0 {
		quantity = rollUpQuantity(variants)
	} else if quantity == "" {
		quantity = "0"
	}

	return models.NormalizedProduct{
		Code:        code,
		Name:        name,
		Quantity:    quantity,
		Price:       strings.TrimSpace(src.Price),
		Currency:    normalize.Currency(src.Currency),
		TaxRate:     strings.TrimSpace(src.TaxRate),
		Barcode:     c.productBarcode(code, name, brand, src),
		Category:    CategoryPath(src.MainCategory, src.Category, src.SubCategory),
		Description: description,
		Brand:       brand,
		Weight:      normalize.Weight(src.Weight),
		Images:      sanitizeImages(src.Images),
		Variants:    variants,
	}, nil
}

// CategoryPath joins up to three hierarchy levels with " > ", dropping
// empty levels and preserving order.
func CategoryPath(levels ...string) string {
	parts := lo.FilterMap(levels, func(level string, _ int) (string, bool) {
		level = strings.TrimSpace(level)
		return level, level != ""
	})
	return strings.Join(parts, " > ")
}

func (c *Converter) resolveBrand(sourceBrand string) string {
	if c.opts.BrandOverride != "" {
		return c.opts.BrandOverride
	}
	if brand := strings.TrimSpace(sourceBrand); brand != "" {
		return brand
	}
	return c.opts.DefaultBrand
}

// productBarcode resolves the product-level barcode per the active
// strategy. With the keep strategy an empty source barcode falls back to
// the first non-empty raw variant barcode in source order.
func (c *Converter) productBarcode(code, name, brand string, src models.SourceProduct) string {
	switch c.opts.Strategy {
	case barcode.StrategyBlank:
		return ""
	case barcode.StrategySynthetic:
		return c.productGen.Generate(code + "_" + name + "_" + brand)
	default:
		kept := strings.TrimSpace(src.Barcode)
		if kept == "" {
			for _, variant := range src.Variants {
				if raw := strings.TrimSpace(variant.RawBarcode()); raw != "" {
					kept = raw
					break
				}
			}
		}
		return c.opts.Suffix.Apply(kept)
	}
}

func sanitizeImages(urls []string) []string {
	images := make([]string, 0, len(urls))
	for _, url := range urls {
		if sanitized := normalize.ImageURL(url); sanitized != "" {
			images = append(images, sanitized)
		}
		if len(images) == 5 {
			break
		}
	}
	if len(images) == 0 {
		return nil
	}
	return images
}
