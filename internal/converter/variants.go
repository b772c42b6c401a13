package converter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/solederva/feedsync/internal/barcode"
	"github.com/solederva/feedsync/internal/normalize"
	"github.com/solederva/feedsync/internal/platform/models"
)

// Fallback code segments for variants missing a color or size.
const (
	fallbackColorSegment = "RENK"
	fallbackSizeSegment  = "BEDEN"
)

// zeroPrices are the price spellings treated as "no variant price".
var zeroPrices = map[string]struct{}{"0": {}, "0.0": {}, "0.00": {}}

// resolveVariants normalizes the raw variants of one product. Output order
// preserves input order; color grouping is only used to derive the
// deterministic group index fed into synthetic barcodes.
func (c *Converter) resolveVariants(
	productCode string,
	productPrice string,
	raw []models.SourceVariant,
) []models.NormalizedVariant {
	colors := make([]string, len(raw))
	for ix := range raw {
		colors[ix] = normalize.Color(raw[ix].Color)
	}
	groupIndex := colorGroupIndex(colors)

	variants := make([]models.NormalizedVariant, 0, len(raw))
	codesSeen := map[string]int{}

	for ix, rv := range raw {
		color := colors[ix]
		size := strings.TrimSpace(rv.Size)

		code := variantCode(productCode, color, size)
		codesSeen[code]++
		if occurrence := codesSeen[code]; occurrence > 1 {
			// Duplicate color+size pairs within one product get an
			// ordinal suffix to keep codes unique in the product.
			code = fmt.Sprintf("%s-%d", code, occurrence)
		}

		variant := models.NormalizedVariant{
			Code:     code,
			Quantity: strconv.Itoa(coerceQuantity(rv.Quantity)),
			Price:    variantPrice(rv.Price, productPrice),
			Barcode:  c.variantBarcode(productCode, code, color, size, groupIndex[color], rv),
		}
		if color != "" {
			variant.ColorLabel = "Renk"
			variant.ColorValue = color
		}
		if size != "" {
			variant.SizeLabel = "Beden"
			variant.SizeValue = size
		}

		variants = append(variants, variant)
	}

	return variants
}

// variantCode derives the deterministic per-variant code from the product
// code, color and size, uppercased with internal spaces stripped.
func variantCode(productCode, color, size string) string {
	colorSegment := strings.ReplaceAll(color, " ", "")
	if colorSegment == "" {
		colorSegment = fallbackColorSegment
	}
	sizeSegment := strings.ReplaceAll(size, " ", "")
	if sizeSegment == "" {
		sizeSegment = fallbackSizeSegment
	}
	return strings.ToUpper(productCode + "-" + colorSegment + "-" + sizeSegment)
}

// colorGroupIndex assigns each distinct color a 1-based index by
// lexicographic order, independent of input order.
func colorGroupIndex(colors []string) map[string]int {
	distinct := map[string]struct{}{}
	for _, color := range colors {
		distinct[color] = struct{}{}
	}

	sorted := make([]string, 0, len(distinct))
	for color := range distinct {
		sorted = append(sorted, color)
	}
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for ix, color := range sorted {
		index[color] = ix + 1
	}
	return index
}

// coerceQuantity parses a raw quantity as a float truncated to an integer.
// Missing, malformed or negative values coerce to 0.
func coerceQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	quantity, err := strconv.ParseFloat(raw, 64)
	if err != nil || quantity < 0 {
		return 0
	}
	return int(quantity)
}

// variantPrice returns the variant's own price, falling back to the
// product price for blank or zero-spelled values.
func variantPrice(raw, productPrice string) string {
	price := strings.TrimSpace(raw)
	if price == "" {
		return productPrice
	}
	if _, zero := zeroPrices[price]; zero {
		return productPrice
	}
	return price
}

func (c *Converter) variantBarcode(
	productCode, code, color, size string,
	groupIndex int,
	rv models.SourceVariant,
) string {
	switch c.opts.Strategy {
	case barcode.StrategyBlank:
		return ""
	case barcode.StrategySynthetic:
		base := fmt.Sprintf("%s_%s_%s_%s_%d", productCode, code, color, size, groupIndex)
		return c.variantGen.Generate(base)
	default:
		// Variants never fall back to sibling barcodes.
		return c.opts.Suffix.Apply(strings.TrimSpace(rv.RawBarcode()))
	}
}

// rollUpQuantity sums normalized variant quantities into the product
// quantity string.
func rollUpQuantity(variants []models.NormalizedVariant) string {
	total := 0
	for _, variant := range variants {
		quantity, err := strconv.Atoi(variant.Quantity)
		if err != nil {
			continue
		}
		total += quantity
	}
	return strconv.Itoa(total)
}
