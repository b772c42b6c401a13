// Package barcode implements the barcode assignment strategies of the
// canonical feed: keeping source barcodes, blanking them, or deriving
// stable synthetic codes.
package barcode

import (
	"fmt"
	"strings"
)

// Strategy selects how output barcodes are populated. It is chosen once
// per run and applied uniformly to products and variants.
type Strategy string

// Supported strategies.
const (
	StrategyKeep      Strategy = "keep"
	StrategyBlank     Strategy = "blank"
	StrategySynthetic Strategy = "synthetic"
)

// ParseStrategy returns the Strategy named by s.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyKeep:
		return StrategyKeep, nil
	case StrategyBlank:
		return StrategyBlank, nil
	case StrategySynthetic:
		return StrategySynthetic, nil
	default:
		return "", fmt.Errorf("unknown barcode strategy %q", s)
	}
}

// SuffixPolicy is a literal suffix ensured on kept barcodes. The empty
// policy leaves barcodes untouched. Suffixing and the synthetic strategy
// are mutually exclusive: a suffix would corrupt the check digit.
type SuffixPolicy string

// Apply appends the suffix to code unless code is empty or already ends
// with it.
func (p SuffixPolicy) Apply(code string) string {
	if p == "" || code == "" {
		return code
	}
	if strings.HasSuffix(code, string(p)) {
		return code
	}
	return code + string(p)
}
