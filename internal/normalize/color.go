// Package normalize contains pure field-level cleanup functions used by the
// feed converter.
package normalize

import (
	"regexp"
	"strings"
)

// colorAbbreviations maps vendor color shorthands to full color names.
// Expansion is applied token-by-token, so already-expanded names are never
// rewritten again.
var colorAbbreviations = map[string]string{
	"SYH":  "SIYAH",
	"BYZ":  "BEYAZ",
	"LAC":  "LACIVERT",
	"SAX":  "SAKS",
	"KRM":  "KREM",
	"PMB":  "PEMBE",
	"YSL":  "YESIL",
	"MVI":  "MAVI",
	"TRN":  "TURUNCU",
	"KRMZ": "KIRMIZI",
}

var (
	parenSuffixRe = regexp.MustCompile(`\s*\([^)]*\)`)
	separatorRe   = regexp.MustCompile(`\s*/\s*`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
	hyphenRunRe   = regexp.MustCompile(`\s*-[\s-]*`)
	colorTokenRe  = regexp.MustCompile(`[A-Z0-9]+`)
)

// Color canonicalizes a raw color value: uppercases, strips parenthesized
// suffixes, collapses separators and whitespace, and expands known
// abbreviations. The function is idempotent.
func Color(raw string) string {
	color := strings.ToUpper(strings.TrimSpace(raw))
	color = parenSuffixRe.ReplaceAllString(color, "")
	color = separatorRe.ReplaceAllString(color, "-")
	color = spaceRunRe.ReplaceAllString(color, " ")
	color = hyphenRunRe.ReplaceAllString(color, "-")

	color = colorTokenRe.ReplaceAllStringFunc(color, func(token string) string {
		if full, ok := colorAbbreviations[token]; ok {
			return full
		}
		return token
	})

	return strings.Trim(color, "- ")
}
