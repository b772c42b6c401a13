package normalize

import (
	"regexp"
	"strings"
)

// Title template placeholders.
const (
	PlaceholderBrand = "{brand}"
	PlaceholderModel = "{model}"
	PlaceholderColor = "{color}"
	PlaceholderRest  = "{rest}"
)

// colorVocabulary lists color words recognized when detecting the color
// token of a product name.
var colorVocabulary = map[string]struct{}{
	"SIYAH":       {},
	"BEYAZ":       {},
	"LACIVERT":    {},
	"SAKS":        {},
	"KREM":        {},
	"PEMBE":       {},
	"YESIL":       {},
	"MAVI":        {},
	"TURUNCU":     {},
	"KIRMIZI":     {},
	"GRI":         {},
	"BORDO":       {},
	"BEJ":         {},
	"HAKI":        {},
	"MOR":         {},
	"SARI":        {},
	"KAHVERENGI":  {},
	"ANTRASIT":    {},
	"FUME":        {},
	"TABA":        {},
	"VIZON":       {},
	"SIYAH-BEYAZ": {},
}

var modelTokenRe = regexp.MustCompile(`^[A-Za-z0-9]+`)

// TitleTemplate rewrites a product name using template. Supported
// placeholders are {brand}, {model} (the leading alphanumeric run of the
// name), {color} (the last name word found in the color vocabulary) and
// {rest} (the name with the detected model and color removed once each).
// An empty template returns the name unchanged; unrecognized placeholders
// stay literal.
func TitleTemplate(name, template, brand string) string {
	if template == "" {
		return name
	}

	model := modelTokenRe.FindString(strings.TrimSpace(name))

	// The color is removed as a whole word so other words containing it
	// stay intact.
	words := strings.Fields(name)
	color := ""
	if ix := detectColorIndex(words); ix >= 0 {
		color = words[ix]
		words = append(words[:ix], words[ix+1:]...)
	}

	// The model is always the leading run of the name, so it is stripped
	// as a prefix only.
	rest := strings.Join(words, " ")
	if model != "" && strings.HasPrefix(rest, model) {
		rest = rest[len(model):]
	}
	rest = spaceRunRe.ReplaceAllString(strings.TrimSpace(rest), " ")

	title := strings.NewReplacer(
		PlaceholderBrand, brand,
		PlaceholderModel, model,
		PlaceholderColor, color,
		PlaceholderRest, rest,
	).Replace(template)

	title = spaceRunRe.ReplaceAllString(title, " ")
	return strings.Trim(title, "- ")
}

// detectColorIndex returns the index of the last word present in the
// color vocabulary, scanning from the end, or -1.
func detectColorIndex(words []string) int {
	for ix := len(words) - 1; ix >= 0; ix-- {
		if _, ok := colorVocabulary[strings.ToUpper(words[ix])]; ok {
			return ix
		}
	}
	return -1
}
