package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWeight is used when a source weight is absent or non-positive.
const DefaultWeight = "1"

// currencyAliases maps source currency tokens to the single canonical token.
var currencyAliases = map[string]string{
	"TRL": "TL",
	"TRY": "TL",
	"TL":  "TL",
}

// Currency maps a source currency code to the canonical token.
// Unknown or empty codes fall back to the canonical token as well.
func Currency(raw string) string {
	if canonical, ok := currencyAliases[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return "TL"
}

// CodePrefix rewrites the leading prefix of code from "from" to "to",
// case-insensitively, preserving the remainder verbatim. Codes without the
// prefix are returned trimmed but otherwise unchanged.
func CodePrefix(code, from, to string) string {
	code = strings.TrimSpace(code)
	if from == "" || len(code) < len(from) {
		return code
	}
	if !strings.EqualFold(code[:len(from)], from) {
		return code
	}
	return to + code[len(from):]
}

// Weight parses a decimal weight accepting either "." or "," as the
// fraction separator. Non-positive or unparsable input yields DefaultWeight.
// Integral results render without a fraction.
func Weight(raw string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	weight, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || weight <= 0 {
		return DefaultWeight
	}
	if weight == math.Trunc(weight) {
		return strconv.FormatInt(int64(weight), 10)
	}
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// Replacement is one banned-term substitution rule.
type Replacement struct {
	Term string
	With string
}

// TermFilter applies whole-word, case-insensitive term replacements.
type TermFilter struct {
	rules []termRule
}

type termRule struct {
	pattern *regexp.Regexp
	with    string
}

// NewTermFilter returns a TermFilter for the provided replacements,
// applied in order.
func NewTermFilter(replacements []Replacement) *TermFilter {
	rules := make([]termRule, 0, len(replacements))
	for _, r := range replacements {
		rules = append(rules, termRule{
			pattern: regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, regexp.QuoteMeta(r.Term))),
			with:    r.With,
		})
	}
	return &TermFilter{rules: rules}
}

// Apply substitutes every banned term in text and returns the result.
func (f *TermFilter) Apply(text string) string {
	for _, rule := range f.rules {
		text = rule.pattern.ReplaceAllString(text, rule.with)
	}
	return text
}

var urlSpaceRe = regexp.MustCompile(`\s+`)

// ImageURL trims surrounding quotes and whitespace from url and
// percent-encodes internal whitespace runs.
func ImageURL(url string) string {
	url = strings.Trim(url, ` "'`+"\t\r\n")
	return urlSpaceRe.ReplaceAllString(url, "%20")
}
