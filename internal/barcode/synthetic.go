package barcode

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Default synthetic prefixes and length, matching the numbering used by the
// duplicate-barcode repair tool.
const (
	DefaultProductPrefix = "2199"
	DefaultVariantPrefix = "2198"
	DefaultLength        = 13

	minLength = 8
)

// Generator derives deterministic numeric-looking barcodes from composite
// keys. Same key, prefix and length always yield the same barcode. The
// result is not a GS1-issued code; it only has to be stable and unique in
// practice.
type Generator struct {
	prefix string
	length int
}

// NewGenerator returns a Generator with the provided numeric prefix and
// target length. Lengths below the minimum are raised to it.
func NewGenerator(prefix string, length int) Generator {
	if length < minLength {
		length = minLength
	}
	return Generator{prefix: prefix, length: length}
}

// Generate returns the synthetic barcode for base. For lengths of 12 or
// more with purely numeric digits the final digit is an EAN-13 style check
// digit over the preceding ones; otherwise the code is right-padded with
// zeros.
func (g Generator) Generate(base string) string {
	sum := sha256.Sum256([]byte(base))
	hexDigest := hex.EncodeToString(sum[:])

	digits := make([]byte, len(hexDigest))
	for ix := range hexDigest {
		digits[ix] = '0' + hexValue(hexDigest[ix])%10
	}

	core := g.prefix + string(digits)
	if len(core) > g.length-1 {
		core = core[:g.length-1]
	}

	if g.length >= 12 && isNumeric(core) {
		return core + checkDigit(core)
	}

	if len(core) < g.length {
		core += strings.Repeat("0", g.length-len(core))
	}
	return core
}

// checkDigit computes the EAN-13 check digit over digits (weights 1 and 3
// alternating from the first position).
func checkDigit(digits string) string {
	total := 0
	for ix := range digits {
		d := int(digits[ix] - '0')
		if ix%2 == 1 {
			total += d * 3
		} else {
			total += d
		}
	}
	return string(byte('0' + (10-total%10)%10))
}

func hexValue(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for ix := range s {
		if s[ix] < '0' || s[ix] > '9' {
			return false
		}
	}
	return true
}
