package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// fullWidthDigits is ０ (U+FF10) through ９ (U+FF19).
var fullWidthDigits = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xFF10, Hi: 0xFF19, Stride: 1}},
}

// NormalizeAddress trims surrounding whitespace and narrows full-width digits
// to ASCII. Every other rune is left untouched.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)

	t := runes.If(runes.In(fullWidthDigits), width.Narrow, nil)
	normalized, _, err := transform.String(t, address)
	if err != nil {
		return address
	}
	return normalized
}
