// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// with transliteration of Turkish characters to their ASCII equivalents.
package slug

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleSpaces collapses runs of whitespace into one space.
	multipleSpaces = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// turkish maps Turkish characters to ASCII equivalents. The uppercase
	// forms are listed explicitly because strings.ToLower turns the dotted
	// capital İ into "i" plus a combining dot, which would survive the
	// lowercase pass as a non-ASCII rune.
	turkish = strings.NewReplacer(
		"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
		"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
	)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "İstanbul'da Teknoloji Haberleri!" → "istanbulda-teknoloji-haberleri"
func Generate(s string) string {
	result := turkish.Replace(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = multipleSpaces.ReplaceAllString(result, " ")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// CleanFromURL decodes a percent-encoded URL path segment and lowercases
// and trims it, for comparison against a stored slug. Invalid escapes are
// left as-is rather than erroring.
func CleanFromURL(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		decoded = s
	}
	return strings.ToLower(strings.TrimSpace(decoded))
}

// Equal reports whether an incoming URL segment matches a stored slug.
// Both sides are decoded and run through the full slug normalization, so a
// URL containing raw Turkish characters still matches the slug that was
// generated from the same title.
func Equal(a, b string) bool {
	return Generate(CleanFromURL(a)) == Generate(CleanFromURL(b))
}
