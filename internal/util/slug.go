package util

import (
	"strings"
	"unicode"
)

// Slug converts a string to kebab-case.
// It lowercases the string, replaces spaces and underscores with hyphens,
// removes non-alphanumeric characters (except hyphens), collapses multiple
// consecutive hyphens, and trims leading/trailing hyphens.
func Slug(s string) string {
	var result strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('-')
		}
	}

	str := result.String()
	for strings.Contains(str, "--") {
		str = strings.ReplaceAll(str, "--", "-")
	}

	return strings.Trim(str, "-")
}

// FileName returns "<slug>-<suffix>.<ext>", falling back to "<suffix>.<ext>"
// when the name has no usable characters.
func FileName(name, suffix, ext string) string {
	slug := Slug(name)
	if slug == "" {
		return suffix + "." + ext
	}
	return slug + "-" + suffix + "." + ext
}
