package content

import "github.com/goliatone/go-slug"

// NormalizeSlug applies the default slug normalization rules to a page key.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the page key matches the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
