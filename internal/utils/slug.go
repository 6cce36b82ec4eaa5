// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLength = 150

// Slugify builds a URL-safe slug from the given parts. Anything that is not
// a lowercase letter or digit collapses into a single hyphen.
func Slugify(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, " "))
	slug := slugStrip.ReplaceAllString(joined, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}

// UniqueSlug appends a random token to a base slug, used when the base
// collides with an existing property.
func UniqueSlug(base string) (string, error) {
	token, err := GenerateRandomString(6)
	if err != nil {
		return "", err
	}
	return base + "-" + strings.ToLower(token), nil
}
