package content

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// contentExtensions lists the file extensions recognised as content records.
var contentExtensions = []string{".md", ".mdx", ".markdown"}

// IsContentFile reports whether the filename carries a recognised content
// extension.
func IsContentFile(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range contentExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// DeriveSlug derives a URL-safe slug from a content filename by stripping the
// content extension and normalizing the remainder. The derivation is
// deterministic: the same filename always yields the same slug.
func DeriveSlug(filename string) (string, error) {
	base := path.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "", ErrSlugRequired
	}

	for _, ext := range contentExtensions {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	if base == "" {
		return "", ErrSlugRequired
	}

	if slug.IsValid(base) {
		return base, nil
	}

	normalized, err := slug.Normalize(base)
	if err != nil {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}
