package utils

import (
	"strings"
)

// NormalizeText lowercases and trims a free-text place name or search term
// so comparisons and cache keys are case/whitespace-insensitive.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CacheKeyText collapses inner whitespace runs of a normalized string so
// "Abuja  Central" and "abuja central" share one cache entry.
func CacheKeyText(s string) string {
	return strings.Join(strings.Fields(NormalizeText(s)), " ")
}
