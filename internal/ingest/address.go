package ingest

import (
	"regexp"
	"strings"
)

var (
	streetNumberPrefix = regexp.MustCompile(`^\d+\s+`)
	unitSuffix         = regexp.MustCompile(`(?i),?\s*(apt|unit|suite|#)\s*[\w-]*`)
	venuePrefix        = regexp.MustCompile(`^[^,]+\([^)]+\),\s*`)
	multiSpace         = regexp.MustCompile(`\s+`)
)

// MaskDropoffAddress hides the street number and unit of a dropoff address
// for privacy.
func MaskDropoffAddress(address string) string {
	if address == "" {
		return address
	}
	masked := streetNumberPrefix.ReplaceAllString(address, "")
	return unitSuffix.ReplaceAllString(masked, "")
}

// SanitizePickupAddress removes a redundant restaurant-name prefix from a
// pickup address, e.g. "Chipotle (Main St), 100 Main St" -> "100 Main St".
func SanitizePickupAddress(address, restaurant string) string {
	if address == "" {
		return address
	}
	clean := venuePrefix.ReplaceAllString(address, "")

	if restaurant != "" && strings.HasPrefix(strings.ToLower(clean), strings.ToLower(restaurant)) {
		clean = strings.TrimLeft(clean[len(restaurant):], " ,")
	}

	return strings.TrimSpace(multiSpace.ReplaceAllString(clean, " "))
}
