package filter

import (
	"fmt"
	"strings"
)

// Summarize renders the line above the result list. Only the text query
// decides between the "Showing" and "Found" forms; a structured filter alone
// still reads "Showing {total} countries".
func Summarize(total, filtered int, query string) string {
	if strings.TrimSpace(query) == "" {
		return fmt.Sprintf("Showing %d countries", total)
	}
	if filtered == 0 {
		return "No countries found"
	}
	return fmt.Sprintf("Found %d of %d countries", filtered, total)
}

// MapCaption renders the line above the world map.
func MapCaption(total, filtered int) string {
	if filtered == total {
		return fmt.Sprintf("Showing all %d countries", total)
	}
	return fmt.Sprintf("Highlighting %d of %d countries", filtered, total)
}

// Legend holds the counts shown under the map.
type Legend struct {
	Matching  int `json:"matching" yaml:"matching"`
	Available int `json:"available" yaml:"available"`
}

// NewLegend splits total into matching and the remainder.
func NewLegend(total, filtered int) Legend {
	return Legend{Matching: filtered, Available: total - filtered}
}
