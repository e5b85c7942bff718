package filter

import (
	"regexp"
	"strings"

	"github.com/corey/wce/internal/domain/country"
)

// MatchesQuery reports whether c matches a free-text query. A blank query
// matches everything. Otherwise the lower-cased query must occur as a
// substring of the common or official name, any capital, the region or the
// subregion. The query is not trimmed once it is known to be non-blank.
func MatchesQuery(c country.Country, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(c.Name.Common), q) ||
		strings.Contains(strings.ToLower(c.Name.Official), q) {
		return true
	}
	for _, capital := range c.Capital {
		if strings.Contains(strings.ToLower(capital), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(c.Region), q) {
		return true
	}
	return c.Subregion != "" && strings.Contains(strings.ToLower(c.Subregion), q)
}

// Highlight wraps every case-insensitive occurrence of query in <mark> tags,
// keeping the casing of text. The query is matched literally.
func Highlight(text, query string) string {
	if strings.TrimSpace(query) == "" {
		return text
	}
	re, err := regexp.Compile("(?i)(" + regexp.QuoteMeta(query) + ")")
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, "<mark>$1</mark>")
}
