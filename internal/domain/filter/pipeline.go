package filter

import (
	"sort"

	"github.com/corey/wce/internal/domain/country"
)

// DefaultPageSize is how many cards the list view shows at once.
const DefaultPageSize = 20

// Apply runs the structured pass, then the text pass over its survivors.
// Input order is preserved and the input slice is never modified.
func Apply(countries []country.Country, query string, s Selection) []country.Country {
	structured := make([]country.Country, 0, len(countries))
	for _, c := range countries {
		if MatchesSelection(c, s) {
			structured = append(structured, c)
		}
	}

	out := make([]country.Country, 0, len(structured))
	for _, c := range structured {
		if MatchesQuery(c, query) {
			out = append(out, c)
		}
	}
	return out
}

// Page returns at most max leading records and whether any were cut off.
// A non-positive max means DefaultPageSize.
func Page(countries []country.Country, max int) ([]country.Country, bool) {
	if max <= 0 {
		max = DefaultPageSize
	}
	if len(countries) <= max {
		return countries, false
	}
	return countries[:max], true
}

// SubregionOptions lists All followed by the sorted distinct subregions of
// the collection, restricted to region unless it is All. Countries without a
// subregion contribute nothing.
func SubregionOptions(countries []country.Country, region string) []string {
	seen := make(map[string]struct{})
	for _, c := range countries {
		if c.Subregion == "" {
			continue
		}
		if region != All && region != "" && c.Region != region {
			continue
		}
		seen[c.Subregion] = struct{}{}
	}

	subs := make([]string, 0, len(seen))
	for s := range seen {
		subs = append(subs, s)
	}
	sort.Strings(subs)
	return append([]string{All}, subs...)
}
