package filter

import "github.com/corey/wce/internal/domain/country"

// MatchesSelection reports whether c satisfies every non-All field of s.
// A country without a subregion never matches a concrete subregion. An
// unknown population label constrains nothing.
func MatchesSelection(c country.Country, s Selection) bool {
	if s.Region != All && c.Region != s.Region {
		return false
	}
	if s.Subregion != All {
		if c.Subregion == "" || c.Subregion != s.Subregion {
			return false
		}
	}
	if s.Population != All {
		if b, ok := LookupBucket(s.Population); ok && !b.Contains(c.Population) {
			return false
		}
	}
	return true
}
