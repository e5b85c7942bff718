package geography

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/corey/wce/internal/domain/country"
)

// SuggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const SuggestThreshold = 0.85

// Suggest finds the country whose common or official name is most similar to
// name. ok is false when nothing reaches SuggestThreshold.
func (idx *Index) Suggest(name string) (country.Country, float64, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if idx == nil || name == "" {
		return country.Country{}, 0, false
	}

	metric := metrics.NewJaroWinkler()
	best, bestScore := -1, 0.0
	for i, c := range idx.list {
		for _, candidate := range []string{c.Name.Common, c.Name.Official} {
			if candidate == "" {
				continue
			}
			score := strutil.Similarity(name, strings.ToLower(candidate), metric)
			if score > bestScore {
				best, bestScore = i, score
			}
		}
	}
	if best < 0 || bestScore < SuggestThreshold {
		return country.Country{}, bestScore, false
	}
	return idx.list[best], bestScore, true
}
