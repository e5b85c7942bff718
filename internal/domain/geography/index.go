package geography

import (
	"strings"

	"github.com/corey/wce/internal/domain/country"
)

// Index maps lower-cased identity keys to countries.
type Index struct {
	byKey map[string]int
	list  []country.Country
}

// NewIndex builds the lookup from every record's cca2, cca3, common and
// official name, plus the usa / uk aliases some datasets use. When two
// records share a key, the later one wins.
func NewIndex(countries []country.Country) *Index {
	idx := &Index{
		byKey: make(map[string]int, len(countries)*4),
		list:  countries,
	}
	for i, c := range countries {
		for _, k := range c.Keys() {
			idx.byKey[k] = i
		}
		common := strings.ToLower(c.Name.Common)
		if strings.Contains(common, "united states") {
			idx.byKey["usa"] = i
			idx.byKey["united states of america"] = i
		}
		if strings.Contains(common, "united kingdom") {
			idx.byKey["uk"] = i
			idx.byKey["britain"] = i
		}
	}
	return idx
}

// Len is the number of distinct keys.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byKey)
}

// Lookup finds a country by any key, case-insensitively.
func (idx *Index) Lookup(key string) (country.Country, bool) {
	if idx == nil {
		return country.Country{}, false
	}
	i, ok := idx.byKey[strings.ToLower(key)]
	if !ok {
		return country.Country{}, false
	}
	return idx.list[i], true
}

// Resolve returns the country for the first candidate of g found in the index.
func (idx *Index) Resolve(g Geometry) (country.Country, bool) {
	for _, cand := range g.Candidates() {
		if c, ok := idx.Lookup(cand); ok {
			return c, true
		}
	}
	return country.Country{}, false
}

// FilteredSet holds the identity keys of the filtered subset.
type FilteredSet map[string]struct{}

// NewFilteredSet collects the lower-cased identity keys of filtered.
func NewFilteredSet(filtered []country.Country) FilteredSet {
	set := make(FilteredSet, len(filtered)*4)
	for _, c := range filtered {
		for _, k := range c.Keys() {
			set[k] = struct{}{}
		}
	}
	return set
}

// Has reports whether key is in the set.
func (s FilteredSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Contains reports whether any identity key of c is in the set.
func (s FilteredSet) Contains(c country.Country) bool {
	for _, k := range c.Keys() {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Resolution is the outcome of classifying one geometry.
type Resolution struct {
	Country *country.Country `json:"country,omitempty"`
	Class   Class            `json:"class"`
}

// Classify resolves g and places it in one of the three render classes.
// An unresolvable geometry is NoData; it is never an error.
func (idx *Index) Classify(g Geometry, set FilteredSet) Resolution {
	c, ok := idx.Resolve(g)
	if !ok {
		return Resolution{Class: NoData}
	}
	res := Resolution{Country: &c, Class: HasData}
	if set.Contains(c) {
		res.Class = Filtered
	}
	return res
}
