// Package filter narrows a country collection by a free-text query and a
// structured selection (region, subregion, population bucket), and renders the
// one-line summaries shown above the list and the map.
//
// Every function here is total: invalid or inconsistent input narrows the
// result, it never produces an error.
package filter

import "math"

// All is the "no constraint" sentinel for every selection field.
const All = "All"

// Regions is the closed set of continent groupings offered for filtering.
var Regions = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

// IsRegion reports whether s is All or one of Regions.
func IsRegion(s string) bool {
	if s == All {
		return true
	}
	for _, r := range Regions {
		if r == s {
			return true
		}
	}
	return false
}

// Bucket is a named population range. Both ends are inclusive.
type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Min   int64  `json:"min" yaml:"min"`
	Max   int64  `json:"max" yaml:"max"`
}

// Contains reports whether n lies in [Min, Max].
func (b Bucket) Contains(n int64) bool {
	return n >= b.Min && n <= b.Max
}

// PopulationBuckets is the ordered bucket table. Adjacent buckets share their
// boundary value, so a population of exactly 1,000,000 sits in two of them.
var PopulationBuckets = []Bucket{
	{Label: "Under 1M", Min: 0, Max: 1_000_000},
	{Label: "1M - 10M", Min: 1_000_000, Max: 10_000_000},
	{Label: "10M - 100M", Min: 10_000_000, Max: 100_000_000},
	{Label: "Over 100M", Min: 100_000_000, Max: math.MaxInt64},
}

// LookupBucket finds a bucket by its label.
func LookupBucket(label string) (Bucket, bool) {
	for _, b := range PopulationBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}

// BucketLabels returns the bucket labels prefixed with All, in table order.
func BucketLabels() []string {
	out := make([]string, 0, len(PopulationBuckets)+1)
	out = append(out, All)
	for _, b := range PopulationBuckets {
		out = append(out, b.Label)
	}
	return out
}

// FilterKey names one field of a Selection.
type FilterKey string

const (
	KeyRegion     FilterKey = "region"
	KeySubregion  FilterKey = "subregion"
	KeyPopulation FilterKey = "population"
)

// Selection is the structured filter state. Each field is All or a concrete value.
type Selection struct {
	Region     string `json:"region" yaml:"region"`
	Subregion  string `json:"subregion" yaml:"subregion"`
	Population string `json:"population" yaml:"population"`
}

// DefaultSelection constrains nothing.
func DefaultSelection() Selection {
	return Selection{Region: All, Subregion: All, Population: All}
}

// Normalize maps empty fields to All.
func (s Selection) Normalize() Selection {
	if s.Region == "" {
		s.Region = All
	}
	if s.Subregion == "" {
		s.Subregion = All
	}
	if s.Population == "" {
		s.Population = All
	}
	return s
}

// WithRegion sets the region. Changing it resets the subregion, since the old
// subregion rarely belongs to the new region.
func (s Selection) WithRegion(region string) Selection {
	if region != s.Region {
		s.Subregion = All
	}
	s.Region = region
	return s
}

// Without clears one field back to All.
func (s Selection) Without(key FilterKey) Selection {
	switch key {
	case KeyRegion:
		s.Region = All
	case KeySubregion:
		s.Subregion = All
	case KeyPopulation:
		s.Population = All
	}
	return s
}

// Badge describes one active filter for display.
type Badge struct {
	Key   FilterKey `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	Value string    `json:"value" yaml:"value"`
}

// Badges lists the active fields in display order: region, subregion, population.
func (s Selection) Badges() []Badge {
	var out []Badge
	if s.Region != All {
		out = append(out, Badge{Key: KeyRegion, Label: "Region", Value: s.Region})
	}
	if s.Subregion != All {
		out = append(out, Badge{Key: KeySubregion, Label: "Subregion", Value: s.Subregion})
	}
	if s.Population != All {
		out = append(out, Badge{Key: KeyPopulation, Label: "Population", Value: s.Population})
	}
	return out
}

// ActiveCount is the number of fields not set to All.
func (s Selection) ActiveCount() int {
	return len(s.Badges())
}
