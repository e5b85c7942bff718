// Package explorer composes the list and map views out of the filter and
// geography packages. Both views are recomputed from scratch on every call.
package explorer

import (
	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/filter"
	"github.com/corey/wce/internal/domain/geography"
)

// Request is the user's current search and filter state.
type Request struct {
	Query     string           `json:"query"`
	Selection filter.Selection `json:"selection"`
	Limit     int              `json:"limit"`
}

// List is the list view.
type List struct {
	Total         int               `json:"total" yaml:"total"`
	Matched       int               `json:"matched" yaml:"matched"`
	Summary       string            `json:"summary" yaml:"summary"`
	Countries     []country.Country `json:"countries" yaml:"countries"`
	HasMore       bool              `json:"has_more" yaml:"has_more"`
	Badges        []filter.Badge    `json:"badges" yaml:"badges"`
	ActiveFilters int               `json:"active_filters" yaml:"active_filters"`
}

// Filter runs the pipeline for req.
func Filter(countries []country.Country, req Request) []country.Country {
	return filter.Apply(countries, req.Query, req.Selection.Normalize())
}

// ListView filters, summarizes and pages the collection.
func ListView(countries []country.Country, req Request) List {
	sel := req.Selection.Normalize()
	matched := filter.Apply(countries, req.Query, sel)
	visible, more := filter.Page(matched, req.Limit)

	badges := sel.Badges()
	if badges == nil {
		badges = []filter.Badge{}
	}
	return List{
		Total:         len(countries),
		Matched:       len(matched),
		Summary:       filter.Summarize(len(countries), len(matched), req.Query),
		Countries:     visible,
		HasMore:       more,
		Badges:        badges,
		ActiveFilters: len(badges),
	}
}

// Feature is one rendered map shape.
type Feature struct {
	ID        string          `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string          `json:"name" yaml:"name"`
	Class     geography.Class `json:"class" yaml:"class"`
	Fill      string          `json:"fill" yaml:"fill"`
	HoverFill string          `json:"hover_fill" yaml:"hover_fill"`
	CCA3      string          `json:"cca3,omitempty" yaml:"cca3,omitempty"`
}

// Map is the world map view.
type Map struct {
	Caption  string        `json:"caption" yaml:"caption"`
	Legend   filter.Legend `json:"legend" yaml:"legend"`
	Features []Feature     `json:"features" yaml:"features"`
}

// MapView classifies every geometry against the filtered subset.
func MapView(countries, filtered []country.Country, idx *geography.Index, geometries []geography.Geometry) Map {
	set := geography.NewFilteredSet(filtered)

	features := make([]Feature, 0, len(geometries))
	for _, g := range geometries {
		res := idx.Classify(g, set)
		f := Feature{
			ID:        g.ID,
			Name:      geography.DisplayName(g, idx),
			Class:     res.Class,
			Fill:      res.Class.Fill(),
			HoverFill: res.Class.HoverFill(),
		}
		if res.Country != nil {
			f.CCA3 = res.Country.CCA3
		}
		features = append(features, f)
	}

	return Map{
		Caption:  filter.MapCaption(len(countries), len(filtered)),
		Legend:   filter.NewLegend(len(countries), len(filtered)),
		Features: features,
	}
}
