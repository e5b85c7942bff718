// Package geography links map geometries to country records. Geometry files
// come from several world datasets whose feature properties disagree on
// naming, so resolution tries a fixed list of identifying properties in order
// and accepts the first one that hits the index.
package geography

import "strings"

// PropertyKey is a recognised identifying property of a map feature.
type PropertyKey string

const (
	PropISOA2    PropertyKey = "ISO_A2"
	PropISOA3    PropertyKey = "ISO_A3"
	PropName     PropertyKey = "NAME"
	PropNameEN   PropertyKey = "NAME_EN"
	PropNameLow  PropertyKey = "name"
	PropNameLong PropertyKey = "NAME_LONG"
	PropAdmin    PropertyKey = "ADMIN"
)

// PropertyOrder is the candidate priority used when resolving a geometry.
var PropertyOrder = []PropertyKey{
	PropISOA2, PropISOA3, PropName, PropNameEN, PropNameLow, PropNameLong, PropAdmin,
}

// IsKnown reports whether k is one of PropertyOrder.
func (k PropertyKey) IsKnown() bool {
	for _, p := range PropertyOrder {
		if p == k {
			return true
		}
	}
	return false
}

// Property is one identifying key/value pair of a feature.
type Property struct {
	Key   PropertyKey `json:"key"`
	Value string      `json:"value"`
}

// Geometry is the identifying part of one map feature. Shapes are not kept
// here; the browser draws them from the raw file.
type Geometry struct {
	ID         string     `json:"id,omitempty"`
	Properties []Property `json:"properties"`
}

// Get returns the value stored under k, or "".
func (g Geometry) Get(k PropertyKey) string {
	for _, p := range g.Properties {
		if p.Key == k {
			return p.Value
		}
	}
	return ""
}

// Set replaces or appends a property.
func (g *Geometry) Set(k PropertyKey, v string) {
	for i := range g.Properties {
		if g.Properties[i].Key == k {
			g.Properties[i].Value = v
			return
		}
	}
	g.Properties = append(g.Properties, Property{Key: k, Value: v})
}

// Candidates lists the lower-cased non-empty identifying values in
// PropertyOrder, regardless of the order they were stored in.
func (g Geometry) Candidates() []string {
	out := make([]string, 0, len(g.Properties))
	for _, k := range PropertyOrder {
		if v := g.Get(k); v != "" {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}
