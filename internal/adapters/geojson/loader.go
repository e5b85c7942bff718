// Package geojson loads map geometries from GeoJSON FeatureCollections and
// TopoJSON topologies. Only identifying properties are decoded; shapes stay
// in the raw bytes, which are kept for serving to the browser unchanged.
package geojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/biter777/countries"

	"github.com/corey/wce/internal/domain/geography"
)

// Format names the container a Set was parsed from.
type Format string

const (
	FormatGeoJSON  Format = "geojson"
	FormatTopoJSON Format = "topojson"
)

// ErrUnsupported is returned for JSON that is neither a FeatureCollection nor a Topology.
var ErrUnsupported = errors.New("unsupported geometry document")

// Set is one loaded geometry file.
type Set struct {
	Path       string
	Format     Format
	Geometries []geography.Geometry
	Raw        []byte
}

// Len is the number of geometries, safe on a nil Set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Geometries)
}

type feature struct {
	ID         json.RawMessage            `json:"id"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type document struct {
	Type     string                     `json:"type"`
	Features []feature                  `json:"features"`
	Objects  map[string]json.RawMessage `json:"objects"`
}

type topoObject struct {
	Type       string    `json:"type"`
	Geometries []feature `json:"geometries"`
}

// Load reads and parses a geometry file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	set.Path = path
	return set, nil
}

// Parse decodes a GeoJSON FeatureCollection or a TopoJSON Topology. For a
// topology, every GeometryCollection object contributes, in object-name order.
func Parse(data []byte) (*Set, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	set := &Set{Raw: data}
	switch doc.Type {
	case "FeatureCollection":
		set.Format = FormatGeoJSON
		for _, f := range doc.Features {
			set.Geometries = append(set.Geometries, toGeometry(f))
		}
	case "Topology":
		set.Format = FormatTopoJSON
		names := make([]string, 0, len(doc.Objects))
		for name := range doc.Objects {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			var obj topoObject
			if err := json.Unmarshal(doc.Objects[name], &obj); err != nil {
				return nil, fmt.Errorf("decode object %q: %w", name, err)
			}
			if obj.Type != "GeometryCollection" {
				continue
			}
			for _, f := range obj.Geometries {
				set.Geometries = append(set.Geometries, toGeometry(f))
			}
		}
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnsupported, doc.Type)
	}
	return set, nil
}

func toGeometry(f feature) geography.Geometry {
	g := geography.Geometry{ID: rawString(f.ID)}
	for _, k := range geography.PropertyOrder {
		raw, ok := f.Properties[string(k)]
		if !ok {
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			g.Properties = append(g.Properties, geography.Property{Key: k, Value: v})
		}
	}
	enrich(&g)
	return g
}

// enrich fills ISO_A3 from a numeric ISO 3166 id when the feature lacks a
// usable one. world-atlas files carry only a name and the numeric code.
func enrich(g *geography.Geometry) {
	if a3 := g.Get(geography.PropISOA3); a3 != "" && a3 != "-99" {
		return
	}
	n, err := strconv.Atoi(g.ID)
	if err != nil || n <= 0 {
		return
	}
	code := countries.ByNumeric(n)
	if code == countries.Unknown {
		return
	}
	g.Set(geography.PropISOA3, code.Alpha3())
}

// rawString renders a JSON string or number id as text.
func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
