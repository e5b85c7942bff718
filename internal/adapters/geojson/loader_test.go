package geojson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/wce/internal/domain/geography"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "FRA",
     "properties": {"ADMIN": "France", "ISO_A3": "FRA", "ISO_A2": "FR", "POP_EST": 67000000},
     "geometry": {"type": "Point", "coordinates": [2, 46]}},
    {"type": "Feature",
     "properties": {"NAME": "N. Cyprus", "ISO_A3": "-99", "NAME_LONG": "Northern Cyprus"},
     "geometry": null},
    {"type": "Feature", "properties": null, "geometry": null}
  ]
}`

const topology = `{
  "type": "Topology",
  "objects": {
    "land": {"type": "MultiPolygon", "arcs": []},
    "countries": {"type": "GeometryCollection", "geometries": [
      {"type": "Polygon", "id": "250", "properties": {"name": "France"}, "arcs": [[0]]},
      {"type": "Polygon", "id": 392, "properties": {"name": "Japan"}, "arcs": [[1]]},
      {"type": "Polygon", "id": "-99", "properties": {"name": "Somaliland"}, "arcs": [[2]]}
    ]}
  },
  "arcs": [[[0,0]],[[1,1]],[[2,2]]]
}`

func TestParse_FeatureCollection(t *testing.T) {
	set, err := Parse([]byte(featureCollection))
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, set.Format)
	require.Equal(t, 3, set.Len())

	fr := set.Geometries[0]
	assert.Equal(t, "FRA", fr.ID)
	assert.Equal(t, []string{"fr", "fra", "france"}, fr.Candidates())

	cy := set.Geometries[1]
	assert.Equal(t, "-99", cy.Get(geography.PropISOA3))
	assert.Equal(t, "Northern Cyprus", cy.Get(geography.PropNameLong))

	assert.Empty(t, set.Geometries[2].Properties)
	assert.Equal(t, []byte(featureCollection), set.Raw)
}

func TestParse_TopologyEnrichesNumericIDs(t *testing.T) {
	set, err := Parse([]byte(topology))
	require.NoError(t, err)
	assert.Equal(t, FormatTopoJSON, set.Format)
	require.Equal(t, 3, set.Len())

	assert.Equal(t, "FRA", set.Geometries[0].Get(geography.PropISOA3))
	assert.Equal(t, "392", set.Geometries[1].ID)
	assert.Equal(t, "JPN", set.Geometries[1].Get(geography.PropISOA3))
	assert.Equal(t, "", set.Geometries[2].Get(geography.PropISOA3))
	assert.Equal(t, "Somaliland", set.Geometries[2].Get(geography.PropNameLow))
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse([]byte(`{"type":"Feature"}`))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")
	require.NoError(t, os.WriteFile(path, []byte(topology), 0644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, set.Path)
	assert.Equal(t, 3, set.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSet_NilLen(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Len())
}
