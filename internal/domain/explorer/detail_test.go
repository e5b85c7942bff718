package explorer

import (
	"testing"
	"time"

	"github.com/corey/wce/internal/domain/country"
	"github.com/stretchr/testify/assert"
)

func TestNewDetail(t *testing.T) {
	all := world()
	ds := NewDataset(all, time.Unix(0, 0), "upstream")

	fr := all[0]
	fr.Borders = []string{"ESP", "AND"}
	fr.Area = 551695
	fr.LatLng = []float64{46, 2}
	fr.Currencies = map[string]country.Currency{"EUR": {Name: "Euro", Symbol: "€"}}

	d := NewDetail(fr, ds.Index, false)
	assert.Equal(t, "Paris", d.Capital)
	assert.Equal(t, "67,000,000", d.Population)
	assert.Equal(t, "551,695 km²", d.Area)
	assert.Equal(t, "Euro (€)", d.Currencies)
	assert.Equal(t, "N/A", d.Languages)
	assert.Equal(t, "Western Europe", d.Subregion)
	assert.NotEmpty(t, d.Geohash)
	assert.Equal(t, []Border{{CCA3: "ESP", Name: "Spain"}, {CCA3: "AND", Name: "AND"}}, d.Borders)
	assert.Equal(t, []string{"AND"}, d.UnnamedBorders())

	d.NameBorders([]country.Country{{Name: country.Name{Common: "Andorra"}, CCA3: "AND"}})
	assert.Equal(t, "Andorra", d.Borders[1].Name)
	assert.Empty(t, d.UnnamedBorders())
}

func TestNewDetail_Sparse(t *testing.T) {
	d := NewDetail(country.Country{Name: country.Name{Common: "Nowhere"}}, nil, true)
	assert.Equal(t, "N/A", d.Capital)
	assert.Equal(t, "N/A", d.Subregion)
	assert.Equal(t, "N/A", d.Area)
	assert.Empty(t, d.Geohash)
	assert.NotNil(t, d.Borders)
	assert.True(t, d.Partial)
}
