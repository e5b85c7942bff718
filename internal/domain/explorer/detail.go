package explorer

import (
	"time"

	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/geography"
)

// Dataset is one loaded collection plus the index built over it.
type Dataset struct {
	Countries []country.Country
	Index     *geography.Index
	FetchedAt time.Time
	Origin    string
}

// NewDataset indexes countries.
func NewDataset(countries []country.Country, fetchedAt time.Time, origin string) Dataset {
	return Dataset{
		Countries: countries,
		Index:     geography.NewIndex(countries),
		FetchedAt: fetchedAt,
		Origin:    origin,
	}
}

// Border is a neighbouring country, named when it is in the index.
type Border struct {
	CCA3 string `json:"cca3" yaml:"cca3"`
	Name string `json:"name" yaml:"name"`
}

// Detail is the single-country view.
type Detail struct {
	Country    country.Country `json:"country" yaml:"country"`
	Capital    string          `json:"capital" yaml:"capital"`
	Population string          `json:"population" yaml:"population"`
	Area       string          `json:"area" yaml:"area"`
	Currencies string          `json:"currencies" yaml:"currencies"`
	Languages  string          `json:"languages" yaml:"languages"`
	Subregion  string          `json:"subregion" yaml:"subregion"`
	Geohash    string          `json:"geohash,omitempty" yaml:"geohash,omitempty"`
	Borders    []Border        `json:"borders" yaml:"borders"`
	// Partial is set when only the list-view record was available.
	Partial bool `json:"partial" yaml:"partial"`
}

// NewDetail formats c for display. Border codes missing from idx keep the
// code as their name.
func NewDetail(c country.Country, idx *geography.Index, partial bool) Detail {
	d := Detail{
		Country:    c,
		Capital:    c.PrimaryCapital(),
		Population: country.GroupDigits(c.Population),
		Area:       country.FormatArea(c.Area),
		Currencies: c.CurrencySummary(),
		Languages:  c.LanguageSummary(),
		Subregion:  c.Subregion,
		Geohash:    geography.Geohash(c),
		Borders:    make([]Border, 0, len(c.Borders)),
		Partial:    partial,
	}
	if d.Subregion == "" {
		d.Subregion = country.NotAvailable
	}
	for _, code := range c.Borders {
		b := Border{CCA3: code, Name: code}
		if n, ok := idx.Lookup(code); ok && n.Name.Common != "" {
			b.Name = n.Name.Common
		}
		d.Borders = append(d.Borders, b)
	}
	return d
}

// UnnamedBorders lists border codes whose name could not be resolved.
func (d Detail) UnnamedBorders() []string {
	var out []string
	for _, b := range d.Borders {
		if b.Name == b.CCA3 {
			out = append(out, b.CCA3)
		}
	}
	return out
}

// NameBorders fills border names from extra records fetched separately.
func (d *Detail) NameBorders(extra []country.Country) {
	byCode := make(map[string]string, len(extra))
	for _, c := range extra {
		byCode[c.CCA3] = c.Name.Common
	}
	for i, b := range d.Borders {
		if n, ok := byCode[b.CCA3]; ok && n != "" {
			d.Borders[i].Name = n
		}
	}
}
