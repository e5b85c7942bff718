// Package country defines the normalized country record delivered by the
// restcountries service, plus the small formatting helpers the list and
// detail views share.
//
// Records are read-only after fetch. Nothing in this package mutates a
// Country; every helper takes the value it needs and returns a new one.
package country

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NotAvailable is shown wherever an optional field is absent.
const NotAvailable = "N/A"

// Name holds the common and official names of a country.
type Name struct {
	Common   string `json:"common" yaml:"common"`
	Official string `json:"official" yaml:"official"`
}

// Flags holds image references for a country's flag. Not used for filtering.
type Flags struct {
	PNG string `json:"png,omitempty" yaml:"png,omitempty"`
	SVG string `json:"svg,omitempty" yaml:"svg,omitempty"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Currency describes one entry of a country's currency map.
type Currency struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Country is one record of the fetched collection. Optional fields are left
// at their zero value when the upstream service omits them: an empty
// Subregion means "no subregion", a zero Area means "unknown".
type Country struct {
	Name       Name                `json:"name" yaml:"name"`
	Capital    []string            `json:"capital,omitempty" yaml:"capital,omitempty"`
	Population int64               `json:"population" yaml:"population"`
	Region     string              `json:"region" yaml:"region"`
	Subregion  string              `json:"subregion,omitempty" yaml:"subregion,omitempty"`
	Flags      Flags               `json:"flags" yaml:"flags"`
	Currencies map[string]Currency `json:"currencies,omitempty" yaml:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty" yaml:"languages,omitempty"`
	Borders    []string            `json:"borders,omitempty" yaml:"borders,omitempty"`
	Area       float64             `json:"area,omitempty" yaml:"area,omitempty"`
	LatLng     []float64           `json:"latlng,omitempty" yaml:"latlng,omitempty"`
	CCA2       string              `json:"cca2" yaml:"cca2"`
	CCA3       string              `json:"cca3" yaml:"cca3"`
	CIOC       string              `json:"cioc,omitempty" yaml:"cioc,omitempty"`
}

// Keys returns the lower-cased identity keys of the record in a fixed order:
// cca2, cca3, common name, official name. Empty values are skipped.
func (c Country) Keys() []string {
	keys := make([]string, 0, 4)
	for _, k := range []string{c.CCA2, c.CCA3, c.Name.Common, c.Name.Official} {
		if k == "" {
			continue
		}
		keys = append(keys, strings.ToLower(k))
	}
	return keys
}

// PrimaryCapital returns the first listed capital, or "N/A".
func (c Country) PrimaryCapital() string {
	if len(c.Capital) == 0 || c.Capital[0] == "" {
		return NotAvailable
	}
	return c.Capital[0]
}

// Coordinates returns the record's latitude and longitude. ok is false when
// the upstream record carried no usable pair.
func (c Country) Coordinates() (lat, lng float64, ok bool) {
	if len(c.LatLng) < 2 {
		return 0, 0, false
	}
	return c.LatLng[0], c.LatLng[1], true
}

// CurrencySummary renders "Name (Symbol)" entries ordered by currency code.
func (c Country) CurrencySummary() string {
	if len(c.Currencies) == 0 {
		return NotAvailable
	}
	codes := make([]string, 0, len(c.Currencies))
	for code := range c.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]
		parts = append(parts, fmt.Sprintf("%s (%s)", cur.Name, cur.Symbol))
	}
	return strings.Join(parts, ", ")
}

// LanguageSummary renders language display names ordered by language code.
func (c Country) LanguageSummary() string {
	if len(c.Languages) == 0 {
		return NotAvailable
	}
	codes := make([]string, 0, len(c.Languages))
	for code := range c.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, c.Languages[code])
	}
	return strings.Join(names, ", ")
}

// ShortPopulation abbreviates a head count: 1234567 -> "1.2M", 45678 -> "46K".
func ShortPopulation(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// GroupDigits renders n with comma thousands separators.
func GroupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatArea renders an area in km², or "N/A" when unknown.
func FormatArea(km2 float64) string {
	if km2 <= 0 {
		return NotAvailable
	}
	// Round once to three decimals so a fraction near 1 carries into the
	// whole part.
	intPart, frac, _ := strings.Cut(strconv.FormatFloat(km2, 'f', 3, 64), ".")
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return NotAvailable
	}
	out := GroupDigits(whole)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	return out + " km²"
}
