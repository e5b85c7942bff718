package filter

import "github.com/corey/wce/internal/domain/country"

func sample() []country.Country {
	return []country.Country{
		{
			Name:       country.Name{Common: "France", Official: "French Republic"},
			Capital:    []string{"Paris"},
			Population: 67_391_582,
			Region:     "Europe",
			Subregion:  "Western Europe",
			CCA2:       "FR",
			CCA3:       "FRA",
		},
		{
			Name:       country.Name{Common: "Germany", Official: "Federal Republic of Germany"},
			Capital:    []string{"Berlin"},
			Population: 83_240_525,
			Region:     "Europe",
			Subregion:  "Western Europe",
			CCA2:       "DE",
			CCA3:       "DEU",
		},
		{
			Name:       country.Name{Common: "Japan", Official: "Japan"},
			Capital:    []string{"Tokyo"},
			Population: 125_836_021,
			Region:     "Asia",
			Subregion:  "Eastern Asia",
			CCA2:       "JP",
			CCA3:       "JPN",
		},
		{
			Name:       country.Name{Common: "Iceland", Official: "Iceland"},
			Capital:    []string{"Reykjavik"},
			Population: 366_425,
			Region:     "Europe",
			Subregion:  "Northern Europe",
			CCA2:       "IS",
			CCA3:       "ISL",
		},
		{
			Name:       country.Name{Common: "Antarctica", Official: "Antarctica"},
			Population: 1000,
			Region:     "Antarctic",
			CCA2:       "AQ",
			CCA3:       "ATA",
		},
	}
}

func names(cs []country.Country) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name.Common)
	}
	return out
}
