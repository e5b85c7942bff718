package geography

import "github.com/corey/wce/internal/domain/country"

func catalog() []country.Country {
	return []country.Country{
		{Name: country.Name{Common: "France", Official: "French Republic"}, CCA2: "FR", CCA3: "FRA", LatLng: []float64{46, 2}},
		{Name: country.Name{Common: "United States", Official: "United States of America"}, CCA2: "US", CCA3: "USA", LatLng: []float64{38, -97}},
		{Name: country.Name{Common: "United Kingdom", Official: "United Kingdom of Great Britain and Northern Ireland"}, CCA2: "GB", CCA3: "GBR", LatLng: []float64{54, -2}},
		{Name: country.Name{Common: "Japan", Official: "Japan"}, CCA2: "JP", CCA3: "JPN", LatLng: []float64{36, 138}},
		{Name: country.Name{Common: "Bouvet Island", Official: "Bouvet Island"}, CCA2: "BV", CCA3: "BVT"},
	}
}

func geom(props ...Property) Geometry {
	return Geometry{Properties: props}
}
