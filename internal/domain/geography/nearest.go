package geography

import (
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"

	"github.com/corey/wce/internal/domain/country"
)

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0088

// ValidCoordinates rejects NaN, infinities and out-of-range degrees.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Nearest returns the country whose centroid is closest to (lat, lng) by
// great-circle distance. Records without coordinates are skipped. Ties keep
// the earlier record.
func Nearest(countries []country.Country, lat, lng float64) (country.Country, float64, bool) {
	if !ValidCoordinates(lat, lng) {
		return country.Country{}, 0, false
	}
	query := s2.LatLngFromDegrees(lat, lng)

	best := -1
	bestDist := math.MaxFloat64
	for i, c := range countries {
		clat, clng, ok := c.Coordinates()
		if !ok {
			continue
		}
		d := float64(query.Distance(s2.LatLngFromDegrees(clat, clng)))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return country.Country{}, 0, false
	}
	return countries[best], bestDist * EarthRadiusKm, true
}

// Geohash encodes the record's centroid, or "" when it has none.
func Geohash(c country.Country) string {
	lat, lng, ok := c.Coordinates()
	if !ok {
		return ""
	}
	return geohash.Encode(lat, lng)
}
