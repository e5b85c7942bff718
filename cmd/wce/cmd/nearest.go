package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/geography"
)

var (
	nearestLat float64
	nearestLng float64
)

type nearestResult struct {
	Country    country.Country `json:"country" yaml:"country"`
	DistanceKm float64         `json:"distance_km" yaml:"distance_km"`
	Geohash    string          `json:"geohash" yaml:"geohash"`
}

var nearestCmd = &cobra.Command{
	Use:   "nearest --lat <deg> --lng <deg>",
	Short: "Find the country whose reference point is closest",
	Args:  cobra.NoArgs,
	RunE:  runNearest,
}

func init() {
	nearestCmd.Flags().Float64Var(&nearestLat, "lat", 0, "Latitude in degrees")
	nearestCmd.Flags().Float64Var(&nearestLng, "lng", 0, "Longitude in degrees")
	nearestCmd.MarkFlagRequired("lat")
	nearestCmd.MarkFlagRequired("lng")
}

func runNearest(cmd *cobra.Command, args []string) error {
	if !geography.ValidCoordinates(nearestLat, nearestLng) {
		return fmt.Errorf("invalid coordinates %g, %g", nearestLat, nearestLng)
	}
	s, err := load(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	ds, _ := s.catalog.Snapshot()
	c, km, ok := geography.Nearest(ds.Countries, nearestLat, nearestLng)
	if !ok {
		return fmt.Errorf("no country has coordinates")
	}
	res := nearestResult{Country: c, DistanceKm: km, Geohash: geography.Geohash(c)}
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, res, func() string {
		return fmt.Sprintf("%s %s, %.0f km away (%s)\n", p.wrap(colorCyan, c.CCA3), p.wrap(colorBold, c.Name.Common), km, res.Geohash)
	})
}
