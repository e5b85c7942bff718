package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/adapters/geojson"
	"github.com/corey/wce/internal/domain/explorer"
)

var mapCmd = &cobra.Command{
	Use:   "map [query]",
	Short: "Classify the geometry file against a search",
	Long:  "Resolves every feature of --geometry to a country and reports which ones the search highlights.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMap,
}

func init() {
	f := mapCmd.Flags()
	f.StringVar(&searchRegion, "region", "All", "Region filter")
	f.StringVar(&searchSubregion, "subregion", "All", "Subregion filter")
	f.StringVar(&searchPopulation, "population", "All", "Population range label")
}

func runMap(cmd *cobra.Command, args []string) error {
	if cfg.GeometryPath == "" {
		return fmt.Errorf("no geometry file, set --geometry or WCE_GEOMETRY")
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	req, err := searchRequest(query)
	if err != nil {
		return err
	}

	set, err := geojson.Load(cfg.GeometryPath)
	if err != nil {
		return err
	}

	s, err := load(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	ds, _ := s.catalog.Snapshot()
	m := explorer.MapView(ds.Countries, explorer.Filter(ds.Countries, req), ds.Index, set.Geometries)
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, m, func() string {
		return formatMap(m, p)
	})
}
