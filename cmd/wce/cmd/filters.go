package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/domain/filter"
)

type filterOptions struct {
	Regions     []string        `json:"regions" yaml:"regions"`
	Subregions  []string        `json:"subregions" yaml:"subregions"`
	Populations []filter.Bucket `json:"populations" yaml:"populations"`
}

var filtersCmd = &cobra.Command{
	Use:   "filters [region]",
	Short: "List the values accepted by the search filters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFilters,
}

func runFilters(cmd *cobra.Command, args []string) error {
	region := filter.All
	if len(args) == 1 {
		region = args[0]
	}
	if !filter.IsRegion(region) {
		return fmt.Errorf("unknown region %q", region)
	}

	s, err := load(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	ds, _ := s.catalog.Snapshot()
	opts := filterOptions{
		Regions:     append([]string{filter.All}, filter.Regions...),
		Subregions:  filter.SubregionOptions(ds.Countries, region),
		Populations: filter.PopulationBuckets,
	}
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, opts, func() string {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", p.wrap(colorBold, "Regions:   "), strings.Join(opts.Regions, ", "))
		fmt.Fprintf(&sb, "%s %s\n", p.wrap(colorBold, "Subregions:"), strings.Join(opts.Subregions, ", "))
		fmt.Fprintf(&sb, "%s %s\n", p.wrap(colorBold, "Population:"), strings.Join(filter.BucketLabels(), ", "))
		return sb.String()
	})
}
