package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/domain/filter"
)

var (
	searchRegion     string
	searchSubregion  string
	searchPopulation string
	searchLimit      int
)

// Shared by every command that prints.
var (
	outputFormat string
	colorFlag    string
	noColorFlag  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search and filter countries",
	Long: "Matches the query against name, capital, region and subregion, " +
		"narrowed by --region, --subregion and --population.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchRegion, "region", filter.All, "Region: All, Africa, Americas, Asia, Europe or Oceania")
	f.StringVar(&searchSubregion, "subregion", filter.All, "Subregion, or All")
	f.StringVar(&searchPopulation, "population", filter.All, "Population range label, e.g. \"10M - 100M\"")
	f.IntVarP(&searchLimit, "limit", "n", filter.DefaultPageSize, "Max countries to list (0 = all)")

	for _, c := range []*cobra.Command{searchCmd, showCmd, nearestCmd, regionCmd, filtersCmd, mapCmd, cacheInfoCmd, configCmd} {
		addOutputFlags(c)
	}
}

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outputFormat, "output", "o", outputText, "Output format: text, json or yaml")
	c.Flags().StringVar(&colorFlag, "color", "auto", "Colorize output: auto, always, never")
	c.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable color output")
}

func colors() palette {
	return palette(resolveColor(colorFlag, noColorFlag))
}

// searchRequest validates the filter flags into a Request.
func searchRequest(query string) (explorer.Request, error) {
	sel := filter.DefaultSelection().WithRegion(searchRegion)
	sel.Subregion = searchSubregion
	sel.Population = searchPopulation
	sel = sel.Normalize()

	if !filter.IsRegion(sel.Region) {
		return explorer.Request{}, fmt.Errorf("unknown region %q", sel.Region)
	}
	if sel.Population != filter.All {
		if _, ok := filter.LookupBucket(sel.Population); !ok {
			return explorer.Request{}, fmt.Errorf("unknown population range %q (want one of %v)", sel.Population, filter.BucketLabels())
		}
	}
	if searchLimit < 0 {
		return explorer.Request{}, fmt.Errorf("--limit must not be negative")
	}
	return explorer.Request{Query: query, Selection: sel, Limit: searchLimit}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	req, err := searchRequest(query)
	if err != nil {
		return err
	}

	s, err := load(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	ds, _ := s.catalog.Snapshot()
	list := explorer.ListView(ds.Countries, req)
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, list, func() string {
		return formatList(list, query, p)
	})
}
