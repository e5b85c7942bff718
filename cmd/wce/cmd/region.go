package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/domain/filter"
)

var regionCmd = &cobra.Command{
	Use:   "region <name>",
	Short: "List every country of a region straight from the service",
	Long:  "Unlike search --region, this asks the service directly and includes non-independent territories.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegion,
}

func runRegion(cmd *cobra.Command, args []string) error {
	if !filter.IsRegion(args[0]) || args[0] == filter.All {
		return fmt.Errorf("unknown region %q (want one of %v)", args[0], filter.Regions)
	}
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	countries, err := s.client.ByRegion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name.Common < countries[j].Name.Common })

	list := explorer.ListView(countries, explorer.Request{})
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, list, func() string {
		return formatList(list, "", p)
	})
}
