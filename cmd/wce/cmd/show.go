package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/ports"
)

var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one country in detail",
	Long:  "Looks up a country by cca2, cca3 or cioc code and prints the full record with named borders.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := load(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	code := args[0]
	d, err := s.catalog.Detail(cmd.Context(), code)
	if errors.Is(err, ports.ErrNotFound) {
		ds, _ := s.catalog.Snapshot()
		if sug, _, ok := ds.Index.Suggest(code); ok {
			return fmt.Errorf("no country with code %q, did you mean %s (%s)?", code, sug.Name.Common, sug.CCA3)
		}
		return fmt.Errorf("no country with code %q", code)
	}
	if err != nil {
		return err
	}

	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, d, func() string {
		return formatDetail(*d, p)
	})
}
