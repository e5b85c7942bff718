package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/domain/filter"
	"github.com/corey/wce/internal/domain/geography"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// palette applies ANSI codes only when enabled.
type palette bool

func (p palette) wrap(code, s string) string {
	if !p {
		return s
	}
	return code + s + colorReset
}

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// resolveColor determines whether to use color output based on flags and TTY status.
func resolveColor(colorFlag string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return isStdoutTTY()
	}
}

// write renders v as JSON or YAML, or calls text for the terminal form.
func write(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputText, "":
		_, err := io.WriteString(w, text())
		return err
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// highlight marks query matches in s for the terminal.
func highlight(s, query string, p palette) string {
	if !p {
		return s
	}
	marked := filter.Highlight(s, query)
	marked = strings.ReplaceAll(marked, "<mark>", colorBold+colorYellow)
	return strings.ReplaceAll(marked, "</mark>", colorReset)
}

// formatList renders the list view.
//
//	⚡ Found 2 of 195 countries │ Region: Europe
//	  FRA  France · Paris · Europe / Western Europe · 67.4M
func formatList(l explorer.List, query string, p palette) string {
	var sb strings.Builder
	sb.WriteString(p.wrap(colorBold, "⚡ "+l.Summary))
	for _, b := range l.Badges {
		sb.WriteString(" │ " + b.Label + ": " + b.Value)
	}
	sb.WriteString("\n")

	for _, c := range l.Countries {
		region := highlight(c.Region, query, p)
		if c.Subregion != "" {
			region += " / " + highlight(c.Subregion, query, p)
		}
		fmt.Fprintf(&sb, "  %s  %s · %s · %s · %s\n",
			p.wrap(colorCyan, fmt.Sprintf("%-3s", c.CCA3)),
			highlight(c.Name.Common, query, p),
			highlight(c.PrimaryCapital(), query, p),
			region,
			p.wrap(colorGray, country.ShortPopulation(c.Population)),
		)
	}
	if l.HasMore {
		fmt.Fprintf(&sb, "  %s\n", p.wrap(colorGray, fmt.Sprintf("… %d more, use --limit 0 to show all", l.Matched-len(l.Countries))))
	}
	return sb.String()
}

// formatDetail renders the single-country view.
func formatDetail(d explorer.Detail, p palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", p.wrap(colorBold, d.Country.Name.Common), p.wrap(colorGray, d.Country.Name.Official))
	row := func(label, value string) {
		fmt.Fprintf(&sb, "  %-12s %s\n", label+":", value)
	}
	row("Code", d.Country.CCA2+" / "+d.Country.CCA3)
	row("Capital", d.Capital)
	row("Region", d.Country.Region)
	row("Subregion", d.Subregion)
	row("Population", d.Population)
	row("Area", d.Area)
	row("Currencies", d.Currencies)
	row("Languages", d.Languages)
	if d.Geohash != "" {
		row("Geohash", d.Geohash)
	}

	borders := "None"
	if len(d.Borders) > 0 {
		names := make([]string, 0, len(d.Borders))
		for _, b := range d.Borders {
			names = append(names, b.Name)
		}
		borders = strings.Join(names, ", ")
	}
	row("Borders", borders)
	if d.Partial {
		sb.WriteString(p.wrap(colorYellow, "  (details unavailable, showing summary record)") + "\n")
	}
	return sb.String()
}

// formatMap renders the caption, legend and one line per feature class.
func formatMap(m explorer.Map, p palette) string {
	var sb strings.Builder
	sb.WriteString(p.wrap(colorBold, "⚡ "+m.Caption) + "\n")
	fmt.Fprintf(&sb, "  %s matching %d │ available %d\n", p.wrap(colorGreen, "■"), m.Legend.Matching, m.Legend.Available)

	byClass := map[geography.Class][]string{}
	for _, f := range m.Features {
		byClass[f.Class] = append(byClass[f.Class], f.Name)
	}
	for _, class := range []geography.Class{geography.Filtered, geography.HasData, geography.NoData} {
		names := byClass[class]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %-9s %3d  %s\n", class.String(), len(names), p.wrap(colorGray, strings.Join(names, ", ")))
	}
	return sb.String()
}
