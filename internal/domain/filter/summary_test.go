package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, "Showing 250 countries", Summarize(250, 250, ""))
	assert.Equal(t, "Showing 250 countries", Summarize(250, 12, "  "))
	assert.Equal(t, "No countries found", Summarize(250, 0, "zzz"))
	assert.Equal(t, "Found 3 of 250 countries", Summarize(250, 3, "land"))
}

func TestSummarize_IgnoresStructuredFilters(t *testing.T) {
	s := Selection{Region: "Asia", Subregion: All, Population: All}
	filtered := Apply(sample(), "", s)
	assert.Equal(t, "Showing 5 countries", Summarize(len(sample()), len(filtered), ""))
}

func TestMapCaption(t *testing.T) {
	assert.Equal(t, "Showing all 250 countries", MapCaption(250, 250))
	assert.Equal(t, "Highlighting 10 of 250 countries", MapCaption(250, 10))
}

func TestNewLegend(t *testing.T) {
	assert.Equal(t, Legend{Matching: 10, Available: 240}, NewLegend(250, 10))
}
