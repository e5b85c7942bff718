package geography

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClass_Palette(t *testing.T) {
	assert.Equal(t, "#93c5fd", Filtered.Fill())
	assert.Equal(t, "#3b82f6", Filtered.HoverFill())
	assert.Equal(t, "#d1d5db", HasData.Fill())
	assert.Equal(t, "#6b7280", HasData.HoverFill())
	assert.Equal(t, "#e5e7eb", NoData.Fill())
	assert.Equal(t, "#9ca3af", NoData.HoverFill())
}

func TestClass_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Class{"c": Filtered})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"filtered"}`, string(b))
	assert.Equal(t, "unknown", Class(9).String())

	var back map[string]Class
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Filtered, back["c"])
	assert.Error(t, json.Unmarshal([]byte(`{"c":"purple"}`), &back))
}

func TestDisplayName(t *testing.T) {
	idx := NewIndex(catalog())

	assert.Equal(t, "United Kingdom", DisplayName(geom(Property{Key: PropAdmin, Value: "uk"}), idx))
	assert.Equal(t, "Atlantis", DisplayName(geom(
		Property{Key: PropAdmin, Value: "Kingdom of Atlantis"},
		Property{Key: PropNameEN, Value: "Atlantis"},
	), idx))
	assert.Equal(t, "Kingdom of Atlantis", DisplayName(geom(Property{Key: PropAdmin, Value: "Kingdom of Atlantis"}), idx))
	assert.Equal(t, "Unknown", DisplayName(geom(Property{Key: PropNameLong, Value: "Nowhere Long"}), idx))
}
