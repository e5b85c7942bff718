package geography

// UnknownName labels a feature that carries no usable name.
const UnknownName = "Unknown"

// DisplayName prefers the resolved country's common name and falls back to the
// feature's own name properties.
func DisplayName(g Geometry, idx *Index) string {
	if c, ok := idx.Resolve(g); ok && c.Name.Common != "" {
		return c.Name.Common
	}
	for _, k := range []PropertyKey{PropNameEN, PropName, PropNameLow, PropAdmin} {
		if v := g.Get(k); v != "" {
			return v
		}
	}
	return UnknownName
}
