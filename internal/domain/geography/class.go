package geography

import "fmt"

// Class is how a geometry is rendered relative to the current filter.
type Class int

const (
	NoData Class = iota
	HasData
	Filtered
)

var classNames = [...]string{"no-data", "has-data", "filtered"}

func (c Class) String() string {
	if int(c) < len(classNames) && c >= 0 {
		return classNames[c]
	}
	return "unknown"
}

// MarshalText renders the class name in JSON and YAML.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a class name written by MarshalText.
func (c *Class) UnmarshalText(b []byte) error {
	for i, name := range classNames {
		if name == string(b) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown map class %q", b)
}

// Fill is the resting fill color.
func (c Class) Fill() string {
	switch c {
	case Filtered:
		return "#93c5fd"
	case HasData:
		return "#d1d5db"
	default:
		return "#e5e7eb"
	}
}

// HoverFill is the fill color under the pointer.
func (c Class) HoverFill() string {
	switch c {
	case Filtered:
		return "#3b82f6"
	case HasData:
		return "#6b7280"
	default:
		return "#9ca3af"
	}
}
