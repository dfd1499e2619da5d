package deposit

import (
	"fmt"
	"strings"
)

// Category is the quality class of the material extracted at a deposit.
type Category int

const (
	Crude Category = iota
	Refined
	Shale
	Heavy
	Light
)

type categoryInfo struct {
	name        string
	description string
}

var categoryTable = [...]categoryInfo{
	Crude:   {name: "CRUDE", description: "unprocessed petroleum"},
	Refined: {name: "REFINED", description: "processed petroleum products"},
	Shale:   {name: "SHALE", description: "oil recovered from shale formations"},
	Heavy:   {name: "HEAVY", description: "high-density, high-viscosity crude"},
	Light:   {name: "LIGHT", description: "low-density crude"},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i := range categoryTable {
		out[i] = Category(i)
	}
	return out
}

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	return c >= 0 && int(c) < len(categoryTable)
}

// String returns the canonical upper-case name of the category.
func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryTable[c].name
}

// Description returns a short human-readable description.
func (c Category) Description() string {
	if !c.IsValid() {
		return ""
	}
	return categoryTable[c].description
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, info := range categoryTable {
		if info.name == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
