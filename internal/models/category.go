package models

import (
	"fmt"
	"strings"
)

// Category is one entry of the fixed expense taxonomy
type Category string

// Expense categories, in report order
const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySports    Category = "sports"
	CategoryEducation Category = "education"
)

var taxonomy = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySports,
	CategoryEducation,
}

// Taxonomy returns the fixed category list in report order.
// The returned slice is a copy and may be modified by the caller.
func Taxonomy() []Category {
	out := make([]Category, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// TaxonomyNames returns the category names in report order
func TaxonomyNames() []string {
	names := make([]string, len(taxonomy))
	for i, c := range taxonomy {
		names[i] = string(c)
	}
	return names
}

// IsValid checks if the category belongs to the taxonomy
func (c Category) IsValid() bool {
	for _, valid := range taxonomy {
		if c == valid {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a raw string into a taxonomy category
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", raw)
	}
	return c, nil
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	return Category(category).IsValid()
}
