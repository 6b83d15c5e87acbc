package parcel

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Category is the descriptive tag of a parcel's contents.
// It has no effect on pricing or routing and is used for statistics grouping.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	CategoryClothes
	CategorySpareParts
	CategoryGroceries
	CategoryBooks
	CategoryMedications
	CategoryHomeAppliances
	CategoryMiscellaneous
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryClothes:        "CLOTHES",
		CategorySpareParts:     "SPARE_PARTS",
		CategoryGroceries:      "GROCERIES",
		CategoryBooks:          "BOOKS",
		CategoryMedications:    "MEDICATIONS",
		CategoryHomeAppliances: "HOME_APPLIANCES",
		CategoryMiscellaneous:  "MISCELLANEOUS",
	}
}

// AllCategories returns every valid category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryClothes,
		CategorySpareParts,
		CategoryGroceries,
		CategoryBooks,
		CategoryMedications,
		CategoryHomeAppliances,
		CategoryMiscellaneous,
	}
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire name of the category, or "UNKNOWN" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// CategoryFromString parses a category from its wire name.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category name", s),
	)
}
