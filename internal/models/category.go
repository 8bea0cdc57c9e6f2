// Package models provides the data structures shared by the extraction,
// aggregation and layout stages.
package models

// Category is one of the insurance or payroll-tax classifications a
// transaction memo can map to.
type Category string

// The closed set of categories, in rule priority order.
const (
	CategoryHealthInsurance     Category = "Health Insurance"
	CategoryDentalInsurance     Category = "Dental Insurance"
	CategoryAdvantageGroup      Category = "Advantage Group Insurance"
	CategoryFederalUnemployment Category = "Federal Unemployment"
	CategoryWISUIEmployer       Category = "WI SUI Employer"
)

// AllCategories lists every category in rule priority order.
var AllCategories = []Category{
	CategoryHealthInsurance,
	CategoryDentalInsurance,
	CategoryAdvantageGroup,
	CategoryFederalUnemployment,
	CategoryWISUIEmployer,
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a display name to a Category.
func ParseCategory(name string) (Category, bool) {
	for _, c := range AllCategories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
