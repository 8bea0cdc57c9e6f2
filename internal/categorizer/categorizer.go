// Package categorizer maps payroll transaction memos to insurance categories.
package categorizer

import (
	"strings"

	"fjacquet/insurance-summary/internal/models"
)

// Rule matches a memo when it contains Marker and none of Exclude.
type Rule struct {
	Category models.Category
	Marker   string
	Exclude  []string
}

// Matches reports whether memo satisfies the rule. Matching is a
// case-sensitive substring test.
func (r Rule) Matches(memo string) bool {
	if !strings.Contains(memo, r.Marker) {
		return false
	}
	for _, ex := range r.Exclude {
		if strings.Contains(memo, ex) {
			return false
		}
	}
	return true
}

// Rules are evaluated in order; the first match wins.
var Rules = []Rule{
	{Category: models.CategoryHealthInsurance, Marker: "Health Insurance", Exclude: []string{"S-Corp"}},
	{Category: models.CategoryDentalInsurance, Marker: "Dental Insurance"},
	{Category: models.CategoryAdvantageGroup, Marker: "Insurance - Advantage Group"},
	{Category: models.CategoryFederalUnemployment, Marker: "Federal Unemployment"},
	{Category: models.CategoryWISUIEmployer, Marker: "WI SUI Employer"},
}

// Categorize returns the category for memo, or false when no rule applies.
func Categorize(memo string) (models.Category, bool) {
	rule, ok := Match(memo)
	if !ok {
		return "", false
	}
	return rule.Category, true
}

// Match returns the first rule matching memo.
func Match(memo string) (Rule, bool) {
	for _, rule := range Rules {
		if rule.Matches(memo) {
			return rule, true
		}
	}
	return Rule{}, false
}
