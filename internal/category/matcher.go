// Package category decides whether a transaction's category label applies to a budget.
//
// Categories are free-text labels, not typed IDs. Matching is exact equality
// after Unicode case folding: "Food" matches "food", but "Food & Dining" does
// not match "Food" and surrounding whitespace is significant. Budget creation
// must therefore use the same vocabulary as transaction entry.
package category

import (
	"golang.org/x/text/cases"
)

// Matcher decides whether a transaction category applies to a budget category
type Matcher interface {
	Matches(transactionCategory, budgetCategory string) bool
}

// CaseInsensitive matches labels that are equal after case folding
type CaseInsensitive struct{}

// NewCaseInsensitive returns the default matcher
func NewCaseInsensitive() CaseInsensitive {
	return CaseInsensitive{}
}

// Matches implements Matcher
func (CaseInsensitive) Matches(transactionCategory, budgetCategory string) bool {
	return Normalize(transactionCategory) == Normalize(budgetCategory)
}

// Normalize returns the comparison key for a category label.
func Normalize(label string) string {
	// cases.Caser carries state, so a fresh one per call keeps this safe for concurrent readers.
	return cases.Fold().String(label)
}

// MatcherFunc adapts a plain function to the Matcher interface
type MatcherFunc func(transactionCategory, budgetCategory string) bool

// Matches implements Matcher
func (f MatcherFunc) Matches(transactionCategory, budgetCategory string) bool {
	return f(transactionCategory, budgetCategory)
}
