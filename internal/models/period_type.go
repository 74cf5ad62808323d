package models

import (
	"fmt"
	"strings"
)

// PeriodType is the length of a budget window.
type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// Valid reports whether p is one of the supported period types
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	default:
		return false
	}
}

// String returns the period name
func (p PeriodType) String() string {
	return string(p)
}

// ParsePeriodType parses a period name case-insensitively.
func ParsePeriodType(s string) (PeriodType, error) {
	p := PeriodType(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown period type '%s' (must be weekly, monthly or yearly)", s)
	}
	return p, nil
}
