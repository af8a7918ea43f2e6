// Package benchmark maps a free-text industry label and an optional
// annual revenue figure onto a profile of contact-center operating
// metrics. Matching is permissive: any recognizable substring resolves
// to a known industry, and unmatched input falls back to Technology at
// Medium size so downstream math always has a complete set of numbers.
package benchmark

import (
	"fmt"
	"strconv"
	"strings"
)

// IndustryKey identifies one of the industries the dataset covers.
type IndustryKey string

const (
	IndustryUtilities  IndustryKey = "Utilities"
	IndustryRetail     IndustryKey = "Retail"
	IndustryFinance    IndustryKey = "Finance"
	IndustryHealthcare IndustryKey = "Healthcare"
	IndustryInsurance  IndustryKey = "Insurance"
	IndustryTechnology IndustryKey = "Technology"

	// DefaultIndustry is used when no known key matches the input.
	DefaultIndustry = IndustryTechnology
)

// SizeClass buckets a company by annual revenue.
type SizeClass string

const (
	SizeSmall  SizeClass = "Small"
	SizeMedium SizeClass = "Medium"
	SizeLarge  SizeClass = "Large"
)

// Profile is one industry/size cell of the benchmark dataset,
// addressed as profile[category][metric].
type Profile map[string]map[string]float64

// Metric returns a single benchmark value. A missing category or
// metric reads as zero rather than panicking, but is logged because it
// points at a renamed key somewhere.
func (p Profile) Metric(category, name string) float64 {
	values, ok := p[category]
	if !ok {
		fmt.Printf("[BENCHMARK] Unknown category requested: %s\n", category)
		return 0
	}
	v, ok := values[name]
	if !ok {
		fmt.Printf("[BENCHMARK] Unknown metric requested: %s.%s\n", category, name)
		return 0
	}
	return v
}

// clone deep-copies a profile so each request gets its own mutable view
// of the shared static table.
func (p Profile) clone() Profile {
	out := make(Profile, len(p))
	for category, values := range p {
		copied := make(map[string]float64, len(values))
		for name, v := range values {
			copied[name] = v
		}
		out[category] = copied
	}
	return out
}

// Resolve picks the benchmark profile for an industry label and an
// optional annual revenue. It never fails: unknown industries resolve
// to the default, missing revenue keeps the Medium size class.
func Resolve(industry string, revenue *float64) (Profile, SizeClass, IndustryKey) {
	// 1. Normalize industry. Substring match against the known keys in
	// fixed order, first hit wins.
	key := DefaultIndustry
	if industry != "" {
		lowered := strings.ToLower(industry)
		for _, candidate := range industryOrder {
			if strings.Contains(lowered, strings.ToLower(string(candidate))) {
				key = candidate
				break
			}
		}
	}

	// 2. Determine size. Absent or zero revenue keeps the default.
	size := SizeMedium
	if revenue != nil && *revenue != 0 {
		thresholds, ok := sizeDefinitions[key]
		if !ok {
			thresholds = defaultThresholds
		}
		switch {
		case *revenue < thresholds.Small:
			size = SizeSmall
		case *revenue < thresholds.Medium:
			size = SizeMedium
		default:
			size = SizeLarge
		}
	}

	// 3. Retrieve the profile. Retail/Medium is the safety net if a
	// table cell is ever missing.
	profile := industryProfiles[key][size]
	if len(profile) == 0 {
		profile = industryProfiles[IndustryRetail][SizeMedium]
	}
	return profile.clone(), size, key
}

// ParseRevenue reads a revenue figure the way users type it, with
// currency symbols and thousands separators stripped. Returns nil when
// the input is empty or not a number.
func ParseRevenue(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
