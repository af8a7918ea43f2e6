// Package amount extracts dollar magnitudes from the loosely typed
// savings values produced by the content generator. Generator output for
// the same field has been observed as a plain number, a currency string
// ("$105,000"), a suffixed string ("$105k"), or a free-text formula with
// embedded counts and percentages. Extraction must never fail: anything
// unparseable is worth 0.
package amount

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches a signed integer or decimal with an optional
// immediately-adjacent k/m scale suffix. The suffix must touch the
// digits: "150k" scales, "12 months" does not.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?[kKmM]?`)

// Extract converts a raw savings value into a float64 dollar amount.
// Numeric inputs pass through unchanged. Strings go through the scanner
// below. Everything else, including nil, is 0.
func Extract(raw interface{}) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fromString(v.String())
		}
		return f
	case string:
		return fromString(v)
	default:
		return 0
	}
}

// fromString scans text for numeric substrings and returns the one with
// the largest magnitude, scaled by its own k/m suffix. The largest
// magnitude is a domain heuristic: generator text embeds counts and
// percentages next to the dollar figure, and the dollar figure dominates.
// A string with a larger non-currency quantity would defeat it; the
// behavior is kept as observed.
func fromString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Thousands separators would split "105,000" into two candidates.
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")

	matches := numberPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0
	}

	best := 0.0
	found := false
	for _, m := range matches {
		multiplier := 1.0
		switch {
		case strings.HasSuffix(m, "k"), strings.HasSuffix(m, "K"):
			multiplier = 1_000
			m = m[:len(m)-1]
		case strings.HasSuffix(m, "m"), strings.HasSuffix(m, "M"):
			multiplier = 1_000_000
			m = m[:len(m)-1]
		}

		val, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		val *= multiplier

		if !found || math.Abs(val) > math.Abs(best) {
			best = val
			found = true
		}
	}
	if !found {
		return 0
	}
	return math.Abs(best)
}
