package amount

import (
	"encoding/json"
	"math"
	"testing"
)

func TestExtractCurrencyStrings(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"formatted dollars", "$105,000", 105000.0},
		{"k suffix", "$105k", 105000.0},
		{"m suffix", "$1.5m", 1500000.0},
		{"uppercase suffix", "250K", 250000.0},
		{"plain integer string", "42000", 42000.0},
		{"decimal string", "1250.50", 1250.50},
		{"empty string", "", 0.0},
		{"whitespace only", "   ", 0.0},
		{"no digits", "not applicable", 0.0},
		{"nil input", nil, 0.0},
		{"numeric passthrough int", 42000, 42000.0},
		{"numeric passthrough float", 42000.0, 42000.0},
		{"bool is worthless", true, 0.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Extract(c.input)
			if math.Abs(got-c.want) > 0.0001 {
				t.Errorf("Extract(%v) = %f, want %f", c.input, got, c.want)
			}
		})
	}
}

func TestExtractPicksLargestMagnitude(t *testing.T) {
	// Generator formula text: 15 and 45 are a count and a percentage,
	// $150k is the dollar figure. 150k = 150,000 beats both.
	got := Extract("15 Incidents * $150k cost * 45% avoided")
	if got != 150000.0 {
		t.Errorf("expected 150000 (the $150k term), got %f", got)
	}

	// Same rule without a suffix in play.
	got = Extract("saves 320 hours at $85/hr, roughly $27,200 annually")
	if got != 27200.0 {
		t.Errorf("expected 27200, got %f", got)
	}
}

func TestExtractSuffixMustTouchDigits(t *testing.T) {
	// "12 months" must not read as 12 million.
	got := Extract("savings over 12 months: $4,800")
	if got != 4800.0 {
		t.Errorf("expected 4800, got %f", got)
	}
}

func TestExtractIsNonNegativeForText(t *testing.T) {
	inputs := []string{"-500", "loss of -12000 avoided", "($3,000)"}
	for _, in := range inputs {
		if got := Extract(in); got < 0 {
			t.Errorf("Extract(%q) = %f, want non-negative", in, got)
		}
	}
}

func TestExtractDeterminism(t *testing.T) {
	inputs := []interface{}{"$105,000", "$105k", "15 Incidents * $150k cost * 45% avoided", "", nil, 42000}
	for _, in := range inputs {
		first := Extract(in)
		second := Extract(in)
		if first != second {
			t.Errorf("Extract(%v) not deterministic: %f then %f", in, first, second)
		}
	}
}

func TestExtractJSONNumber(t *testing.T) {
	got := Extract(json.Number("99500"))
	if got != 99500.0 {
		t.Errorf("expected 99500, got %f", got)
	}
}
