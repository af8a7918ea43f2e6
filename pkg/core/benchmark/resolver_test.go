package benchmark

import (
	"math"
	"testing"
)

func TestResolveIndustryMatching(t *testing.T) {
	// Substring match, case-insensitive.
	_, _, key := Resolve("retail", nil)
	if key != IndustryRetail {
		t.Errorf("Expected Retail, got %s", key)
	}

	_, _, key = Resolve("Finance Sector", nil)
	if key != IndustryFinance {
		t.Errorf("Expected Finance, got %s", key)
	}

	// The key must appear literally. "Financial" does not contain
	// "finance", so the label falls to the default.
	_, _, key = Resolve("Financial Services", nil)
	if key != DefaultIndustry {
		t.Errorf("Expected default industry for Financial Services, got %s", key)
	}

	// First match in scan order wins: Finance is checked before
	// Insurance, so a combined label resolves to Finance.
	_, _, key = Resolve("Insurance and Finance Group", nil)
	if key != IndustryFinance {
		t.Errorf("Expected Finance for combined label, got %s", key)
	}

	_, _, key = Resolve("Telecommunications Technology", nil)
	if key != IndustryTechnology {
		t.Errorf("Expected Technology, got %s", key)
	}
}

func TestResolveDefaultIndustry(t *testing.T) {
	_, size, key := Resolve("", nil)
	if key != DefaultIndustry {
		t.Errorf("Expected default industry for empty input, got %s", key)
	}
	if size != SizeMedium {
		t.Errorf("Expected Medium default size, got %s", size)
	}

	_, _, key = Resolve("Underwater Basket Weaving", nil)
	if key != DefaultIndustry {
		t.Errorf("Expected default industry for unknown input, got %s", key)
	}
}

func TestResolveSizeClassification(t *testing.T) {
	// Retail thresholds: Small < 50M, Medium < 2B, else Large.
	rev := 49_999_999.0
	_, size, _ := Resolve("Retail", &rev)
	if size != SizeSmall {
		t.Errorf("Expected Small below threshold, got %s", size)
	}

	rev = 50_000_000.0
	_, size, _ = Resolve("Retail", &rev)
	if size != SizeMedium {
		t.Errorf("Expected Medium at boundary, got %s", size)
	}

	rev = 2_000_000_000.0
	_, size, _ = Resolve("Retail", &rev)
	if size != SizeLarge {
		t.Errorf("Expected Large at upper boundary, got %s", size)
	}

	// Zero and negative revenue must still classify without error.
	rev = 0
	_, size, _ = Resolve("Retail", &rev)
	if size != SizeMedium {
		t.Errorf("Expected Medium for zero revenue, got %s", size)
	}

	rev = -5_000_000
	_, size, _ = Resolve("Retail", &rev)
	if size != SizeSmall {
		t.Errorf("Expected Small for negative revenue, got %s", size)
	}
}

func TestResolveProfileCompleteness(t *testing.T) {
	// Every resolution, including garbage input, must yield all four
	// category keys with populated metrics.
	inputs := []string{"", "Retail", "finance", "???", "Utilities", "health", "insurance carrier", "tech"}
	categories := []string{CategoryOps, CategoryIncidents, CategoryCX, CategoryDev}

	for _, in := range inputs {
		profile, _, _ := Resolve(in, nil)
		for _, cat := range categories {
			metrics, ok := profile[cat]
			if !ok {
				t.Errorf("Input %q: missing category %s", in, cat)
				continue
			}
			if len(metrics) == 0 {
				t.Errorf("Input %q: empty category %s", in, cat)
			}
		}
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	profile, _, _ := Resolve("Technology", nil)
	original := profile[CategoryOps]["avg_cost_per_call"]
	profile[CategoryOps]["avg_cost_per_call"] = -1

	again, _, _ := Resolve("Technology", nil)
	if again[CategoryOps]["avg_cost_per_call"] != original {
		t.Errorf("Resolve must return an independent copy, got %f", again[CategoryOps]["avg_cost_per_call"])
	}
}

func TestResolveSpotValues(t *testing.T) {
	// Technology Medium ops: cost per call 7.00, call volume 1.5M.
	profile, size, key := Resolve("Technology", nil)
	if key != IndustryTechnology || size != SizeMedium {
		t.Fatalf("Expected Technology/Medium, got %s/%s", key, size)
	}
	if math.Abs(profile.Metric(CategoryOps, "avg_cost_per_call")-7.00) > 0.0001 {
		t.Errorf("Expected cost per call 7.00, got %f", profile.Metric(CategoryOps, "avg_cost_per_call"))
	}
	if math.Abs(profile.Metric(CategoryOps, "annual_call_volume")-1_500_000) > 0.0001 {
		t.Errorf("Expected call volume 1500000, got %f", profile.Metric(CategoryOps, "annual_call_volume"))
	}

	// Finance Large incidents: downtime cost 2.5M per hour.
	rev := 600_000_000.0
	profile, size, _ = Resolve("Finance", &rev)
	if size != SizeLarge {
		t.Fatalf("Expected Large for 600M finance revenue, got %s", size)
	}
	if math.Abs(profile.Metric(CategoryIncidents, "cost_of_downtime_per_hour")-2_500_000) > 0.0001 {
		t.Errorf("Expected downtime cost 2500000, got %f", profile.Metric(CategoryIncidents, "cost_of_downtime_per_hour"))
	}
}

func TestProfileMetricMissing(t *testing.T) {
	profile, _, _ := Resolve("Retail", nil)
	if v := profile.Metric("nonexistent", "metric"); v != 0 {
		t.Errorf("Expected 0 for missing category, got %f", v)
	}
	if v := profile.Metric(CategoryOps, "nonexistent"); v != 0 {
		t.Errorf("Expected 0 for missing metric, got %f", v)
	}
}

func TestParseRevenue(t *testing.T) {
	v := ParseRevenue("$1,500,000")
	if v == nil || math.Abs(*v-1_500_000) > 0.0001 {
		t.Errorf("Expected 1500000, got %v", v)
	}

	if ParseRevenue("") != nil {
		t.Error("Expected nil for empty string")
	}
	if ParseRevenue("around fifty million") != nil {
		t.Error("Expected nil for non-numeric string")
	}
}
