// Package knowledge holds the static product catalog: taglines, ROI
// talking points, scenario math variables, and the scenario menus that
// map client problems onto the right financial model. The tables are
// domain content curated from product ROI documentation, not computed.
package knowledge

import "strings"

// =============================================================================
// PRODUCT CATALOG TYPES
// =============================================================================

// ScenarioMath carries the illustrative before/after variables behind a
// product's headline efficiency scenario. The values feed both prompt
// construction and the static fallback math.
type ScenarioMath struct {
	ScenarioTitle    string  `json:"scenario_title"`
	MetricUnit       string  `json:"metric_unit"`
	CostPerUnitLabel string  `json:"cost_per_unit_label"`
	CostPerUnitValue float64 `json:"cost_per_unit_value"`
	BeforeLabel      string  `json:"before_label"`
	BeforeQty        float64 `json:"before_qty"`
	AfterLabel       string  `json:"after_label"`
	AfterQty         float64 `json:"after_qty"`
}

// AnnualSavings evaluates the before/after delta at the unit cost.
func (m ScenarioMath) AnnualSavings() float64 {
	return (m.BeforeQty - m.AfterQty) * m.CostPerUnitValue
}

// Product is one catalog entry.
type Product struct {
	Name    string       `json:"name"`
	Tagline string       `json:"tagline"`
	HardROI []string     `json:"hard_roi"`
	SoftROI string       `json:"soft_roi"`
	Math    ScenarioMath `json:"math_variables"`
}

// =============================================================================
// SCENARIO MENU
// =============================================================================

// Scenario is one entry in a product's ROI scenario menu. The triage
// stage picks the entry whose framing fits the client's stated problem.
type Scenario struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Logic string `json:"logic"`
}

// normalizeName lowers and trims a product label for fuzzy matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
