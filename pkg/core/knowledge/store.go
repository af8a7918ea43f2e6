package knowledge

import (
	"fmt"
	"strings"
	"sync"
)

// =============================================================================
// STATIC PRODUCT DATA (Fallbacks & General Info)
// =============================================================================

// productOrder fixes listing order for the form and the report pages.
var productOrder = []string{
	"Hammer VoiceExplorer",
	"Hammer Performance",
	"Hammer QA",
	"Ativa Enterprise",
	"Hammer VoiceWatch",
	"Hammer Edge",
}

var productData = map[string]*Product{
	"Hammer VoiceExplorer": {
		Name:    "Hammer VoiceExplorer",
		Tagline: "Automated Discovery & Documentation",
		HardROI: []string{
			"Reduces Test Automation Development time by 80%.",
			"Eliminates manual documentation hours (Visio/Excel).",
			"Prevents migration delays caused by 'discovery' phases.",
		},
		SoftROI: "Accelerates cloud migration by creating a 'Digital Twin' of legacy systems.",
		Math: ScenarioMath{
			ScenarioTitle:    "Migration Discovery Efficiency",
			MetricUnit:       "Engineer Hours/Year",
			CostPerUnitLabel: "Avg. DevOps Hourly Rate",
			CostPerUnitValue: 85,
			BeforeLabel:      "Manual Documentation",
			BeforeQty:        1200,
			AfterLabel:       "Automated Discovery",
			AfterQty:         200,
		},
	},
	"Hammer Performance": {
		Name:    "Hammer Performance",
		Tagline: "On-Demand Load & Stress Testing",
		HardROI: []string{
			"Prevents costly P1/P2 incidents post-change.",
			"Reduces 'All-Hands' troubleshooting overtime.",
			"Minimizes rollback costs by catching defects in staging.",
		},
		SoftROI: "Validates stability of SIP trunks and SBCs under peak load.",
		Math: ScenarioMath{
			ScenarioTitle:    "Peak Traffic Outage Avoidance",
			MetricUnit:       "Hours of Critical Downtime/Year",
			CostPerUnitLabel: "Revenue Risk per Hour",
			CostPerUnitValue: 45000,
			BeforeLabel:      "Unverified Capacity",
			BeforeQty:        8,
			AfterLabel:       "Load-Tested Capacity",
			AfterQty:         0.5,
		},
	},
	"Hammer QA": {
		Name:    "Hammer QA",
		Tagline: "Automated Functional Testing",
		HardROI: []string{
			"Replaces manual regression testing labor.",
			"Runs 20+ concurrent tests in parallel.",
			"Reduces 'Defect Escape Ratio' to Production.",
		},
		SoftROI: "Enables true Agile/DevOps pipelines for Contact Centers.",
		Math: ScenarioMath{
			ScenarioTitle:    "Regression Testing Automation",
			MetricUnit:       "QA Testing Hours/Year",
			CostPerUnitLabel: "QA Analyst Hourly Rate",
			CostPerUnitValue: 60,
			BeforeLabel:      "Manual Dialing",
			BeforeQty:        2500,
			AfterLabel:       "Automated Scenarios",
			AfterQty:         250,
		},
	},
	"Ativa Enterprise": {
		Name:    "Ativa Enterprise",
		Tagline: "End-to-End Voice Network Visibility",
		HardROI: []string{
			"Recovers hard dollars via SLA credit enforcement.",
			"Reduces Mean Time to Repair (MTTR).",
			"Right-sizes SBC licenses and SIP trunks.",
		},
		SoftROI: "Isolates Carrier vs. Network vs. App faults instantly.",
		Math: ScenarioMath{
			ScenarioTitle:    "MTTR Reduction (Ops)",
			MetricUnit:       "Hours spent Troubleshooting/Year",
			CostPerUnitLabel: "Senior Engineer Hourly Rate",
			CostPerUnitValue: 110,
			BeforeLabel:      "Manual Packet Analysis",
			BeforeQty:        800,
			AfterLabel:       "Automated Root Cause",
			AfterQty:         150,
		},
	},
	"Hammer VoiceWatch": {
		Name:    "Hammer VoiceWatch",
		Tagline: "Active Monitoring (Outside-In)",
		HardROI: []string{
			"Revenue Protection: Detects outages early.",
			"Eliminates manual 'sweeps' of TFNs.",
			"Identifies 90-95% of errors pre-customer impact.",
		},
		SoftROI: "Verifies global reachability from specific countries.",
		Math: ScenarioMath{
			ScenarioTitle:    "Toll-Free Number (TFN) Audits",
			MetricUnit:       "Hours spent Testing TFNs/Year",
			CostPerUnitLabel: "Operational Hourly Cost",
			CostPerUnitValue: 55,
			BeforeLabel:      "Manual Morning Sweeps",
			BeforeQty:        1000,
			AfterLabel:       "Automated Monitoring",
			AfterQty:         0,
		},
	},
	"Hammer Edge": {
		Name:    "Hammer Edge",
		Tagline: "Endpoint Observability (WFH/Remote)",
		HardROI: []string{
			"Hardware Refresh Optimization.",
			"Tier 1 Ticket Deflection.",
			"Reduces shrinkage/downtime for remote agents.",
		},
		SoftROI: "Visualizes 'Last Mile' issues (ISP vs. Home WiFi).",
		Math: ScenarioMath{
			ScenarioTitle:    "Remote Agent Troubleshooting",
			MetricUnit:       "Helpdesk Tickets/Year",
			CostPerUnitLabel: "Cost per Ticket (L1)",
			CostPerUnitValue: 25,
			BeforeLabel:      "Blind Troubleshooting",
			BeforeQty:        5000,
			AfterLabel:       "Edge Diagnostic Data",
			AfterQty:         2500,
		},
	},
}

// =============================================================================
// SCENARIO MENUS (The Brain Logic)
// These map specific user problems to the correct math model.
// =============================================================================

var scenarioMenus = map[string][]Scenario{
	"Hammer VoiceWatch": {
		{Key: "outage_avoidance", Title: "Cost of Downtime (Revenue Protection)", Logic: "Detects outages early -> Reduces Downtime Minutes -> Saves Revenue."},
		{Key: "labor_savings", Title: "Operational Efficiency (Manual Testing)", Logic: "Automates manual TFN sweeps -> Reduces FTE Hours -> Saves Labor Cost."},
		{Key: "mttr_reduction", Title: "Mean Time to Repair (MTTR)", Logic: "Pinpoints root cause (Carrier vs Internal) -> Faster Fixes -> Lower Support Costs."},
	},
	"Hammer QA": {
		{Key: "defect_escape", Title: "Defect Escape Ratio (Risk)", Logic: "Catches bugs in Dev -> Prevents Prod Defects -> Avoids Emergency Fix Costs."},
		{Key: "regression_speed", Title: "Regression Testing Velocity", Logic: "Parallel execution -> Reduces Cycle Time -> Increases Release Velocity."},
	},
	"Hammer VoiceExplorer": {
		{Key: "migration_speed", Title: "Migration De-Risking (Discovery)", Logic: "Automated discovery -> Prevents 'Discovery Phase' delays -> Faster Cloud Migration."},
		{Key: "doc_labor", Title: "Documentation Labor Savings", Logic: "Automated mapping -> Replaces manual Visio/Excel work -> Saves Engineer Hours."},
	},
	"Hammer Performance": {
		{Key: "outage_risk", Title: "Peak Traffic Stability", Logic: "Stress tests pre-go-live -> Prevents crashes -> Avoids Revenue Loss."},
		{Key: "troubleshooting", Title: "War Room Avoidance", Logic: "Proactive testing -> Fewer P1 Incidents -> Less Overtime/All-Hands calls."},
	},
	"Ativa Enterprise": {
		{Key: "sla_credits", Title: "Vendor Accountability (SLA Recovery)", Logic: "Monitors Carrier SLAs -> Proves violations -> Recovers Cash Credits."},
		{Key: "mttr_innocence", Title: "Mean Time to Innocence", Logic: "Isolates Network vs App faults -> Stops Finger-pointing -> Saves Eng. Hours."},
	},
	"Hammer Edge": {
		{Key: "hardware_refresh", Title: "Hardware Refresh Optimization", Logic: "Identifies actual PC health -> Prevents blanket PC replacements -> Saves CAPEX."},
		{Key: "ticket_deflection", Title: "Tier 1 Ticket Deflection", Logic: "Self-healing/diagnosis -> Resolves WiFi issues at L1 -> Avoids L2/L3 escalation."},
	},
}

// =============================================================================
// CATALOG STORE
// =============================================================================

// Catalog serves product data and scenario menus. Reads vastly outnumber
// writes (the static seed), so it uses an RWMutex like the other stores.
type Catalog struct {
	mu        sync.RWMutex
	products  map[string]*Product
	scenarios map[string][]Scenario
	order     []string
}

// NewCatalog returns a catalog seeded with the static product data.
func NewCatalog() *Catalog {
	c := &Catalog{
		products:  make(map[string]*Product),
		scenarios: make(map[string][]Scenario),
	}
	for _, name := range productOrder {
		c.products[name] = productData[name]
		c.scenarios[name] = scenarioMenus[name]
		c.order = append(c.order, name)
	}
	return c
}

// Register adds or replaces a product entry.
func (c *Catalog) Register(p *Product, scenarios []Scenario) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("product must have a name")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[p.Name]; !exists {
		c.order = append(c.order, p.Name)
	}
	c.products[p.Name] = p
	c.scenarios[p.Name] = scenarios
	return nil
}

// Get retrieves a product by exact name.
func (c *Catalog) Get(name string) (*Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[name]
	if !ok {
		return nil, fmt.Errorf("product '%s' not found", name)
	}
	return p, nil
}

// Match resolves a possibly inexact product label. Exact match first,
// then case-insensitive, then substring in either direction. Returns
// nil when nothing fits.
func (c *Catalog) Match(name string) *Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if p, ok := c.products[name]; ok {
		return p
	}

	needle := normalizeName(name)
	if needle == "" {
		return nil
	}
	for _, candidate := range c.order {
		if normalizeName(candidate) == needle {
			return c.products[candidate]
		}
	}
	for _, candidate := range c.order {
		lowered := normalizeName(candidate)
		if strings.Contains(lowered, needle) || strings.Contains(needle, lowered) {
			return c.products[candidate]
		}
	}
	return nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []*Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Product, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.products[name])
	}
	return out
}

// Names returns the product names in catalog order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Scenarios returns the ROI scenario menu for a product, using the same
// fuzzy matching as Match. Nil when the product is unknown.
func (c *Catalog) Scenarios(name string) []Scenario {
	p := c.Match(name)
	if p == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scenarios[p.Name]
}
