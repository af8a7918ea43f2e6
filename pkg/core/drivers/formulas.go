package drivers

import (
	"fmt"
	"strings"
)

// =============================================================================
// FORMULA TEMPLATES (Fixed Domain Content)
// Each product family carries three canonical value drivers. The analysis
// stage is handed the template and asked to fill it with benchmark
// numbers; the table itself is curated playbook content and is never
// computed.
// =============================================================================

// FormulaDriver is one line of a formula template: a driver name and the
// illustrative inputs-times-rate shape it should be priced with.
type FormulaDriver struct {
	Label   string `json:"label"`
	Formula string `json:"formula"`
}

// FormulaTemplate fixes the three canonical drivers for one product
// family: an efficiency driver (labor), a risk driver (avoided cost),
// and a strategic driver (revenue or capital).
type FormulaTemplate struct {
	Match      string        `json:"match"`
	Efficiency FormulaDriver `json:"efficiency"`
	Risk       FormulaDriver `json:"risk"`
	Strategic  FormulaDriver `json:"strategic"`
}

// formulaTable is scanned in order against the lowered product name;
// the first entry whose Match substring is found wins.
var formulaTable = []FormulaTemplate{
	{
		Match:      "voiceexplorer",
		Efficiency: FormulaDriver{Label: "Documentation Labor Savings", Formula: "Engineer hours saved (manual mapping vs automated discovery) x DevOps hourly rate"},
		Risk:       FormulaDriver{Label: "Migration Delay Avoidance", Formula: "Weeks of discovery-phase slip avoided x weekly project burn rate"},
		Strategic:  FormulaDriver{Label: "Faster Cloud Cutover", Formula: "Months of dual-running legacy licenses avoided x monthly license cost"},
	},
	{
		Match:      "performance",
		Efficiency: FormulaDriver{Label: "War Room Overtime Reduction", Formula: "All-hands troubleshooting hours avoided x engineer hourly rate"},
		Risk:       FormulaDriver{Label: "Peak Outage Avoidance", Formula: "Critical downtime hours avoided x revenue risk per hour"},
		Strategic:  FormulaDriver{Label: "Rollback Cost Elimination", Formula: "Failed go-lives avoided x cost per rollback"},
	},
	{
		Match:      "qa",
		Efficiency: FormulaDriver{Label: "Regression Labor Replacement", Formula: "Manual test hours automated x QA analyst hourly rate"},
		Risk:       FormulaDriver{Label: "Defect Escape Reduction", Formula: "Production defects prevented x emergency fix cost"},
		Strategic:  FormulaDriver{Label: "Release Velocity Gain", Formula: "Additional releases shipped per year x value per release"},
	},
	{
		Match:      "ativa",
		Efficiency: FormulaDriver{Label: "MTTR Reduction", Formula: "Troubleshooting hours eliminated x senior engineer hourly rate"},
		Risk:       FormulaDriver{Label: "SLA Credit Recovery", Formula: "Documented carrier violations x contractual credit value"},
		Strategic:  FormulaDriver{Label: "Capacity Right-Sizing", Formula: "Surplus SIP trunks and SBC licenses retired x annual unit cost"},
	},
	{
		Match:      "voicewatch",
		Efficiency: FormulaDriver{Label: "Manual Sweep Elimination", Formula: "TFN testing hours automated x operational hourly cost"},
		Risk:       FormulaDriver{Label: "Outage Revenue Protection", Formula: "Downtime minutes detected early x revenue per minute"},
		Strategic:  FormulaDriver{Label: "Global Reachability Assurance", Formula: "International routes verified x penalty cost per failed route"},
	},
	{
		Match:      "edge",
		Efficiency: FormulaDriver{Label: "Tier 1 Ticket Deflection", Formula: "Helpdesk tickets deflected x cost per L1 ticket"},
		Risk:       FormulaDriver{Label: "Agent Downtime Reduction", Formula: "Remote agent hours recovered x loaded agent cost per hour"},
		Strategic:  FormulaDriver{Label: "Hardware Refresh Optimization", Formula: "Blanket PC replacements avoided x unit replacement cost"},
	},
}

// defaultFormula covers products the table does not know.
var defaultFormula = FormulaTemplate{
	Match:      "",
	Efficiency: FormulaDriver{Label: "Operational Labor Savings", Formula: "Manual hours automated x loaded hourly rate"},
	Risk:       FormulaDriver{Label: "Incident Cost Avoidance", Formula: "Incidents prevented x average incident cost"},
	Strategic:  FormulaDriver{Label: "Revenue Protection", Formula: "Revenue-impacting failures avoided x revenue at risk"},
}

// FormulaFor resolves the formula template for a product name. Matching
// is ordered substring search over the lowered name, first match wins,
// with an explicit default for unknown products.
func FormulaFor(productName string) FormulaTemplate {
	needle := strings.ToLower(strings.TrimSpace(productName))
	for _, ft := range formulaTable {
		if strings.Contains(needle, ft.Match) {
			return ft
		}
	}
	return defaultFormula
}

// PromptText flattens a template into the numbered block the analysis
// prompt embeds.
func (ft FormulaTemplate) PromptText() string {
	return fmt.Sprintf("1. Efficiency - %s: %s\n2. Risk - %s: %s\n3. Strategic - %s: %s",
		ft.Efficiency.Label, ft.Efficiency.Formula,
		ft.Risk.Label, ft.Risk.Formula,
		ft.Strategic.Label, ft.Strategic.Formula)
}
