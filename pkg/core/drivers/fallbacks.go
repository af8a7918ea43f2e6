package drivers

import (
	"fmt"
	"strings"

	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/models"
)

// =============================================================================
// STATIC FALLBACK BUNDLES
// Used when the generator is unavailable, times out, or returns a payload
// that fails shape validation. One driver in each bundle prices the
// catalog's illustrative scenario math at list values; the other two are
// conservative playbook figures. These are not client-specific numbers.
// =============================================================================

var fallbackComponents = map[string][]models.ValueDriver{
	"Hammer VoiceExplorer": {
		{Label: "Documentation Labor Savings", Calculation: "1,000 engineer hours saved x $85/hr DevOps rate", SavingsValue: 85000.0},
		{Label: "Migration Delay Avoidance", Calculation: "4 weeks of discovery slip avoided x $12,500 weekly project burn", SavingsValue: 50000.0},
		{Label: "Faster Cloud Cutover", Calculation: "3 months of dual-running legacy licenses avoided x $9,000/month", SavingsValue: 27000.0},
	},
	"Hammer Performance": {
		{Label: "War Room Overtime Reduction", Calculation: "400 all-hands troubleshooting hours avoided x $95/hr", SavingsValue: 38000.0},
		{Label: "Peak Outage Avoidance", Calculation: "7.5 critical downtime hours avoided x $45,000 revenue risk/hr", SavingsValue: 337500.0},
		{Label: "Rollback Cost Elimination", Calculation: "2 failed go-lives avoided x $25,000 per rollback", SavingsValue: 50000.0},
	},
	"Hammer QA": {
		{Label: "Regression Labor Replacement", Calculation: "2,250 manual test hours automated x $60/hr QA rate", SavingsValue: 135000.0},
		{Label: "Defect Escape Reduction", Calculation: "12 production defects prevented x $7,500 emergency fix cost", SavingsValue: 90000.0},
		{Label: "Release Velocity Gain", Calculation: "4 additional releases per year x $15,000 value per release", SavingsValue: 60000.0},
	},
	"Ativa Enterprise": {
		{Label: "MTTR Reduction", Calculation: "650 troubleshooting hours eliminated x $110/hr senior engineer rate", SavingsValue: 71500.0},
		{Label: "SLA Credit Recovery", Calculation: "4 documented carrier violations x $10,000 contractual credit", SavingsValue: 40000.0},
		{Label: "Capacity Right-Sizing", Calculation: "20 surplus SIP trunks retired x $1,800 annual unit cost", SavingsValue: 36000.0},
	},
	"Hammer VoiceWatch": {
		{Label: "Manual Sweep Elimination", Calculation: "1,000 TFN testing hours automated x $55/hr operational cost", SavingsValue: 55000.0},
		{Label: "Outage Revenue Protection", Calculation: "120 downtime minutes detected early x $750 revenue/minute", SavingsValue: 90000.0},
		{Label: "Global Reachability Assurance", Calculation: "12 international routes verified x $2,000 penalty per failed route", SavingsValue: 24000.0},
	},
	"Hammer Edge": {
		{Label: "Tier 1 Ticket Deflection", Calculation: "2,500 helpdesk tickets deflected x $25 per L1 ticket", SavingsValue: 62500.0},
		{Label: "Agent Downtime Reduction", Calculation: "1,200 remote agent hours recovered x $35 loaded cost/hr", SavingsValue: 42000.0},
		{Label: "Hardware Refresh Optimization", Calculation: "150 blanket PC replacements avoided x $900 per unit", SavingsValue: 135000.0},
	},
}

// defaultFallbackComponents covers products outside the catalog.
var defaultFallbackComponents = []models.ValueDriver{
	{Label: "Operational Labor Savings", Calculation: "500 manual hours automated x $70 loaded rate", SavingsValue: 35000.0},
	{Label: "Incident Cost Avoidance", Calculation: "6 incidents prevented x $10,000 average incident cost", SavingsValue: 60000.0},
	{Label: "Revenue Protection", Calculation: "60 revenue-impacting minutes avoided x $500/minute", SavingsValue: 30000.0},
}

var defaultFallbackBullets = []string{
	"Reduces manual effort through automation.",
	"Lowers operational risk before changes reach production.",
	"Protects revenue tied to voice infrastructure.",
}

// FallbackImpact builds the static content bundle for one product. The
// same input always yields the same bundle, and the returned slices are
// copies, so one report's mutations cannot leak into another's.
func FallbackImpact(cat *knowledge.Catalog, productName string) models.ProductImpact {
	var product *knowledge.Product
	if cat != nil {
		product = cat.Match(productName)
	}

	if product == nil {
		return models.ProductImpact{
			Product:       productName,
			ScenarioTitle: "Operational Efficiency",
			ImpactSummary: fmt.Sprintf("Automated analysis unavailable for %s. The figures below use general Hammer efficiency metrics.", productName),
			Bullets:       cloneStrings(defaultFallbackBullets),
			Components:    cloneDrivers(defaultFallbackComponents),
			Fallback:      true,
		}
	}

	components, ok := fallbackComponents[product.Name]
	if !ok {
		components = defaultFallbackComponents
	}

	return models.ProductImpact{
		Product:       product.Name,
		ScenarioTitle: product.Math.ScenarioTitle,
		ImpactSummary: fmt.Sprintf("Automated analysis unavailable for %s. The figures below fall back to standard Hammer playbook values for %s.", product.Name, strings.ToLower(product.Tagline)),
		Bullets:       cloneStrings(product.HardROI),
		Components:    cloneDrivers(components),
		Fallback:      true,
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneDrivers(in []models.ValueDriver) []models.ValueDriver {
	out := make([]models.ValueDriver, len(in))
	copy(out, in)
	return out
}
