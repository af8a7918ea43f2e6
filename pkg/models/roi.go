package models

import (
	"time"
)

// ProductSelection is one product picked on the intake form, with its
// pricing pair. Cost is the monthly (or flat) price entered by the user;
// TermMonths is the contract duration the numbers are evaluated over.
type ProductSelection struct {
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	TermMonths float64 `json:"term_months"`
}

// ReportRequest carries everything the intake form collects for one
// report. StatedRevenue is free text ("$2,500,000"); when it parses,
// it overrides the researched revenue estimate for size classing.
type ReportRequest struct {
	AccessCode       string             `json:"access_code"`
	ClientName       string             `json:"client_name"`
	ClientURL        string             `json:"client_url,omitempty"`
	Industry         string             `json:"industry"`
	StatedRevenue    string             `json:"stated_revenue,omitempty"`
	ProjectType      string             `json:"project_type,omitempty"`
	ProblemStatement string             `json:"problem_statement"`
	Products         []ProductSelection `json:"products"`
	Preview          bool               `json:"preview,omitempty"`
}

// ValueDriver is one named, costed reason a product saves money.
// SavingsValue is loosely typed on purpose: the generator may return a
// clean number, a currency string ("$105,000"), a suffixed string
// ("$105k"), or a string with embedded counts and percentages. Only the
// amount extractor is allowed to interpret it; Calculation is display
// text and is never parsed for math.
type ValueDriver struct {
	Label        string      `json:"label"`
	Calculation  string      `json:"calculation"`
	SavingsValue interface{} `json:"savings_value"`
}

// PreviewPayload is returned instead of live content when the request
// runs in preview mode. It shows exactly what would have been sent to
// the generator, with zero-cost placeholder financials.
type PreviewPayload struct {
	Agent        string `json:"agent"`
	Model        string `json:"model"`
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
}

// ProductImpact is the per-product output of the content source: a short
// narrative, supporting bullets, and the value drivers the aggregator
// will price.
type ProductImpact struct {
	Product       string          `json:"product"`
	ScenarioTitle string          `json:"scenario_title,omitempty"`
	ImpactSummary string          `json:"impact_summary"`
	Bullets       []string        `json:"bullets"`
	Components    []ValueDriver   `json:"roi_components"`
	Fallback      bool            `json:"fallback,omitempty"`
	Preview       *PreviewPayload `json:"preview,omitempty"`
}

// PricedDriver is a ValueDriver after amount extraction: the label and
// display text plus the annual dollar value the aggregator credited to
// it. This is the shape the renderer prints; no parsing happens past
// this point.
type PricedDriver struct {
	Label       string  `json:"label"`
	Calculation string  `json:"calculation"`
	Amount      float64 `json:"amount"`
}

// ProductFinancials is the priced view of one product after aggregation.
type ProductFinancials struct {
	Product       string         `json:"product"`
	Investment    float64        `json:"investment"`
	TermYears     float64        `json:"term_years"`
	AnnualSavings float64        `json:"annual_savings"`
	TermSavings   float64        `json:"term_savings"`
	Net           float64        `json:"net"`
	Components    []PricedDriver `json:"components"`
}

// RequestTotals sums the per-product financials. ROIDefined distinguishes
// a real 0% ROI from "no investment entered"; when it is false the
// renderer shows N/A and ROIPercent carries no meaning.
type RequestTotals struct {
	TotalInvestment float64 `json:"total_investment"`
	TotalSavings    float64 `json:"total_savings"`
	ROIPercent      float64 `json:"roi_percent"`
	ROIDefined      bool    `json:"roi_defined"`
}

// ResearchContext is the request-scoped enrichment bundle computed once
// before per-product generation starts. All fields are best-effort.
type ResearchContext struct {
	Insights        []string `json:"insights"`
	SiteSummary     string   `json:"site_summary,omitempty"`
	RevenueEstimate *float64 `json:"revenue_estimate,omitempty"`
	ProjectType     string   `json:"project_type"`
}

// ReportResult is the fully assembled report: everything the renderer
// needs, with all arithmetic already done.
type ReportResult struct {
	ID          string              `json:"id"`
	ClientName  string              `json:"client_name"`
	Industry    string              `json:"industry"`
	IndustryKey string              `json:"industry_key"`
	SizeClass   string              `json:"size_class"`
	ProjectType string              `json:"project_type"`
	Research    ResearchContext     `json:"research"`
	Impacts     []ProductImpact     `json:"impacts"`
	Financials  []ProductFinancials `json:"financials"`
	Totals      RequestTotals       `json:"totals"`
	CashFlow    []float64           `json:"cash_flow"`
	Payback     string              `json:"payback"`
	GeneratedAt time.Time           `json:"generated_at"`
}
