// Package roi turns value-driver output and user pricing into the
// financial summary the report renders. Everything here is pure
// arithmetic: no I/O, no clock, no external state.
package roi

import (
	"agentic_roi/pkg/core/amount"
	"agentic_roi/pkg/models"
)

// LineItem pairs one product's generated components with the pricing
// the user entered for it.
type LineItem struct {
	Product    string
	Cost       float64 // monthly cost from the form
	TermMonths float64
	Components []models.ValueDriver
}

// Aggregate computes per-product financials and request totals.
//
// Per product: investment = cost * term_months, annual savings is the
// extracted sum of component savings, term savings scales the annual
// figure by term_months/12. The content source reports annual savings
// regardless of contract term; term scaling happens only here.
//
// ROI percent is only defined when some investment was entered. The
// renderer shows "N/A" otherwise, which is different from a real 0%.
func Aggregate(items []LineItem) ([]models.ProductFinancials, models.RequestTotals) {
	financials := make([]models.ProductFinancials, 0, len(items))
	var totals models.RequestTotals

	for _, item := range items {
		investment := item.Cost * item.TermMonths
		termYears := item.TermMonths / 12.0

		var annual float64
		priced := make([]models.PricedDriver, 0, len(item.Components))
		for _, c := range item.Components {
			v := amount.Extract(c.SavingsValue)
			annual += v
			priced = append(priced, models.PricedDriver{
				Label:       c.Label,
				Calculation: c.Calculation,
				Amount:      v,
			})
		}
		termSavings := annual * termYears

		financials = append(financials, models.ProductFinancials{
			Product:       item.Product,
			Investment:    investment,
			TermYears:     termYears,
			AnnualSavings: annual,
			TermSavings:   termSavings,
			Net:           termSavings - investment,
			Components:    priced,
		})

		totals.TotalInvestment += investment
		totals.TotalSavings += termSavings
	}

	if totals.TotalInvestment > 0 {
		totals.ROIPercent = ((totals.TotalSavings - totals.TotalInvestment) / totals.TotalInvestment) * 100
		totals.ROIDefined = true
	}
	return financials, totals
}
