package roi

import (
	"fmt"
	"math"
)

// ProjectCashFlow returns 13 monthly cumulative cash-flow points.
// Month 0 is the investment outlay, each later month adds savings/12.
// Negative or zero savings produce a declining or flat line; the
// projector makes no assumption about sign.
func ProjectCashFlow(investment, savings float64) []float64 {
	monthlyGain := savings / 12.0
	series := make([]float64, 13)

	current := -math.Abs(investment)
	for m := range series {
		series[m] = current
		current += monthlyGain
	}
	return series
}

// PaybackLabel describes when the cumulative line crosses zero, as a
// range the way sales decks phrase it ("6-8 Months"). "Immediate" when
// there is nothing to pay back, "12+ Months" when the line stays
// negative through the projected year.
func PaybackLabel(series []float64) string {
	if len(series) == 0 || series[0] >= 0 {
		return "Immediate"
	}
	for m, v := range series {
		if v >= 0 {
			if m >= 12 {
				return "12+ Months"
			}
			return fmt.Sprintf("%d-%d Months", m, m+2)
		}
	}
	return "12+ Months"
}
