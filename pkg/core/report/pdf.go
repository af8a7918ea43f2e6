// Package report renders a finished analysis into the five-section PDF
// the service returns: executive snapshot with scorecards and the
// cash-flow chart, industry context, hard ROI with priced value
// drivers, soft ROI, and the investment overview. Every figure arrives
// pre-computed; nothing in this package does financial math.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/utils"
	"agentic_roi/pkg/models"
)

// Render produces the report PDF for a finished result. Assembly
// failures degrade to a minimal apology document rather than failing
// the request; the error return is non-nil only when even that cannot
// be produced.
func Render(res *models.ReportResult, cat *knowledge.Catalog) ([]byte, error) {
	if res == nil {
		return fallbackDocument()
	}
	doc, err := buildDocument(res, cat)
	if err == nil {
		return doc, nil
	}
	fmt.Printf("[REPORT] Document build failed for %s: %v. Serving fallback document.\n", res.ClientName, err)
	return fallbackDocument()
}

func buildDocument(res *models.ReportResult, cat *knowledge.Catalog) ([]byte, error) {
	if cat == nil {
		cat = knowledge.NewCatalog()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	write := func(s string) string { return tr(sanitize(s)) }
	// Narrative strings may arrive with markdown syntax; cells render
	// text verbatim, so flatten before layout.
	prose := func(s string) string { return write(utils.FlattenMarkdown(s)) }

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, "CONFIDENTIAL - ROI ANALYSIS", "", 1, "R", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 15)

	// --- Page 1: Executive Snapshot ---
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 20, write(fmt.Sprintf("Strategic ROI Analysis for %s", res.ClientName)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, write(fmt.Sprintf("Prepared for the %s Sector | Focus: %s", res.Industry, res.ProjectType)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	roiValue := "N/A"
	if res.Totals.ROIDefined {
		roiValue = fmt.Sprintf("%.0f%%", res.Totals.ROIPercent)
	}

	yStart := pdf.GetY()
	pdf.SetFillColor(240, 248, 255)
	scoreBox(pdf, 10, yStart, formatMoney(res.Totals.TotalSavings, 0), "Proj. Term Savings")
	scoreBox(pdf, 75, yStart, res.Payback, "Est. Payback Period")
	scoreBox(pdf, 140, yStart, roiValue, "ROI Percentage")

	pdf.SetXY(10, yStart+40)
	if png, err := RenderCashFlowChart(res.CashFlow); err != nil {
		fmt.Printf("[REPORT] Chart render failed: %v. Continuing without chart.\n", err)
	} else {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("cashflow", opts, bytes.NewReader(png))
		pdf.ImageOptions("cashflow", 25, pdf.GetY(), 160, 0, true, opts, 0, "")
	}

	// --- Page 2: The Before State ---
	pdf.AddPage()
	chapterTitle(pdf, "2. The 'Before' State: Cost of Inaction")
	chapterBody(pdf, write(fmt.Sprintf("Industry Context for %s:", res.Industry)))
	pdf.SetFont("Helvetica", "I", 10)
	for _, insight := range res.Research.Insights {
		pdf.MultiCell(0, 8, write("- "+utils.FlattenMarkdown(insight)), "", "L", false)
	}
	pdf.Ln(5)

	// --- Page 3: Hard ROI ---
	pdf.AddPage()
	chapterTitle(pdf, "3. Hard ROI: Direct Financial Impact")
	for _, imp := range res.Impacts {
		heading := imp.Product + " Impact:"
		if imp.ScenarioTitle != "" {
			heading = fmt.Sprintf("%s Impact: %s", imp.Product, imp.ScenarioTitle)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, write(heading), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		if imp.ImpactSummary != "" {
			pdf.MultiCell(0, 6, prose(imp.ImpactSummary), "", "L", false)
		}
		for _, bullet := range imp.Bullets {
			pdf.SetX(20)
			pdf.MultiCell(0, 6, write("- "+utils.FlattenMarkdown(bullet)), "", "L", false)
		}

		if f := financialsFor(res, imp.Product); f != nil {
			for _, d := range f.Components {
				line := fmt.Sprintf("- %s: %s annually", d.Label, formatMoney(d.Amount, 0))
				if d.Calculation != "" {
					line += fmt.Sprintf(" (%s)", d.Calculation)
				}
				pdf.SetX(20)
				pdf.MultiCell(0, 6, write(line), "", "L", false)
			}
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 6, write(fmt.Sprintf(
				"Annual impact %s | contract-term impact %s vs %s investment (net %s).",
				formatMoney(f.AnnualSavings, 0), formatMoney(f.TermSavings, 0),
				formatMoney(f.Investment, 0), formatMoney(f.Net, 0))), "", "L", false)
		}
		pdf.Ln(3)
	}

	// --- Page 4: Soft ROI ---
	pdf.AddPage()
	chapterTitle(pdf, "4. Soft ROI: Productivity & Intangibles")
	for _, imp := range res.Impacts {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, write(imp.Product+" Efficiency Gains:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		soft := "Frees specialist time for higher-value work."
		if p := cat.Match(imp.Product); p != nil && p.SoftROI != "" {
			soft = p.SoftROI
		}
		pdf.SetX(20)
		pdf.MultiCell(0, 6, write("- "+soft), "", "L", false)
		pdf.Ln(3)
	}

	// --- Page 5: Investment Overview ---
	pdf.AddPage()
	chapterTitle(pdf, "5. Investment Overview")
	chapterBody(pdf, "The following investment estimates were used to calculate the ROI scenarios.")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(100, 10, "Cost Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 10, "Estimated Amount", "1", 1, "R", true, 0, "")
	for _, f := range res.Financials {
		pdf.CellFormat(100, 10, write(f.Product), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, formatMoney(f.Investment, 2), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 10, "Total Investment", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, formatMoney(res.Totals.TotalInvestment, 2), "1", 1, "R", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(0, 10, "BUDGETARY ESTIMATE ONLY", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 6, "These figures are for ROI modeling purposes only. Please refer to the official Quote document for binding pricing, terms, and conditions.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fallbackDocument is the last-resort response when assembly fails: a
// one-page note instead of an empty body.
func fallbackDocument() ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, "Error generating report. Please contact support.", "", 1, "L", false, 0, "")
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("fallback document: %w", err)
	}
	return buf.Bytes(), nil
}

func scoreBox(pdf *fpdf.Fpdf, x, y float64, value, label string) {
	pdf.Rect(x, y, 60, 30, "DF")
	pdf.SetXY(x, y+5)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(60, 10, value, "", 2, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 5, label, "", 0, "C", false, 0, "")
}

func chapterTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 51, 102)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(10)
}

func chapterBody(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(-1)
}

func financialsFor(res *models.ReportResult, product string) *models.ProductFinancials {
	for i := range res.Financials {
		if res.Financials[i].Product == product {
			return &res.Financials[i]
		}
	}
	return nil
}

// sanitize rewrites characters the core PDF fonts cannot encode.
// Typographic punctuation degrades to its ASCII form; any other rune
// beyond Latin-1 becomes '?'.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '‘', '’':
			b.WriteByte('\'')
		case '“', '”':
			b.WriteByte('"')
		case '–', '—':
			b.WriteByte('-')
		case '…':
			b.WriteString("...")
		case ' ':
			b.WriteByte(' ')
		default:
			if r > 0xFF {
				b.WriteByte('?')
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// formatMoney renders a dollar figure with thousands separators, e.g.
// 1234567.8 with 0 decimals -> "$1,234,568". The sign sits inside the
// currency symbol so negative amounts read "$-5,000".
func formatMoney(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	if neg {
		return "$-" + b.String() + frac
	}
	return "$" + b.String() + frac
}
