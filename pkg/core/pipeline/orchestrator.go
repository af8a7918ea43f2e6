// Package pipeline drives the end-to-end report flow: research once per
// request, generate value-driver content per product under a bounded
// worker pool, price the results, project cash flow, and render the
// document. Collaborator failures have already degraded inside their
// own packages by the time they reach this layer; the only hard stop is
// request cancellation.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"agentic_roi/pkg/core/benchmark"
	"agentic_roi/pkg/core/drivers"
	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/report"
	"agentic_roi/pkg/core/roi"
	"agentic_roi/pkg/models"
)

// maxConcurrentProducts bounds the per-product generation fan-out so a
// six-product request cannot open six provider calls at once.
const maxConcurrentProducts = 3

// Researcher supplies the request-scoped enrichment bundle. The
// production implementation never fails; every field is best-effort.
type Researcher interface {
	Run(ctx context.Context, req models.ReportRequest) models.ResearchContext
}

// ImpactSource yields one product's value-driver content. The only
// error implementations may return is the context's own; content
// failures degrade internally.
type ImpactSource interface {
	Generate(ctx context.Context, req drivers.Request) (models.ProductImpact, error)
}

// Orchestrator manages the end-to-end flow:
// Research -> Benchmark -> per-product Generation -> Aggregation ->
// Cash-Flow Projection -> Rendering.
type Orchestrator struct {
	research Researcher
	source   ImpactSource
	catalog  *knowledge.Catalog
	render   func(*models.ReportResult, *knowledge.Catalog) ([]byte, error)
	limit    int
}

// NewOrchestrator wires the production collaborators.
func NewOrchestrator(research Researcher, source ImpactSource, cat *knowledge.Catalog) *Orchestrator {
	return &Orchestrator{
		research: research,
		source:   source,
		catalog:  cat,
		render:   report.Render,
		limit:    maxConcurrentProducts,
	}
}

// SetRenderer overrides document rendering, for tests that do not need
// a real PDF.
func (o *Orchestrator) SetRenderer(fn func(*models.ReportResult, *knowledge.Catalog) ([]byte, error)) {
	o.render = fn
}

// Run executes the full flow for one request. The returned PDF is nil
// for preview requests, which stop after prompt assembly. The error is
// non-nil only when the request context was cancelled or the document
// could not be produced at all.
func (o *Orchestrator) Run(ctx context.Context, req models.ReportRequest) (*models.ReportResult, []byte, error) {
	start := time.Now()
	id := uuid.NewString()
	fmt.Printf("[PIPELINE] %s: starting report for %s (%d products, preview=%t)\n",
		id, req.ClientName, len(req.Products), req.Preview)

	// 1. Research once per request.
	research := o.runResearch(ctx, req)

	// 2. Resolve the benchmark cell for this industry and revenue. A
	// revenue stated on the request beats the researched estimate.
	revenue := research.RevenueEstimate
	if stated := benchmark.ParseRevenue(req.StatedRevenue); stated != nil {
		revenue = stated
	}
	profile, size, key := benchmark.Resolve(req.Industry, revenue)
	sizeClass, industryKey := string(size), string(key)
	fmt.Printf("[PIPELINE] %s: benchmark %s/%s, focus %s\n", id, industryKey, sizeClass, research.ProjectType)

	// 3. Per-product generation under the bounded pool.
	impacts := make([]models.ProductImpact, len(req.Products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)
	for i, sel := range req.Products {
		g.Go(func() error {
			impact, err := o.source.Generate(gctx, drivers.Request{
				ClientName:       req.ClientName,
				Industry:         req.Industry,
				SizeClass:        sizeClass,
				ProblemStatement: req.ProblemStatement,
				Insights:         research.Insights,
				Benchmark:        profile,
				ProductName:      sel.Name,
				Preview:          req.Preview,
			})
			if err != nil {
				return err
			}
			impacts[i] = impact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("content generation aborted: %w", err)
	}

	// 4. Price the drivers against the submitted cost/term pairs.
	items := make([]roi.LineItem, len(req.Products))
	for i, sel := range req.Products {
		items[i] = roi.LineItem{
			Product:    impacts[i].Product,
			Cost:       sel.Cost,
			TermMonths: sel.TermMonths,
			Components: impacts[i].Components,
		}
	}
	financials, totals := roi.Aggregate(items)

	// 5. Project cash flow over the first year.
	cashFlow := roi.ProjectCashFlow(totals.TotalInvestment, totals.TotalSavings)

	result := &models.ReportResult{
		ID:          id,
		ClientName:  req.ClientName,
		Industry:    req.Industry,
		IndustryKey: industryKey,
		SizeClass:   sizeClass,
		ProjectType: research.ProjectType,
		Research:    research,
		Impacts:     impacts,
		Financials:  financials,
		Totals:      totals,
		CashFlow:    cashFlow,
		Payback:     roi.PaybackLabel(cashFlow),
		GeneratedAt: time.Now(),
	}

	if req.Preview {
		fmt.Printf("[PIPELINE] %s: preview assembled in %v\n", id, time.Since(start))
		return result, nil, nil
	}

	// 6. Render the document.
	pdf, err := o.render(result, o.catalog)
	if err != nil {
		return result, nil, fmt.Errorf("report rendering failed: %w", err)
	}

	fmt.Printf("[PIPELINE] %s: report completed in %v (%d bytes)\n", id, time.Since(start), len(pdf))
	return result, pdf, nil
}

// runResearch tolerates a missing researcher so partial wiring still
// produces a report.
func (o *Orchestrator) runResearch(ctx context.Context, req models.ReportRequest) models.ResearchContext {
	if o.research != nil {
		return o.research.Run(ctx, req)
	}
	focus := strings.TrimSpace(req.ProjectType)
	if focus == "" {
		focus = "Operations"
	}
	return models.ResearchContext{ProjectType: focus}
}
