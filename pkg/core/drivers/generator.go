// Package drivers produces the per-product value-driver content the
// aggregator prices: a short narrative, operational bullets, and
// label/calculation/savings triples. The live path is a two-stage
// generator call (cheap triage picks a scenario, analysis fills the
// formula template with benchmark numbers); every failure on that path
// degrades to the static fallback bundle so report assembly never halts
// here.
package drivers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"agentic_roi/pkg/core/agent"
	"agentic_roi/pkg/core/benchmark"
	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/core/utils"
	"agentic_roi/pkg/models"
)

// Agent names as configured in config/models.yaml.
const (
	AgentTriage   = "triage"
	AgentAnalysis = "analysis"
)

// defaultCallTimeout bounds each external generation call.
const defaultCallTimeout = 75 * time.Second

// Request carries one product's generation inputs. The benchmark profile
// and research fields are request-scoped read-only snapshots; Generate
// never mutates them, which keeps per-product calls safe to run in
// parallel.
type Request struct {
	ClientName       string
	Industry         string
	SizeClass        string
	ProblemStatement string
	Insights         []string
	Benchmark        benchmark.Profile
	ProductName      string
	Preview          bool
}

// Source generates value-driver content through the configured agents.
type Source struct {
	Agents      *agent.Manager
	Catalog     *knowledge.Catalog
	CallTimeout time.Duration
}

// NewSource wires a content source over the agent manager and the
// product catalog.
func NewSource(agents *agent.Manager, catalog *knowledge.Catalog) *Source {
	return &Source{
		Agents:      agents,
		Catalog:     catalog,
		CallTimeout: defaultCallTimeout,
	}
}

// triagePayload is the shape the triage stage must return.
type triagePayload struct {
	ScenarioKey   string `json:"scenario_key"`
	ScenarioTitle string `json:"scenario_title"`
	Reason        string `json:"reason"`
}

// analysisPayload is the shape the analysis stage must return. Anything
// that fails to land in this struct sends the product to the fallback
// bundle.
type analysisPayload struct {
	ImpactSummary string               `json:"impact_summary"`
	Bullets       []string             `json:"bullets"`
	Components    []models.ValueDriver `json:"roi_components"`
}

// Generate produces the impact bundle for one product. Preview requests
// short-circuit before any external call. On the live path the only
// error returned is the context's own; generator and parse failures
// degrade to the static fallback bundle instead of propagating, so one
// product's failure never aborts the others.
func (s *Source) Generate(ctx context.Context, req Request) (models.ProductImpact, error) {
	if err := ctx.Err(); err != nil {
		return models.ProductImpact{}, err
	}

	product := s.resolveProduct(req.ProductName)

	var menu []knowledge.Scenario
	if s.Catalog != nil {
		menu = s.Catalog.Scenarios(req.ProductName)
	}
	scenario := defaultScenario(product, menu)

	if req.Preview {
		return s.previewImpact(req, product, scenario), nil
	}

	scenario = s.pickScenario(ctx, req, product, menu, scenario)

	impact, err := s.runAnalysis(ctx, req, product, scenario)
	if err != nil {
		fmt.Printf("[DRIVERS] Analysis failed for %s: %v. Using fallback bundle.\n", product.Name, err)
		return FallbackImpact(s.Catalog, req.ProductName), ctx.Err()
	}
	return impact, nil
}

// resolveProduct maps the submitted name onto the catalog, synthesizing
// a bare entry for products the catalog does not know.
func (s *Source) resolveProduct(name string) *knowledge.Product {
	if s.Catalog != nil {
		if p := s.Catalog.Match(name); p != nil {
			return p
		}
	}
	return &knowledge.Product{
		Name: name,
		Math: knowledge.ScenarioMath{ScenarioTitle: "Operational Efficiency"},
	}
}

// defaultScenario is what the analysis stage is framed with when triage
// cannot improve on it: the first menu entry, or the product's headline
// scenario for products without a menu.
func defaultScenario(product *knowledge.Product, menu []knowledge.Scenario) knowledge.Scenario {
	if len(menu) > 0 {
		return menu[0]
	}
	title := product.Math.ScenarioTitle
	if title == "" {
		title = "Operational Efficiency"
	}
	return knowledge.Scenario{Key: "default", Title: title}
}

// pickScenario runs the cheap triage stage. Any failure keeps the
// default scenario; triage never aborts the product.
func (s *Source) pickScenario(ctx context.Context, req Request, product *knowledge.Product, menu []knowledge.Scenario, def knowledge.Scenario) knowledge.Scenario {
	// A single-entry menu has nothing to triage.
	if len(menu) < 2 {
		return def
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ROITriage)
	if err != nil {
		fmt.Printf("[DRIVERS] Triage prompt missing: %v\n", err)
		return def
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("ClientName", req.ClientName).
		Set("Industry", req.Industry).
		Set("ProblemStatement", req.ProblemStatement).
		Set("ProductName", product.Name).
		Set("ScenarioMenu", menuText(menu)))
	if err != nil {
		fmt.Printf("[DRIVERS] Triage prompt render failed: %v\n", err)
		return def
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	resp, err := s.Agents.ExecutePrompt(callCtx, AgentTriage, userPrompt, pt.SystemPrompt, map[string]interface{}{"temperature": 0.0})
	if err != nil {
		fmt.Printf("[DRIVERS] Triage call failed for %s: %v. Keeping default scenario.\n", product.Name, err)
		return def
	}

	var pick triagePayload
	if _, err := utils.SmartParse(utils.ExtractJSONBlock(resp), &pick); err != nil {
		fmt.Printf("[DRIVERS] Triage response unparseable for %s: %v\n", product.Name, err)
		return def
	}

	for _, sc := range menu {
		if sc.Key == pick.ScenarioKey {
			return sc
		}
	}
	for _, sc := range menu {
		if strings.EqualFold(sc.Title, pick.ScenarioTitle) {
			return sc
		}
	}
	fmt.Printf("[DRIVERS] Triage picked unknown scenario '%s' for %s. Keeping default.\n", pick.ScenarioKey, product.Name)
	return def
}

// runAnalysis executes the expensive stage and validates the response
// shape. Any error here means fallback.
func (s *Source) runAnalysis(ctx context.Context, req Request, product *knowledge.Product, scenario knowledge.Scenario) (models.ProductImpact, error) {
	systemPrompt, userPrompt, err := buildAnalysisPrompt(req, product, scenario)
	if err != nil {
		return models.ProductImpact{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	resp, err := s.Agents.ExecutePrompt(callCtx, AgentAnalysis, userPrompt, systemPrompt, nil)
	if err != nil {
		return models.ProductImpact{}, err
	}

	var payload analysisPayload
	if _, err := utils.SmartParse(utils.ExtractJSONBlock(resp), &payload); err != nil {
		return models.ProductImpact{}, err
	}
	if err := validatePayload(payload); err != nil {
		return models.ProductImpact{}, err
	}

	return models.ProductImpact{
		Product:       product.Name,
		ScenarioTitle: scenario.Title,
		ImpactSummary: utils.CleanMarkdown(payload.ImpactSummary),
		Bullets:       payload.Bullets,
		Components:    payload.Components,
	}, nil
}

// buildAnalysisPrompt renders the analysis stage's prompts. Shared with
// preview mode so preview shows exactly what would have been sent.
func buildAnalysisPrompt(req Request, product *knowledge.Product, scenario knowledge.Scenario) (systemPrompt, userPrompt string, err error) {
	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ROIAnalysis)
	if err != nil {
		return "", "", err
	}

	benchmarkJSON, _ := json.Marshal(req.Benchmark)
	mathJSON, _ := json.Marshal(product.Math)

	userPrompt, err = prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("ClientName", req.ClientName).
		Set("Industry", req.Industry).
		Set("SizeClass", req.SizeClass).
		Set("ProblemStatement", req.ProblemStatement).
		Set("Insights", strings.Join(req.Insights, "; ")).
		Set("BenchmarkJSON", string(benchmarkJSON)).
		Set("ProductName", product.Name).
		Set("Tagline", product.Tagline).
		Set("ScenarioTitle", scenario.Title).
		Set("MathVariables", string(mathJSON)).
		Set("FormulaTemplate", FormulaFor(product.Name).PromptText()))
	if err != nil {
		return "", "", err
	}
	return pt.SystemPrompt, userPrompt, nil
}

// validatePayload enforces the response contract: a summary and at
// least one labeled component. Savings values stay loosely typed; the
// amount extractor prices them later.
func validatePayload(p analysisPayload) error {
	if strings.TrimSpace(p.ImpactSummary) == "" {
		return fmt.Errorf("missing impact_summary")
	}
	if len(p.Components) == 0 {
		return fmt.Errorf("missing roi_components")
	}
	for i, c := range p.Components {
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("component %d has no label", i)
		}
	}
	return nil
}

// menuText renders the scenario menu one entry per line: key | title | logic.
func menuText(menu []knowledge.Scenario) string {
	lines := make([]string, 0, len(menu))
	for _, sc := range menu {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", sc.Key, sc.Title, sc.Logic))
	}
	return strings.Join(lines, "\n")
}

func (s *Source) timeout() time.Duration {
	if s.CallTimeout > 0 {
		return s.CallTimeout
	}
	return defaultCallTimeout
}
