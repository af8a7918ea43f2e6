package drivers

import (
	"context"
	"math"
	"strings"
	"testing"

	"agentic_roi/pkg/core/agent"
	"agentic_roi/pkg/core/amount"
	"agentic_roi/pkg/core/benchmark"
	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/models"
)

func TestFormulaForMatching(t *testing.T) {
	cases := map[string]string{
		"Hammer VoiceExplorer":   "Documentation Labor Savings",
		"hammer performance":     "War Room Overtime Reduction",
		"Hammer QA":              "Regression Labor Replacement",
		"Ativa Enterprise":       "MTTR Reduction",
		"Hammer VoiceWatch":      "Manual Sweep Elimination",
		"Hammer Edge (Endpoint)": "Tier 1 Ticket Deflection",
		"Acme Widget Platform":   "Operational Labor Savings",
		"":                       "Operational Labor Savings",
	}

	for input, wantLabel := range cases {
		ft := FormulaFor(input)
		if ft.Efficiency.Label != wantLabel {
			t.Errorf("FormulaFor(%q): expected efficiency driver %q, got %q", input, wantLabel, ft.Efficiency.Label)
		}
	}
}

func TestFormulaForFirstMatchWins(t *testing.T) {
	// Contains both "performance" and "edge"; the table is ordered and
	// performance comes first.
	ft := FormulaFor("Hammer Edge Performance Bundle")
	if ft.Match != "performance" {
		t.Errorf("expected first table match 'performance', got %q", ft.Match)
	}
}

func TestFormulaPromptText(t *testing.T) {
	text := FormulaFor("Hammer QA").PromptText()

	for _, want := range []string{
		"1. Efficiency - Regression Labor Replacement",
		"2. Risk - Defect Escape Reduction",
		"3. Strategic - Release Velocity Gain",
		"QA analyst hourly rate",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt text missing %q:\n%s", want, text)
		}
	}
}

func TestFallbackImpactKnownProduct(t *testing.T) {
	cat := knowledge.NewCatalog()

	impact := FallbackImpact(cat, "hammer qa")

	if !impact.Fallback {
		t.Error("expected fallback flag to be set")
	}
	if impact.Product != "Hammer QA" {
		t.Errorf("expected canonical product name, got %q", impact.Product)
	}
	if impact.ScenarioTitle != "Regression Testing Automation" {
		t.Errorf("expected catalog scenario title, got %q", impact.ScenarioTitle)
	}
	if len(impact.Bullets) != 3 {
		t.Errorf("expected 3 bullets from the catalog, got %d", len(impact.Bullets))
	}
	if len(impact.Components) != 3 {
		t.Fatalf("expected 3 value drivers, got %d", len(impact.Components))
	}

	// 2,250 hrs x $60 + 12 defects x $7,500 + 4 releases x $15,000
	total := 0.0
	for _, c := range impact.Components {
		total += amount.Extract(c.SavingsValue)
	}
	if math.Abs(total-285000) > 0.0001 {
		t.Errorf("expected fallback savings total 285000, got %f", total)
	}
}

func TestFallbackImpactUnknownProduct(t *testing.T) {
	cat := knowledge.NewCatalog()

	impact := FallbackImpact(cat, "Mystery Box 9000")

	if !impact.Fallback {
		t.Error("expected fallback flag to be set")
	}
	if impact.Product != "Mystery Box 9000" {
		t.Errorf("expected submitted name to be preserved, got %q", impact.Product)
	}
	if len(impact.Components) != 3 {
		t.Fatalf("expected the generic 3-driver bundle, got %d drivers", len(impact.Components))
	}
	for _, c := range impact.Components {
		if amount.Extract(c.SavingsValue) <= 0 {
			t.Errorf("generic driver %q has non-positive value", c.Label)
		}
	}
}

func TestFallbackImpactIsolation(t *testing.T) {
	cat := knowledge.NewCatalog()

	first := FallbackImpact(cat, "Hammer Edge")
	first.Components[0].Label = "MUTATED"
	first.Bullets[0] = "MUTATED"

	second := FallbackImpact(cat, "Hammer Edge")
	if second.Components[0].Label == "MUTATED" {
		t.Error("mutating one fallback bundle leaked into the next")
	}
	if second.Bullets[0] == "MUTATED" {
		t.Error("mutating fallback bullets leaked into the next bundle")
	}
}

func TestValidatePayload(t *testing.T) {
	good := analysisPayload{
		ImpactSummary: "Summary.",
		Bullets:       []string{"a"},
		Components: []models.ValueDriver{
			{Label: "Driver", Calculation: "x", SavingsValue: 1.0},
		},
	}
	if err := validatePayload(good); err != nil {
		t.Errorf("expected valid payload to pass, got %v", err)
	}

	missingSummary := good
	missingSummary.ImpactSummary = "  "
	if err := validatePayload(missingSummary); err == nil {
		t.Error("expected missing impact_summary to fail validation")
	}

	noComponents := good
	noComponents.Components = nil
	if err := validatePayload(noComponents); err == nil {
		t.Error("expected empty roi_components to fail validation")
	}

	unlabeled := good
	unlabeled.Components = []models.ValueDriver{{Label: "", Calculation: "x", SavingsValue: 1.0}}
	if err := validatePayload(unlabeled); err == nil {
		t.Error("expected unlabeled component to fail validation")
	}
}

func TestDefaultScenario(t *testing.T) {
	cat := knowledge.NewCatalog()
	product, _ := cat.Get("Hammer VoiceWatch")

	menu := cat.Scenarios("Hammer VoiceWatch")
	sc := defaultScenario(product, menu)
	if sc.Key != "outage_avoidance" {
		t.Errorf("expected first menu entry as default, got %q", sc.Key)
	}

	sc = defaultScenario(product, nil)
	if sc.Title != "Toll-Free Number (TFN) Audits" {
		t.Errorf("expected headline scenario title without a menu, got %q", sc.Title)
	}
}

func TestMenuText(t *testing.T) {
	menu := []knowledge.Scenario{
		{Key: "a", Title: "Alpha", Logic: "Does A."},
		{Key: "b", Title: "Beta", Logic: "Does B."},
	}

	text := menuText(menu)
	if text != "a | Alpha | Does A.\nb | Beta | Does B." {
		t.Errorf("unexpected menu rendering:\n%s", text)
	}
}

func TestGeneratePreviewShortCircuit(t *testing.T) {
	if err := prompt.RegisterDefaults(); err != nil {
		t.Fatalf("failed to register default prompts: %v", err)
	}

	source := NewSource(agent.NewManager(agent.Config{ActiveProvider: "openai"}), knowledge.NewCatalog())

	profile, sizeClass, _ := benchmark.Resolve("Retail", nil)
	impact, err := source.Generate(context.Background(), Request{
		ClientName:       "Acme Co",
		Industry:         "Retail",
		SizeClass:        string(sizeClass),
		ProblemStatement: "Manual regression testing slows every release.",
		Benchmark:        profile,
		ProductName:      "Hammer QA",
		Preview:          true,
	})
	if err != nil {
		t.Fatalf("preview generate failed: %v", err)
	}

	if impact.Preview == nil {
		t.Fatal("expected a preview payload")
	}
	if impact.Preview.Agent != AgentAnalysis {
		t.Errorf("expected preview agent %q, got %q", AgentAnalysis, impact.Preview.Agent)
	}
	if len(impact.Components) != 0 {
		t.Errorf("expected zero-cost placeholder financials, got %d components", len(impact.Components))
	}

	for _, want := range []string{"Acme Co", "Hammer QA", "Automated Functional Testing", "Regression Labor Replacement", "cost_per_call"} {
		if !strings.Contains(impact.Preview.UserPrompt, want) {
			t.Errorf("preview prompt missing %q", want)
		}
	}
	if !strings.Contains(impact.Preview.SystemPrompt, "Senior Solutions Consultant") {
		t.Error("preview should carry the analysis system prompt")
	}
}

func TestGenerateFallsBackWhenProviderUnavailable(t *testing.T) {
	if err := prompt.RegisterDefaults(); err != nil {
		t.Fatalf("failed to register default prompts: %v", err)
	}
	t.Setenv("OPENAI_API_KEY", "")

	source := NewSource(agent.NewManager(agent.Config{ActiveProvider: "openai"}), knowledge.NewCatalog())

	profile, sizeClass, _ := benchmark.Resolve("Retail", nil)
	impact, err := source.Generate(context.Background(), Request{
		ClientName:       "Acme Co",
		Industry:         "Retail",
		SizeClass:        string(sizeClass),
		ProblemStatement: "Manual regression testing slows every release.",
		Benchmark:        profile,
		ProductName:      "Hammer QA",
	})
	if err != nil {
		t.Fatalf("expected degraded result without error, got %v", err)
	}

	if !impact.Fallback {
		t.Error("expected the static fallback bundle when no provider is configured")
	}
	if impact.ScenarioTitle != "Regression Testing Automation" {
		t.Errorf("expected catalog scenario title on fallback, got %q", impact.ScenarioTitle)
	}
	if len(impact.Components) != 3 {
		t.Errorf("expected 3 fallback drivers, got %d", len(impact.Components))
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	if err := prompt.RegisterDefaults(); err != nil {
		t.Fatalf("failed to register default prompts: %v", err)
	}

	source := NewSource(agent.NewManager(agent.Config{ActiveProvider: "openai"}), knowledge.NewCatalog())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Generate(ctx, Request{ProductName: "Hammer QA"})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
